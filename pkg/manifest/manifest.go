// Package manifest loads a collection definition from a TOML document.
// Decoding drives the same builder API callers use directly, so a manifest
// passes through every validation rule an imperative build would.
package manifest

import (
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/chartdeck/chartdeck/pkg/deck"
	"github.com/chartdeck/chartdeck/pkg/errors"
)

// document is the wire shape of a collection manifest.
//
//	[defaults]
//	type = "bar"
//
//	[labels]
//	"demo/age" = "Age Distribution"
//
//	[[item]]
//	kind = "bar"
//	title = "Prices"
//	tabgroup = "demo/age"
//	filter = "price > 1000"
//	[item.params]
//	x = "cut"
type document struct {
	Defaults map[string]any    `toml:"defaults"`
	Labels   map[string]string `toml:"labels"`
	Items    []documentItem    `toml:"item"`
}

type documentItem struct {
	Kind     string         `toml:"kind"`
	Title    string         `toml:"title"`
	TabLabel string         `toml:"tab_label"`
	Tabgroup any            `toml:"tabgroup"`
	Height   float64        `toml:"height"`
	Filter   string         `toml:"filter"`
	Params   map[string]any `toml:"params"`
}

// Decode parses a TOML manifest and builds the collection it describes,
// applying options (such as deck.WithLogger or deck.WithAttachedData) to
// the new collection first. Items are appended in document order; the
// first invalid item aborts the build with its position in the error.
func Decode(data []byte, opts ...deck.CollectionOption) (deck.Collection, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return deck.Collection{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse manifest")
	}

	collectionOpts := make([]deck.CollectionOption, 0, len(opts)+2)
	if len(doc.Defaults) > 0 {
		collectionOpts = append(collectionOpts, deck.WithDefaults(sortedParams(doc.Defaults)))
	}
	if len(doc.Labels) > 0 {
		collectionOpts = append(collectionOpts, deck.WithTabgroupLabels(doc.Labels))
	}
	collectionOpts = append(collectionOpts, opts...)

	c := deck.New(collectionOpts...)
	for i, item := range doc.Items {
		var err error
		c, err = c.Add(deck.Kind(item.Kind), itemOptions(item)...)
		if err != nil {
			return deck.Collection{}, errors.Wrap(errors.ErrCodeInvalidManifest, err,
				"item %d (kind %q)", i+1, item.Kind)
		}
	}
	return c, nil
}

// itemOptions translates one document item into builder options. Only
// fields present in the document are passed on, so absent fields fall
// through to the collection defaults.
func itemOptions(item documentItem) []deck.Option {
	var opts []deck.Option
	if len(item.Params) > 0 {
		opts = append(opts, deck.WithParams(sortedParams(item.Params)))
	}
	if item.Title != "" {
		opts = append(opts, deck.WithTitle(item.Title))
	}
	if item.TabLabel != "" {
		opts = append(opts, deck.WithTabLabel(item.TabLabel))
	}
	if item.Tabgroup != nil {
		opts = append(opts, deck.WithTabgroup(normalizeTabgroup(item.Tabgroup)))
	}
	if item.Height != 0 {
		opts = append(opts, deck.WithHeight(item.Height))
	}
	if item.Filter != "" {
		opts = append(opts, deck.WithParam(deck.ParamFilter, item.Filter))
	}
	return opts
}

// sortedParams converts a decoded TOML table to an ordered parameter bag.
// TOML tables are unordered, so keys are sorted for a deterministic bag.
func sortedParams(table map[string]any) deck.Params {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	params := make(deck.Params, 0, len(names))
	for _, name := range names {
		params = append(params, deck.Param{Name: name, Value: table[name]})
	}
	return params
}

// normalizeTabgroup maps TOML array values onto the slice shape the
// builder accepts. Strings pass through unchanged.
func normalizeTabgroup(v any) any {
	if segments, ok := v.([]any); ok {
		out := make([]string, 0, len(segments))
		for _, s := range segments {
			str, ok := s.(string)
			if !ok {
				return v // let the builder report the type error
			}
			out = append(out, str)
		}
		return out
	}
	return v
}
