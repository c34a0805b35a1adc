// Package render defines the contract between the collection engine and
// output backends. The engine assembles and organizes item specs; a
// Renderer turns one spec plus the attached dataset into bytes in some
// format. The engine itself never draws anything.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/chartdeck/chartdeck/pkg/deck"
	"github.com/chartdeck/chartdeck/pkg/errors"
)

// Artifact is one rendered output.
type Artifact struct {
	// Format identifies the encoding, e.g. "json", "svg", "png".
	Format string
	// Data is the encoded output.
	Data []byte
}

// Renderer produces an artifact for a single item spec. Data is the
// collection's attached dataset reference, passed through opaquely.
type Renderer interface {
	Render(spec deck.ItemSpec, data any) (Artifact, error)
}

// Func adapts a plain function to the Renderer interface.
type Func func(spec deck.ItemSpec, data any) (Artifact, error)

// Render calls f.
func (f Func) Render(spec deck.ItemSpec, data any) (Artifact, error) {
	return f(spec, data)
}

// Registry dispatches to a renderer by item kind. The zero value is
// usable; kinds without a registered renderer fail with INTERNAL unless a
// fallback is set.
type Registry struct {
	byKind   map[deck.Kind]Renderer
	fallback Renderer
}

// Register binds a renderer to a kind, replacing any previous binding.
func (r *Registry) Register(kind deck.Kind, renderer Renderer) {
	if r.byKind == nil {
		r.byKind = make(map[deck.Kind]Renderer)
	}
	r.byKind[kind] = renderer
}

// SetFallback sets the renderer used for kinds without an explicit binding.
func (r *Registry) SetFallback(renderer Renderer) { r.fallback = renderer }

// Render dispatches to the renderer registered for the spec's kind.
func (r *Registry) Render(spec deck.ItemSpec, data any) (Artifact, error) {
	if renderer, ok := r.byKind[spec.Kind]; ok {
		return renderer.Render(spec, data)
	}
	if r.fallback != nil {
		return r.fallback.Render(spec, data)
	}
	return Artifact{}, errors.New(errors.ErrCodeInternal,
		"no renderer registered for kind %q", spec.Kind)
}

// JSON renders any item spec as an indented JSON document. It is the
// default backend: useful for debugging, snapshot tests, and handing specs
// to out-of-process renderers.
type JSON struct{}

type jsonSpec struct {
	Index    int            `json:"index"`
	Kind     string         `json:"kind"`
	Title    string         `json:"title,omitempty"`
	TabLabel string         `json:"tab_label,omitempty"`
	Tabgroup string         `json:"tabgroup,omitempty"`
	Filter   string         `json:"filter,omitempty"`
	Params   map[string]any `json:"params,omitempty"`
}

// Render encodes the spec. The attached dataset is not embedded; consumers
// resolve it from the collection.
func (JSON) Render(spec deck.ItemSpec, _ any) (Artifact, error) {
	out := jsonSpec{
		Index:    spec.Index,
		Kind:     string(spec.Kind),
		Title:    spec.Title,
		TabLabel: spec.TabLabel,
		Tabgroup: spec.TabgroupPath.String(),
	}
	if spec.Filter != nil {
		out.Filter = spec.Filter.String()
	}
	if len(spec.Params) > 0 {
		out.Params = make(map[string]any, len(spec.Params))
		for _, p := range spec.Params {
			out.Params[p.Name] = p.Value
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return Artifact{}, fmt.Errorf("render: encode %s item: %w", spec.Kind, err)
	}
	return Artifact{Format: "json", Data: data}, nil
}
