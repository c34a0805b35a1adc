package deck

import (
	"github.com/chartdeck/chartdeck/pkg/errors"
	"github.com/chartdeck/chartdeck/pkg/observability"
)

// Combine merges collections into one, in argument order.
//
// Arguments must be Collection or *Collection values; anything else fails
// with COMBINE_TYPE before any merging begins, so a bad argument never
// produces a partial result. Item lists are concatenated in argument order
// and every item's insertion index is rewritten to its 1-based position in
// the combined list; no other item field changes and no source ordering is
// disturbed. Tabgroup labels and defaults merge left to right with the last
// source defining a key winning; scalar attributes such as the attached
// dataset take the last non-absent value.
//
// Combine is associative: Combine(Combine(a, b), c) yields the same item
// order and the same merged maps as Combine(a, b, c).
func Combine(vals ...any) (Collection, error) {
	sources := make([]Collection, 0, len(vals))
	for i, v := range vals {
		switch src := v.(type) {
		case Collection:
			sources = append(sources, src)
		case *Collection:
			if src == nil {
				return Collection{}, errors.New(errors.ErrCodeCombineType,
					"argument %d is a nil *Collection", i+1)
			}
			sources = append(sources, *src)
		default:
			return Collection{}, errors.New(errors.ErrCodeCombineType,
				"argument %d is %T, not a collection", i+1, v)
		}
	}

	out := New()
	total := 0
	for _, src := range sources {
		total += len(src.items)
		// Adopt the warning sink up front so conflicts detected while
		// merging earlier sources are not lost.
		if src.logger != nil {
			out.logger = src.logger
		}
	}
	out.items = make([]ItemSpec, 0, total)

	for _, src := range sources {
		for _, item := range src.items {
			clone := item.Clone()
			clone.Index = len(out.items) + 1
			out.items = append(out.items, clone)
		}
		for id, label := range src.labels {
			if prev, exists := out.labels[id]; exists && prev != label {
				out.warnf("tabgroup label overridden", "tabgroup", id, "old", prev, "new", label)
			}
			out.labels[id] = label
		}
		out.defaults = out.defaults.Merge(src.defaults)
		if src.data != nil {
			out.data = src.data
		}
	}

	observability.Deck().OnCombine(len(sources), len(out.items))
	return out, nil
}
