// Package tabpath normalizes tabgroup inputs into canonical hierarchy paths.
//
// A tabgroup places a content item inside nested tabs. Callers may express
// the same placement several ways: a plain string, a slash-separated string,
// an explicit ordered slice, or a map keyed by "1", "2", ... when argument
// order cannot be relied upon. Parse reduces all of them to one canonical
// form: an ordered sequence of non-empty segments.
//
// Equivalent inputs produce equal paths:
//
//	tabpath.Parse("a/b/c")
//	tabpath.Parse([]string{"a", "b", "c"})
//	tabpath.Parse(map[string]string{"1": "a", "2": "b", "3": "c"})
package tabpath

import (
	"sort"
	"strconv"
	"strings"

	"github.com/chartdeck/chartdeck/pkg/errors"
)

// Separator splits string-form tabgroups into segments.
const Separator = "/"

// Path is a canonical tabgroup path: an ordered sequence of non-empty
// segments, outermost tab first. A nil Path means "ungrouped".
type Path []string

// String joins the path with the separator, e.g. "demo/age".
// This joined form is also the tabgroup id used for display labels.
func (p Path) String() string { return strings.Join(p, Separator) }

// IsZero reports whether the path is absent.
func (p Path) IsZero() bool { return len(p) == 0 }

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Parse normalizes a tabgroup input into a canonical Path.
//
// Accepted shapes:
//   - nil or "" → nil path (no grouping)
//   - string without "/" → one-element path
//   - string with "/" → split on "/", segments trimmed, empties dropped
//   - []string → used as an ordered path (trimmed, empties dropped)
//   - map[string]string with keys "1","2",... → values ordered by numeric key
//
// A segment that trims to "" is dropped rather than kept as an empty tab.
// Parse fails with an INVALID_TABGROUP error if normalization leaves no
// segments, if map keys are not purely numeric or collide on a position,
// or if the dynamic type of input is not one of the shapes above.
func Parse(input any) (Path, error) {
	switch v := input.(type) {
	case nil:
		return nil, nil
	case Path:
		return normalize([]string(v))
	case string:
		if v == "" {
			return nil, nil
		}
		return normalize(strings.Split(v, Separator))
	case []string:
		if v == nil {
			return nil, nil
		}
		return normalize(v)
	case map[string]string:
		if v == nil {
			return nil, nil
		}
		ordered, err := orderByNumericKey(v)
		if err != nil {
			return nil, err
		}
		return normalize(ordered)
	default:
		return nil, errors.New(errors.ErrCodeInvalidTabgroup,
			"unsupported tabgroup input %v (type %T)", input, input)
	}
}

// normalize trims segments and drops empties, failing if nothing remains.
func normalize(segments []string) (Path, error) {
	path := make(Path, 0, len(segments))
	for _, seg := range segments {
		if trimmed := strings.TrimSpace(seg); trimmed != "" {
			path = append(path, trimmed)
		}
	}
	if len(path) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidTabgroup,
			"tabgroup %q normalizes to an empty path", strings.Join(segments, Separator))
	}
	return path, nil
}

// orderByNumericKey sorts map values by the numeric value of their keys.
// Mixed numeric and non-numeric keys are rejected, as are keys that resolve
// to the same position (such as "1" and "01"): the map shape exists only to
// make ordering explicit, so an ambiguous key set means the intent is
// ambiguous.
func orderByNumericKey(m map[string]string) ([]string, error) {
	type entry struct {
		pos int
		val string
	}
	entries := make([]entry, 0, len(m))
	seen := make(map[int]bool, len(m))
	for k, v := range m {
		pos, err := strconv.Atoi(k)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidTabgroup,
				"tabgroup map key %q is not numeric", k)
		}
		if seen[pos] {
			return nil, errors.New(errors.ErrCodeInvalidTabgroup,
				"tabgroup map has more than one key for position %d", pos)
		}
		seen[pos] = true
		entries = append(entries, entry{pos: pos, val: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].pos < entries[j].pos })
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.val
	}
	return out, nil
}
