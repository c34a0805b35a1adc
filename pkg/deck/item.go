package deck

import (
	"sort"

	"github.com/chartdeck/chartdeck/pkg/deck/tabpath"
)

// Kind identifies what a content item is: a visualization, a static content
// block, or a pagination marker. The set of kinds is closed; Add rejects
// anything else with nearest-kind suggestions.
type Kind string

// Visualization kinds.
const (
	KindBar       Kind = "bar"
	KindLine      Kind = "line"
	KindScatter   Kind = "scatter"
	KindHistogram Kind = "histogram"
	KindBox       Kind = "box"
	KindViolin    Kind = "violin"
	KindDensity   Kind = "density"
)

// Content-block kinds.
const (
	KindTable Kind = "table"
	KindText  Kind = "text"
	KindTitle Kind = "title"
	KindImage Kind = "image"
)

// KindPageBreak is the pagination marker: it carries no parameters of its
// own and tells paged renderers to start a new page.
const KindPageBreak Kind = "pagebreak"

// ValidKinds is the closed set of supported item kinds.
var ValidKinds = map[Kind]bool{
	KindBar:       true,
	KindLine:      true,
	KindScatter:   true,
	KindHistogram: true,
	KindBox:       true,
	KindViolin:    true,
	KindDensity:   true,
	KindTable:     true,
	KindText:      true,
	KindTitle:     true,
	KindImage:     true,
	KindPageBreak: true,
}

// KindNames returns all valid kind names in sorted order.
// Used for suggestion candidates in validation errors.
func KindNames() []string {
	names := make([]string, 0, len(ValidKinds))
	for k := range ValidKinds {
		names = append(names, string(k))
	}
	sort.Strings(names)
	return names
}

// ItemSpec describes one content item: its kind, its parameter bag, and its
// placement in the collection (insertion index) and in the tab hierarchy
// (tabgroup path). ItemSpecs are owned by the collection they were appended
// to; they are never shared between collections except by value copy during
// combination.
type ItemSpec struct {
	// Kind is the item kind, always a member of ValidKinds.
	Kind Kind

	// Params holds every parameter that is not lifted into a field below.
	Params Params

	// TabgroupPath is the canonical hierarchy path, outermost tab first.
	// Nil means the item is ungrouped and renders at the top level.
	TabgroupPath tabpath.Path

	// Title is the display title, empty when absent.
	Title string

	// TabLabel overrides the innermost tab's display label for this item.
	TabLabel string

	// Filter is an optional one-sided row predicate, carried opaquely to
	// the renderer. The engine validates its shape but never evaluates it.
	Filter *Filter

	// Index records append order within the owning collection: 1-based,
	// unique, and monotonically increasing at the moment of append.
	Index int
}

// Clone returns a deep enough copy for transfer between collections:
// the parameter bag, path, and filter are independent of the original.
func (s ItemSpec) Clone() ItemSpec {
	out := s
	out.Params = s.Params.Clone()
	out.TabgroupPath = s.TabgroupPath.Clone()
	if s.Filter != nil {
		f := *s.Filter
		out.Filter = &f
	}
	return out
}
