package deck

import (
	"strings"

	"github.com/chartdeck/chartdeck/pkg/deck/tabpath"
	"github.com/chartdeck/chartdeck/pkg/errors"
	"github.com/chartdeck/chartdeck/pkg/observability"
)

// Reserved parameter names. They may arrive through any layer (defaults,
// variadic bags, explicit options) and are lifted out of the folded bag
// into ItemSpec fields after resolution.
const (
	ParamTitle    = "title"
	ParamTabLabel = "tab_label"
	ParamTabgroup = "tabgroup"
	ParamFilter   = "filter"
	ParamHeight   = "height"
)

// liftedParams are moved into ItemSpec fields and removed from the bag.
// Height stays a regular parameter; it is validated but carried through
// to renderers inside the bag.
var liftedParams = []string{ParamTitle, ParamTabLabel, ParamTabgroup, ParamFilter}

// addRequest accumulates the two caller-controlled layers of an Add call.
// Collection defaults form the third, lowest layer.
type addRequest struct {
	bags     []Params // variadic bags, in option order
	explicit Params   // explicit options, in option order
}

// Option supplies parameters to Add and AddMany.
//
// Options form two precedence layers above the collection defaults:
// WithParams contributes to the open variadic layer, everything else is
// explicit. Resolution folds defaults, then each bag, then each explicit
// option, left to right, last write wins. Presence is what matters: an
// explicit zero or false still overrides a default.
type Option func(*addRequest)

// WithParams contributes an open bag of parameters (the variadic layer).
// Multiple bags apply in option order.
func WithParams(p Params) Option {
	return func(r *addRequest) { r.bags = append(r.bags, p) }
}

// WithParam explicitly sets a single parameter.
func WithParam(name string, value any) Option {
	return func(r *addRequest) { r.explicit = r.explicit.set(name, value) }
}

// WithTitle explicitly sets the item title.
func WithTitle(title string) Option { return WithParam(ParamTitle, title) }

// WithTabLabel explicitly sets the display label of the item's innermost tab.
func WithTabLabel(label string) Option { return WithParam(ParamTabLabel, label) }

// WithTabgroup explicitly places the item in a tab hierarchy. Any shape
// accepted by tabpath.Parse is valid: "a/b", []string{"a","b"}, or a
// numerically keyed map.
func WithTabgroup(input any) Option { return WithParam(ParamTabgroup, input) }

// WithFilter explicitly attaches a one-sided row predicate.
func WithFilter(f Filter) Option { return WithParam(ParamFilter, f) }

// WithHeight explicitly sets the rendered height of the item.
func WithHeight(height float64) Option { return WithParam(ParamHeight, height) }

// Add validates and appends one item, returning the updated collection.
//
// Parameter resolution folds three layers, highest precedence last:
// collection defaults, then every WithParams bag in option order, then the
// explicit options in option order. The names title, tab_label, tabgroup,
// and filter are lifted from the folded bag into ItemSpec fields;
// everything else stays in the item's parameter bag.
//
// Validation runs before anything is appended: the kind must belong to
// ValidKinds (the error suggests the nearest valid kinds), title and
// tab_label must be strings, height must be a positive number, a filter
// must be one-sided, and the tabgroup must normalize to a non-empty path.
// On any failure the returned collection is the receiver, unchanged.
func (c Collection) Add(kind Kind, opts ...Option) (Collection, error) {
	item, err := c.resolve(kind, opts)
	if err != nil {
		observability.Deck().OnAppendError(string(kind), err)
		return c, err
	}

	item.Index = len(c.items) + 1
	items := make([]ItemSpec, len(c.items), len(c.items)+1)
	copy(items, c.items)
	c.items = append(items, item)

	observability.Deck().OnAppend(string(kind), item.Index)
	return c, nil
}

// resolve folds the parameter layers and validates the result into an
// ItemSpec without an index.
func (c Collection) resolve(kind Kind, opts []Option) (ItemSpec, error) {
	if !ValidKinds[kind] {
		return ItemSpec{}, kindError(kind)
	}

	var req addRequest
	for _, opt := range opts {
		opt(&req)
	}

	merged := c.defaults.Clone()
	for _, bag := range req.bags {
		merged = merged.Merge(bag)
	}
	merged = merged.Merge(req.explicit)

	item := ItemSpec{Kind: kind}

	if v, ok := merged.Get(ParamTitle); ok {
		title, isString := v.(string)
		if !isString {
			return ItemSpec{}, errors.New(errors.ErrCodeInvalidTitle,
				"title must be a single string, got %v (type %T)", v, v)
		}
		item.Title = title
	}

	if v, ok := merged.Get(ParamTabLabel); ok {
		label, isString := v.(string)
		if !isString {
			return ItemSpec{}, errors.New(errors.ErrCodeInvalidTabLabel,
				"tab_label must be a single string, got %v (type %T)", v, v)
		}
		item.TabLabel = label
	}

	if v, ok := merged.Get(ParamHeight); ok {
		height, isNumber := toFloat(v)
		if !isNumber || height <= 0 {
			return ItemSpec{}, errors.New(errors.ErrCodeInvalidParam,
				"height must be a positive number, got %v", v)
		}
	}

	if v, ok := merged.Get(ParamFilter); ok && v != nil {
		filter, err := coerceFilter(v)
		if err != nil {
			return ItemSpec{}, err
		}
		item.Filter = &filter
	}

	if v, ok := merged.Get(ParamTabgroup); ok {
		if _, isMap := v.(map[string]string); isMap {
			c.warnf("map-form tabgroups are deprecated; pass a slice or slash-separated string")
		}
		path, err := tabpath.Parse(v)
		if err != nil {
			return ItemSpec{}, errors.Wrap(errors.ErrCodeInvalidTabgroup, err,
				"tabgroup for %s item", kind)
		}
		item.TabgroupPath = path
	}

	item.Params = merged.Without(liftedParams...)
	return item, nil
}

// kindError builds the INVALID_KIND error, including the nearest valid
// kinds when any are close enough to be a plausible typo.
func kindError(kind Kind) error {
	if suggestions := errors.Suggest(string(kind), KindNames()); len(suggestions) > 0 {
		return errors.New(errors.ErrCodeInvalidKind,
			"unsupported kind %q (did you mean %s?)", string(kind), strings.Join(suggestions, ", "))
	}
	return errors.New(errors.ErrCodeInvalidKind,
		"unsupported kind %q (valid kinds: %s)", string(kind), strings.Join(KindNames(), ", "))
}

// coerceFilter accepts the filter shapes a parameter value may carry.
func coerceFilter(v any) (Filter, error) {
	switch f := v.(type) {
	case Filter:
		return f, f.Validate()
	case *Filter:
		if f == nil {
			return Filter{}, errors.New(errors.ErrCodeInvalidFilter, "filter is nil")
		}
		return *f, f.Validate()
	case string:
		return ParseFilter(f)
	default:
		return Filter{}, errors.New(errors.ErrCodeInvalidFilter,
			"filter must be a Filter or an expression string, got %v (type %T)", v, v)
	}
}

// toFloat widens any numeric parameter value to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
