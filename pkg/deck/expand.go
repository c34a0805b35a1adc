package deck

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/chartdeck/chartdeck/pkg/errors"
	"github.com/chartdeck/chartdeck/pkg/observability"
)

// Templates derives per-iteration field values during AddMany. Each
// non-empty template is substituted once per iteration: "{i}" expands to
// the 1-based iteration number and "{name}" to that iteration's value of
// the parameter called name, then the result is applied as the explicit
// title, tab label, or tabgroup of the generated item.
type Templates struct {
	Title    string
	TabLabel string
	Tabgroup string
}

// AddMany expands parallel parameter vectors into many items.
//
// Among params, every parameter named in expandable whose value is a slice
// of length N > 1 is treated as a per-iteration vector; all vectors must
// share the same N. Iteration i takes the i-th element of each vector and
// the unchanged value of every other parameter, applies tmpl (which may be
// nil), and delegates to Add, in iteration order, so insertion indices stay
// monotonic across the whole expansion. Extra opts apply to every
// iteration, below the template-derived fields.
//
// AddMany fails with LENGTH_MISMATCH when vectors disagree on N or when no
// expandable vector of length > 1 exists, and fails fast with the first
// Add error. On any failure the returned collection is the receiver,
// unchanged; no partial expansion is observable.
func (c Collection) AddMany(kind Kind, params Params, expandable []string, tmpl *Templates, opts ...Option) (Collection, error) {
	vectors, n, err := expandVectors(params, expandable)
	if err != nil {
		return c, err
	}

	out := c
	for i := 0; i < n; i++ {
		iterParams := params.Clone()
		for name, vec := range vectors {
			iterParams = iterParams.set(name, vec[i])
		}

		iterOpts := make([]Option, 0, len(opts)+4)
		iterOpts = append(iterOpts, WithParams(iterParams))
		iterOpts = append(iterOpts, opts...)
		iterOpts = append(iterOpts, templateOptions(tmpl, i+1, iterParams)...)

		out, err = out.Add(kind, iterOpts...)
		if err != nil {
			return c, err
		}
	}

	observability.Deck().OnExpand(string(kind), n)
	return out, nil
}

// expandVectors picks out the per-iteration vectors and their shared length.
func expandVectors(params Params, expandable []string) (map[string][]any, int, error) {
	expandSet := make(map[string]bool, len(expandable))
	for _, name := range expandable {
		expandSet[name] = true
	}

	vectors := make(map[string][]any)
	n := 0
	first := ""
	for _, entry := range params {
		if !expandSet[entry.Name] {
			continue
		}
		vec, ok := asSequence(entry.Value)
		if !ok || len(vec) <= 1 {
			continue
		}
		if n == 0 {
			n = len(vec)
			first = entry.Name
		} else if len(vec) != n {
			return nil, 0, errors.New(errors.ErrCodeLengthMismatch,
				"expandable vectors have mismatched lengths: %s has %d, %s has %d",
				first, n, entry.Name, len(vec))
		}
		vectors[entry.Name] = vec
	}

	if n == 0 {
		return nil, 0, errors.New(errors.ErrCodeLengthMismatch,
			"nothing to expand: no expandable parameter has a vector of length > 1")
	}
	return vectors, n, nil
}

// asSequence reports whether v is an ordered sequence and flattens it to
// []any. Strings and byte slices are scalars, not sequences.
func asSequence(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if _, isBytes := v.([]byte); isBytes {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// templateOptions renders the non-empty templates for iteration i and
// returns them as explicit options.
func templateOptions(tmpl *Templates, i int, params Params) []Option {
	if tmpl == nil {
		return nil
	}
	var opts []Option
	if tmpl.Title != "" {
		opts = append(opts, WithTitle(substitute(tmpl.Title, i, params)))
	}
	if tmpl.TabLabel != "" {
		opts = append(opts, WithTabLabel(substitute(tmpl.TabLabel, i, params)))
	}
	if tmpl.Tabgroup != "" {
		opts = append(opts, WithTabgroup(substitute(tmpl.Tabgroup, i, params)))
	}
	return opts
}

// substitute replaces "{i}" with the iteration number and "{name}" with
// the iteration's value of each parameter. Unknown placeholders are left
// as-is so mistakes stay visible in the output.
func substitute(tmpl string, i int, params Params) string {
	pairs := make([]string, 0, 2+2*len(params))
	pairs = append(pairs, "{i}", strconv.Itoa(i))
	for _, entry := range params {
		pairs = append(pairs, "{"+entry.Name+"}", fmt.Sprint(entry.Value))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
