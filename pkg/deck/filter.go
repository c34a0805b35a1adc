package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/chartdeck/chartdeck/pkg/errors"
)

// FilterOp is a comparison operator in a filter predicate.
type FilterOp string

// Supported comparison operators.
const (
	FilterEq FilterOp = "=="
	FilterNe FilterOp = "!="
	FilterLt FilterOp = "<"
	FilterLe FilterOp = "<="
	FilterGt FilterOp = ">"
	FilterGe FilterOp = ">="
)

// validFilterOps is the closed operator set, used by Validate.
var validFilterOps = map[FilterOp]bool{
	FilterEq: true, FilterNe: true,
	FilterLt: true, FilterLe: true,
	FilterGt: true, FilterGe: true,
}

// filterFieldRe matches a bare column reference: the one free side of a
// predicate. Dots allow nested field access.
var filterFieldRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// Filter is a one-sided row predicate attached to a visualization item:
// a single field compared against a literal, like "price > 1000". The
// engine validates the shape and carries the filter opaquely to renderers;
// it never evaluates filters against the attached dataset.
type Filter struct {
	Field string   // the free side: a column reference
	Op    FilterOp // comparison operator
	Value any      // the literal side: string, number, or bool
}

// String renders the predicate back into its textual form.
func (f Filter) String() string {
	switch v := f.Value.(type) {
	case string:
		return fmt.Sprintf("%s %s %q", f.Field, f.Op, v)
	default:
		return fmt.Sprintf("%s %s %v", f.Field, f.Op, v)
	}
}

// Validate checks that the filter is a well-formed one-sided condition.
func (f Filter) Validate() error {
	if f.Field == "" {
		return errors.New(errors.ErrCodeInvalidFilter, "filter has no field")
	}
	if !filterFieldRe.MatchString(f.Field) {
		return errors.New(errors.ErrCodeInvalidFilter, "filter field %q is not a column reference", f.Field)
	}
	if !validFilterOps[f.Op] {
		return errors.New(errors.ErrCodeInvalidFilter, "filter operator %q is not supported", string(f.Op))
	}
	switch f.Value.(type) {
	case string, bool, int, int32, int64, float32, float64:
		return nil
	case nil:
		return errors.New(errors.ErrCodeInvalidFilter, "filter %q has no comparison value", f.Field)
	default:
		return errors.New(errors.ErrCodeInvalidFilter,
			"filter value %v (type %T) is not a scalar literal", f.Value, f.Value)
	}
}

// filterOpsByLength lists operators longest first so that "<=" is found
// before "<" when scanning an expression.
var filterOpsByLength = []FilterOp{FilterEq, FilterNe, FilterLe, FilterGe, FilterLt, FilterGt}

// ParseFilter parses a textual predicate like "price > 1000" or
// `cut == "Ideal"` into a Filter. Exactly one side of the operator must be
// a free column reference and the other a literal; a full equation with two
// free sides is rejected, as is a condition with no free side at all.
func ParseFilter(expr string) (Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Filter{}, errors.New(errors.ErrCodeInvalidFilter, "filter expression is empty")
	}

	op, lhs, rhs, err := splitFilter(expr)
	if err != nil {
		return Filter{}, err
	}

	lhsField := filterFieldRe.MatchString(lhs)
	rhsField := filterFieldRe.MatchString(rhs)

	// Bare booleans match the field pattern; treat them as literals so
	// "active == true" keeps exactly one free side.
	if lhs == "true" || lhs == "false" {
		lhsField = false
	}
	if rhs == "true" || rhs == "false" {
		rhsField = false
	}

	switch {
	case lhsField && rhsField:
		return Filter{}, errors.New(errors.ErrCodeInvalidFilter,
			"filter %q has two free sides; a one-sided condition is required", expr)
	case !lhsField && !rhsField:
		return Filter{}, errors.New(errors.ErrCodeInvalidFilter,
			"filter %q has no free side; one side must be a column reference", expr)
	}

	var field, lit string
	if lhsField {
		field, lit = lhs, rhs
	} else {
		field, lit = rhs, lhs
		op = mirrorOp(op)
	}

	value, err := parseFilterLiteral(expr, lit)
	if err != nil {
		return Filter{}, err
	}

	f := Filter{Field: field, Op: op, Value: value}
	if err := f.Validate(); err != nil {
		return Filter{}, err
	}
	return f, nil
}

// splitFilter finds the single comparison operator in expr and returns the
// trimmed sides around it.
func splitFilter(expr string) (FilterOp, string, string, error) {
	for _, op := range filterOpsByLength {
		idx := strings.Index(expr, string(op))
		if idx < 0 {
			continue
		}
		// A second occurrence of any operator means the expression is not
		// a single condition.
		rest := expr[idx+len(op):]
		for _, other := range filterOpsByLength {
			if strings.Contains(rest, string(other)) {
				return "", "", "", errors.New(errors.ErrCodeInvalidFilter,
					"filter %q contains more than one comparison", expr)
			}
		}
		lhs := strings.TrimSpace(expr[:idx])
		rhs := strings.TrimSpace(rest)
		if lhs == "" || rhs == "" {
			return "", "", "", errors.New(errors.ErrCodeInvalidFilter,
				"filter %q is missing a side of the comparison", expr)
		}
		return op, lhs, rhs, nil
	}
	return "", "", "", errors.New(errors.ErrCodeInvalidFilter,
		"filter %q has no comparison operator", expr)
}

// parseFilterLiteral converts the literal side into a typed value:
// quoted text to string, true/false to bool, otherwise a number.
func parseFilterLiteral(expr, lit string) (any, error) {
	if len(lit) >= 2 {
		if (lit[0] == '"' && lit[len(lit)-1] == '"') || (lit[0] == '\'' && lit[len(lit)-1] == '\'') {
			return lit[1 : len(lit)-1], nil
		}
	}
	switch lit {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return n, nil
	}
	if n, err := strconv.ParseFloat(lit, 64); err == nil {
		return n, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFilter,
		"filter %q: %q is neither a quoted string, number, nor boolean", expr, lit)
}

// mirrorOp flips an operator when the literal was on the left,
// so `1000 < price` normalizes to `price > 1000`.
func mirrorOp(op FilterOp) FilterOp {
	switch op {
	case FilterLt:
		return FilterGt
	case FilterLe:
		return FilterGe
	case FilterGt:
		return FilterLt
	case FilterGe:
		return FilterLe
	default:
		return op
	}
}
