package deck

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chartdeck/chartdeck/pkg/deck/tabpath"
	"github.com/chartdeck/chartdeck/pkg/errors"
)

func mustAdd(t *testing.T, c Collection, kind Kind, opts ...Option) Collection {
	t.Helper()
	out, err := c.Add(kind, opts...)
	if err != nil {
		t.Fatalf("Add(%s) error: %v", kind, err)
	}
	return out
}

func TestAdd_AssignsMonotonicIndices(t *testing.T) {
	c := New()
	for i := 0; i < 5; i++ {
		c = mustAdd(t, c, KindBar, WithTitle("t"))
	}

	items := c.Items()
	if len(items) != 5 {
		t.Fatalf("Len() = %d, want 5", len(items))
	}
	for i, item := range items {
		if item.Index != i+1 {
			t.Errorf("items[%d].Index = %d, want %d", i, item.Index, i+1)
		}
	}
}

func TestAdd_DefaultsScenario(t *testing.T) {
	// create(defaults={type:"bar"}) → add(title="A") → add(title="B", type="line")
	c := New(WithDefaults(Params{{Name: "type", Value: "bar"}}))
	c = mustAdd(t, c, KindBar, WithTitle("A"))
	c = mustAdd(t, c, KindBar, WithTitle("B"), WithParam("type", "line"))

	items := c.Items()
	if v, _ := items[0].Params.Get("type"); v != "bar" || items[0].Title != "A" {
		t.Errorf("items[0] = {type:%v title:%q}, want {type:bar title:A}", v, items[0].Title)
	}
	if v, _ := items[1].Params.Get("type"); v != "line" || items[1].Title != "B" {
		t.Errorf("items[1] = {type:%v title:%q}, want {type:line title:B}", v, items[1].Title)
	}
}

func TestAdd_LayerPrecedence(t *testing.T) {
	c := New(WithDefaults(Params{
		{Name: "x", Value: "default"},
		{Name: "y", Value: "default"},
		{Name: "z", Value: "default"},
	}))
	c = mustAdd(t, c, KindScatter,
		WithParams(Params{{Name: "x", Value: "bag"}, {Name: "y", Value: "bag"}}),
		WithParam("x", "explicit"),
	)

	item := c.Items()[0]
	for name, want := range map[string]string{"x": "explicit", "y": "bag", "z": "default"} {
		if v, _ := item.Params.Get(name); v != want {
			t.Errorf("param %s = %v, want %s", name, v, want)
		}
	}
}

func TestAdd_ExplicitFalsyBeatsDefault(t *testing.T) {
	// Explicit presence wins even when the value is false-like;
	// there is no null-coalescing of layers.
	c := New(WithDefaults(Params{{Name: "legend", Value: true}}))
	c = mustAdd(t, c, KindBar, WithParam("legend", false))

	if v, _ := c.Items()[0].Params.Get("legend"); v != false {
		t.Errorf("legend = %v, want false", v)
	}
}

func TestAdd_LaterBagWins(t *testing.T) {
	c := mustAdd(t, New(), KindBar,
		WithParams(Params{{Name: "x", Value: "first"}}),
		WithParams(Params{{Name: "x", Value: "second"}}),
	)
	if v, _ := c.Items()[0].Params.Get("x"); v != "second" {
		t.Errorf("x = %v, want second", v)
	}
}

func TestAdd_LiftsReservedNames(t *testing.T) {
	c := mustAdd(t, New(), KindBar,
		WithTitle("T"),
		WithTabLabel("L"),
		WithTabgroup("demo/age"),
		WithFilter(Filter{Field: "price", Op: FilterGt, Value: int64(1000)}),
		WithParam("x", "cut"),
	)

	item := c.Items()[0]
	if item.Title != "T" || item.TabLabel != "L" {
		t.Errorf("title/tab_label = %q/%q", item.Title, item.TabLabel)
	}
	if diff := cmp.Diff(tabpath.Path{"demo", "age"}, item.TabgroupPath); diff != "" {
		t.Errorf("TabgroupPath mismatch (-want +got):\n%s", diff)
	}
	if item.Filter == nil || item.Filter.Field != "price" {
		t.Errorf("Filter = %+v", item.Filter)
	}
	// Lifted names must not linger in the bag.
	for _, name := range []string{ParamTitle, ParamTabLabel, ParamTabgroup, ParamFilter} {
		if item.Params.Has(name) {
			t.Errorf("params still contain lifted name %q", name)
		}
	}
	if v, _ := item.Params.Get("x"); v != "cut" {
		t.Errorf("x = %v, want cut", v)
	}
}

func TestAdd_HeightStaysInParams(t *testing.T) {
	c := mustAdd(t, New(), KindBar, WithHeight(4.5))
	if v, _ := c.Items()[0].Params.Get(ParamHeight); v != 4.5 {
		t.Errorf("height = %v, want 4.5", v)
	}
}

func TestAdd_TabgroupViaDefaults(t *testing.T) {
	// Reserved names resolve through the same three layers as everything else.
	c := New(WithDefaults(Params{{Name: ParamTabgroup, Value: "demo"}}))
	c = mustAdd(t, c, KindBar)

	if diff := cmp.Diff(tabpath.Path{"demo"}, c.Items()[0].TabgroupPath); diff != "" {
		t.Errorf("TabgroupPath mismatch (-want +got):\n%s", diff)
	}
}

func TestAdd_FilterFromString(t *testing.T) {
	c := mustAdd(t, New(), KindBar, WithParam(ParamFilter, "price > 1000"))
	f := c.Items()[0].Filter
	if f == nil || f.Field != "price" || f.Op != FilterGt || f.Value != int64(1000) {
		t.Errorf("Filter = %+v", f)
	}
}

func TestAdd_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		opts []Option
		code errors.Code
	}{
		{"unknown kind", Kind("barr"), nil, errors.ErrCodeInvalidKind},
		{"non-string title", KindBar, []Option{WithParam(ParamTitle, 7)}, errors.ErrCodeInvalidTitle},
		{"non-string tab_label", KindBar, []Option{WithParam(ParamTabLabel, true)}, errors.ErrCodeInvalidTabLabel},
		{"zero height", KindBar, []Option{WithParam(ParamHeight, 0)}, errors.ErrCodeInvalidParam},
		{"negative height", KindBar, []Option{WithParam(ParamHeight, -2.0)}, errors.ErrCodeInvalidParam},
		{"non-numeric height", KindBar, []Option{WithParam(ParamHeight, "tall")}, errors.ErrCodeInvalidParam},
		{"two-sided filter", KindBar, []Option{WithParam(ParamFilter, "a == b")}, errors.ErrCodeInvalidFilter},
		{"bad filter type", KindBar, []Option{WithParam(ParamFilter, 42)}, errors.ErrCodeInvalidFilter},
		{"empty tabgroup", KindBar, []Option{WithTabgroup("///")}, errors.ErrCodeInvalidTabgroup},
		{"bad tabgroup type", KindBar, []Option{WithTabgroup(3.14)}, errors.ErrCodeInvalidTabgroup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := mustAdd(t, New(), KindText, WithTitle("existing"))

			after, err := before.Add(tt.kind, tt.opts...)
			if err == nil {
				t.Fatal("Add() = nil error, want validation failure")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %q, want %q", errors.GetCode(err), tt.code)
			}
			// All-or-nothing: the collection is unchanged.
			if after.Len() != before.Len() {
				t.Errorf("Len() = %d after failed Add, want %d", after.Len(), before.Len())
			}
		})
	}
}

func TestAdd_UnknownKindSuggests(t *testing.T) {
	_, err := New().Add(Kind("barr"))
	if err == nil {
		t.Fatal("Add(barr) = nil error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "did you mean") || !strings.Contains(msg, "bar") {
		t.Errorf("error %q does not carry kind suggestions", msg)
	}
}

func TestAdd_ReceiverUnchanged(t *testing.T) {
	base := mustAdd(t, New(), KindBar, WithTitle("first"))
	grown := mustAdd(t, base, KindLine, WithTitle("second"))

	if base.Len() != 1 {
		t.Errorf("base.Len() = %d after deriving a new collection, want 1", base.Len())
	}
	if grown.Len() != 2 {
		t.Errorf("grown.Len() = %d, want 2", grown.Len())
	}
}

func TestAdd_PageBreak(t *testing.T) {
	c := mustAdd(t, New(), KindPageBreak)
	item := c.Items()[0]
	if item.Kind != KindPageBreak || len(item.Params) != 0 {
		t.Errorf("pagebreak item = %+v", item)
	}
}
