package deck

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
)

func TestNew_AssignsID(t *testing.T) {
	a := New()
	b := New()
	if a.ID() == "" {
		t.Error("New() assigned empty ID")
	}
	if a.ID() == b.ID() {
		t.Errorf("two collections share ID %q", a.ID())
	}
}

func TestNew_ZeroValueIsEmpty(t *testing.T) {
	var c Collection
	if c.Len() != 0 || c.ID() != "" || c.AttachedData() != nil {
		t.Errorf("zero Collection = {len:%d id:%q data:%v}", c.Len(), c.ID(), c.AttachedData())
	}
}

func TestNew_Options(t *testing.T) {
	defaults := Params{{Name: "type", Value: "bar"}}
	labels := map[string]string{"demo": "Demo Tab"}

	c := New(
		WithDefaults(defaults),
		WithTabgroupLabels(labels),
		WithAttachedData("diamonds"),
	)

	if diff := cmp.Diff(defaults, c.Defaults()); diff != "" {
		t.Errorf("Defaults() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(labels, c.TabgroupLabels()); diff != "" {
		t.Errorf("TabgroupLabels() mismatch (-want +got):\n%s", diff)
	}
	if c.AttachedData() != "diamonds" {
		t.Errorf("AttachedData() = %v", c.AttachedData())
	}
}

func TestOptions_CopyInputs(t *testing.T) {
	defaults := Params{{Name: "x", Value: 1}}
	labels := map[string]string{"demo": "Demo"}
	c := New(WithDefaults(defaults), WithTabgroupLabels(labels))

	defaults[0].Value = 99
	labels["demo"] = "Changed"

	if v, _ := c.Defaults().Get("x"); v != 1 {
		t.Errorf("defaults aliased caller slice: x = %v", v)
	}
	if c.TabgroupLabels()["demo"] != "Demo" {
		t.Errorf("labels aliased caller map: %v", c.TabgroupLabels())
	}
}

func TestAccessors_ReturnCopies(t *testing.T) {
	c := mustAdd(t, New(WithTabgroupLabels(map[string]string{"g": "G"})), KindBar, WithTitle("only"))

	items := c.Items()
	items[0].Title = "mutated"
	if c.Items()[0].Title != "only" {
		t.Error("Items() exposed internal storage")
	}

	labels := c.TabgroupLabels()
	labels["g"] = "mutated"
	if c.TabgroupLabels()["g"] != "G" {
		t.Error("TabgroupLabels() exposed internal storage")
	}
}

func TestSetTabgroupLabel(t *testing.T) {
	base := New(WithTabgroupLabels(map[string]string{"demo": "Demo"}))
	updated := base.SetTabgroupLabel("demo/age", "Age")

	want := map[string]string{"demo": "Demo", "demo/age": "Age"}
	if diff := cmp.Diff(want, updated.TabgroupLabels()); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	if len(base.TabgroupLabels()) != 1 {
		t.Errorf("SetTabgroupLabel mutated receiver: %v", base.TabgroupLabels())
	}
}

func TestAttachData(t *testing.T) {
	base := New()
	updated := base.AttachData("diamonds")

	if updated.AttachedData() != "diamonds" {
		t.Errorf("AttachedData() = %v", updated.AttachedData())
	}
	if base.AttachedData() != nil {
		t.Errorf("AttachData mutated receiver: %v", base.AttachedData())
	}
}

func TestWithLogger_ReceivesMapTabgroupNotice(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	c := New(WithLogger(logger))
	_, err := c.Add(KindBar, WithTabgroup(map[string]string{"1": "demo", "2": "age"}))
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if !strings.Contains(buf.String(), "tabgroup") {
		t.Errorf("expected deprecation notice in log output, got %q", buf.String())
	}
}

func TestNilLogger_IsSilent(t *testing.T) {
	c := New()
	// Must not panic without a logger.
	if _, err := c.Add(KindBar, WithTabgroup(map[string]string{"1": "demo"})); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
}
