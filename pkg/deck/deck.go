package deck

import (
	"maps"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Collection is an ordered, optionally nested assembly of content items.
// It is a value type: every builder operation (Add, AddMany, Combine,
// SetTabgroupLabel, AttachData) returns an updated Collection and leaves
// the receiver observable state untouched, so a caller can never see a
// collection mid-update. Internal slices and maps are copied on write.
//
// Use New to create a Collection; the zero value is a valid empty
// collection without an ID or defaults.
type Collection struct {
	id       string
	items    []ItemSpec
	labels   map[string]string
	defaults Params
	data     any
	logger   *log.Logger
}

// CollectionOption configures a new Collection.
type CollectionOption func(*Collection)

// WithDefaults sets collection-level default parameters. Defaults form the
// lowest precedence layer of every future Add: variadic bags and explicit
// options override them, last write wins, with no coalescing of falsy
// values (an explicit zero still beats a default).
func WithDefaults(p Params) CollectionOption {
	return func(c *Collection) { c.defaults = p.Clone() }
}

// WithTabgroupLabels seeds display labels keyed by tabgroup id
// (the slash-joined normalized path, e.g. "demo/age").
func WithTabgroupLabels(labels map[string]string) CollectionOption {
	return func(c *Collection) {
		c.labels = make(map[string]string, len(labels))
		maps.Copy(c.labels, labels)
	}
}

// WithAttachedData attaches a dataset reference. The engine treats it as
// opaque and hands it to renderers alongside each item spec.
func WithAttachedData(data any) CollectionOption {
	return func(c *Collection) { c.data = data }
}

// WithLogger sets the warning sink for deprecation notices and override
// diagnostics. Nil (the default) discards them. The engine never keeps
// process-wide "warned once" state; all notices go through this logger.
func WithLogger(logger *log.Logger) CollectionOption {
	return func(c *Collection) { c.logger = logger }
}

// New creates an empty Collection with a fresh ID.
func New(opts ...CollectionOption) Collection {
	c := Collection{
		id:     uuid.NewString(),
		labels: make(map[string]string),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// ID returns the collection's identity, assigned at creation and again on
// combination. Empty for a zero-value Collection.
func (c Collection) ID() string { return c.id }

// Len returns the number of items.
func (c Collection) Len() int { return len(c.items) }

// Items returns the items ordered by insertion index.
// The returned slice is a copy; item specs inside it share parameter bags
// with the collection and must be treated as read-only.
func (c Collection) Items() []ItemSpec { return slices.Clone(c.items) }

// Defaults returns a copy of the collection-level default parameters.
func (c Collection) Defaults() Params { return c.defaults.Clone() }

// TabgroupLabels returns a copy of the tabgroup display labels.
func (c Collection) TabgroupLabels() map[string]string {
	out := make(map[string]string, len(c.labels))
	maps.Copy(out, c.labels)
	return out
}

// AttachedData returns the attached dataset reference, or nil.
func (c Collection) AttachedData() any { return c.data }

// SetTabgroupLabel returns the collection with a display label for the
// given tabgroup id (the slash-joined path, e.g. "demo/age").
func (c Collection) SetTabgroupLabel(id, label string) Collection {
	labels := make(map[string]string, len(c.labels)+1)
	maps.Copy(labels, c.labels)
	labels[id] = label
	c.labels = labels
	return c
}

// AttachData returns the collection with the dataset reference replaced.
func (c Collection) AttachData(data any) Collection {
	c.data = data
	return c
}

// warnf emits a notice through the caller-supplied sink, if any.
func (c Collection) warnf(msg string, keyvals ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, keyvals...)
	}
}
