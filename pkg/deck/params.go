package deck

// Param is a single named parameter on an item specification.
// Values are heterogeneous: strings, numbers, booleans, nested slices or
// maps, or a Filter. The engine never interprets values beyond validation
// of the reserved names; they pass through to renderers untouched.
type Param struct {
	Name  string
	Value any
}

// Params is an ordered parameter bag. Order is construction order, which is
// preserved through merging: overwriting an existing name keeps its original
// position, new names append at the end. This keeps parameter listings
// deterministic no matter how many default/variadic/explicit layers fed them.
type Params []Param

// Get returns the value for name and whether it is present.
func (p Params) Get(name string) (any, bool) {
	for _, entry := range p {
		if entry.Name == name {
			return entry.Value, true
		}
	}
	return nil, false
}

// Has reports whether name is present in the bag.
func (p Params) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Names returns the parameter names in bag order.
func (p Params) Names() []string {
	names := make([]string, len(p))
	for i, entry := range p {
		names[i] = entry.Name
	}
	return names
}

// Clone returns an independent copy of the bag. Values are copied shallowly;
// the engine treats them as immutable once appended.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	copy(out, p)
	return out
}

// Set returns the bag with name set to value, last-write-wins. An existing
// name is overwritten in place (keeping its position); a new name appends.
// The receiver is not modified.
func (p Params) Set(name string, value any) Params {
	out := p.Clone()
	for i := range out {
		if out[i].Name == name {
			out[i].Value = value
			return out
		}
	}
	return append(out, Param{Name: name, Value: value})
}

// Merge overlays every entry of overlay onto the bag, left to right,
// last-write-wins. The receiver is not modified.
func (p Params) Merge(overlay Params) Params {
	out := p.Clone()
	for _, entry := range overlay {
		out = out.set(entry.Name, entry.Value)
	}
	return out
}

// Without returns the bag with the given names removed, preserving the
// order of the remaining entries. The receiver is not modified.
func (p Params) Without(names ...string) Params {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	out := make(Params, 0, len(p))
	for _, entry := range p {
		if !drop[entry.Name] {
			out = append(out, entry)
		}
	}
	return out
}

// set is the in-place variant of Set used on bags this package already owns.
func (p Params) set(name string, value any) Params {
	for i := range p {
		if p[i].Name == name {
			p[i].Value = value
			return p
		}
	}
	return append(p, Param{Name: name, Value: value})
}
