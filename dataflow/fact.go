package dataflow

import (
	"sort"

	"github.com/xinchen-jzx/tai-e-go/ir"
)

// CPFact is a mapping from ir.Var to Value. An absent key reads as Undef,
// so Update removes a key entirely when written to Undef: this keeps Equal
// and iteration bounded by the set of keys that actually carry information.
type CPFact struct {
	m map[*ir.Var]Value
}

// NewCPFact returns an empty fact (every variable reads as Undef).
func NewCPFact() *CPFact {
	return &CPFact{m: make(map[*ir.Var]Value)}
}

// Get returns the value bound to v, or Undef if v is unbound.
func (f *CPFact) Get(v *ir.Var) Value {
	if val, ok := f.m[v]; ok {
		return val
	}
	return Undef()
}

// Update binds v to val, or removes v entirely when val is Undef. It
// reports whether the fact changed.
func (f *CPFact) Update(v *ir.Var, val Value) bool {
	old, had := f.m[v]
	if val.IsUndef() {
		if !had {
			return false
		}
		delete(f.m, v)
		return true
	}
	if had && old.Equal(val) {
		return false
	}
	f.m[v] = val
	return true
}

// Copy returns an independent copy of f.
func (f *CPFact) Copy() *CPFact {
	cp := NewCPFact()
	for k, v := range f.m {
		cp.m[k] = v
	}
	return cp
}

// Equal compares the union of keys bound in either fact.
func (f *CPFact) Equal(o *CPFact) bool {
	if len(f.m) != len(o.m) {
		return false
	}
	for k, v := range f.m {
		ov, ok := o.m[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Vars returns the variables explicitly bound in f, in a deterministic
// (name-sorted) order.
func (f *CPFact) Vars() []*ir.Var {
	vs := make([]*ir.Var, 0, len(f.m))
	for v := range f.m {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].Name < vs[j].Name })
	return vs
}

// MeetInto folds src into dst in place: for every key bound in src,
// dst.Update(k, Meet(src.Get(k), dst.Get(k))). Keys present only in dst are
// left untouched. It reports whether dst changed.
func MeetInto(src, dst *CPFact) bool {
	changed := false
	for k, v := range src.m {
		if dst.Update(k, Meet(v, dst.Get(k))) {
			changed = true
		}
	}
	return changed
}

// SetFact is a generic set, used here for live-variable results
// (SetFact[*ir.Var]). Only membership and mutation are needed by this
// core; it is a map-backed set, the same map-as-set representation
// funcutil.SetToOrderedSlice takes.
type SetFact[T comparable] struct {
	m map[T]bool
}

// NewSetFact returns an empty set.
func NewSetFact[T comparable]() *SetFact[T] {
	return &SetFact[T]{m: make(map[T]bool)}
}

// Contains reports whether x is a member of f.
func (f *SetFact[T]) Contains(x T) bool {
	return f.m[x]
}

// Add inserts x into f. It reports whether f changed.
func (f *SetFact[T]) Add(x T) bool {
	if f.m[x] {
		return false
	}
	f.m[x] = true
	return true
}

// Remove deletes x from f. It reports whether f changed.
func (f *SetFact[T]) Remove(x T) bool {
	if !f.m[x] {
		return false
	}
	delete(f.m, x)
	return true
}

// Copy returns an independent copy of f.
func (f *SetFact[T]) Copy() *SetFact[T] {
	cp := NewSetFact[T]()
	for k := range f.m {
		cp.m[k] = true
	}
	return cp
}

// Equal reports whether f and o have the same members.
func (f *SetFact[T]) Equal(o *SetFact[T]) bool {
	if len(f.m) != len(o.m) {
		return false
	}
	for k := range f.m {
		if !o.m[k] {
			return false
		}
	}
	return true
}

// UnionInto merges src's members into dst in place. It reports whether
// dst changed.
func UnionInto[T comparable](src, dst *SetFact[T]) bool {
	changed := false
	for k := range src.m {
		if dst.Add(k) {
			changed = true
		}
	}
	return changed
}
