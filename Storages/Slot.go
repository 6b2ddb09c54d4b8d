package Storages

import (
	"golang.org/x/exp/constraints"
)

// Slot is one storage unit of a sparse arena: either an occupied element or a
// vacant link in the intrusive free list. The tag is the only source of truth
// for liveness; nothing else may assume a backing position holds an element.
//
// It is exported only so that backing collections for arenas can be declared
// (e.g. Storages.NewBounded[Storages.Slot[V, uint32]](n)); the fields are
// managed by Sparse alone.
type Slot[T any, S constraints.Unsigned] struct {
	v    T
	next S // next vacant slot when vacant, ^S(0) ends the list
	full bool
}

func (u *Slot[T, S]) Occupied() bool {
	return u.full
}

// Value of an occupied slot, nil when vacant.
func (u *Slot[T, S]) Value() *T {
	if !u.full {
		return nil
	}
	return &u.v
}

func occupied[T any, S constraints.Unsigned](v T) Slot[T, S] {
	return Slot[T, S]{v: v, full: true}
}

// punch vacates the slot, linking it to next and returning the old element.
func (u *Slot[T, S]) punch(next S) T {
	v := u.v
	u.v, u.next, u.full = *new(T), next, false
	return v
}

// fill occupies a vacant slot, returning the link it held.
func (u *Slot[T, S]) fill(v T) S {
	next := u.next
	u.v, u.next, u.full = v, 0, true
	return next
}
