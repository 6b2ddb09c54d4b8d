package Storages

import (
	"golang.org/x/exp/constraints"
)

// Sparse is the default arena: a List of tagged Slots plus an intrusive
// singly-linked free list threaded through the vacant ones. Insertion pops
// the free head before appending, removal pushes onto it, so both are O(1)
// with no side allocation and freed indexes are reused LIFO.
type Sparse[T any, S constraints.Unsigned] struct {
	list  List[Slot[T, S]]
	free  S // head of the free list, ^S(0) when empty
	count int
}

// NewSparse builds an arena over the given backing. The backing must be empty
// and must not be touched by the caller afterwards.
func NewSparse[T any, S constraints.Unsigned](backing List[Slot[T, S]]) *Sparse[T, S] {
	return &Sparse[T, S]{list: backing, free: none[S]()}
}

func (u *Sparse[T, S]) Insert(v T) (S, error) {
	if u.free != none[S]() {
		i := u.free
		u.free = u.list.At(int(i)).fill(v)
		u.count++
		return i, nil
	}
	pos, err := u.list.Append(occupied[T, S](v))
	if err != nil {
		return 0, err
	}
	u.count++
	return S(pos), nil
}

func (u *Sparse[T, S]) Remove(i S) (T, error) {
	s := u.list.At(int(i))
	if s == nil || !s.full {
		return *new(T), &VacantError{int(i)}
	}
	v := s.punch(u.free)
	u.free = i
	u.count--
	return v, nil
}

func (u *Sparse[T, S]) Get(i S) *T {
	if s := u.list.At(int(i)); s != nil && s.full {
		return &s.v
	}
	return nil
}

func (u *Sparse[T, S]) Len() int {
	return u.count
}

func (u *Sparse[T, S]) Cap() int {
	return u.list.Cap()
}

func (u *Sparse[T, S]) IsEmpty() bool {
	return u.count == 0
}

func (u *Sparse[T, S]) Holes() int {
	return u.list.Len() - u.count
}

func (u *Sparse[T, S]) IsDense() bool {
	return u.Holes() == 0
}

func (u *Sparse[T, S]) Each(f func(S, *T) bool) {
	for i := 0; i < u.list.Len(); i++ {
		if s := u.list.At(i); s.full {
			if !f(S(i), &s.v) {
				return
			}
		}
	}
}

// Defragment moves the highest occupied slots into the holes below Len(),
// reports every relocation through moved, shrinks the backing to Len() and
// discards the free list. O(n). See Storage for the index invalidation
// contract.
func (u *Sparse[T, S]) Defragment(moved func(old, new S)) {
	if u.Holes() == 0 {
		return
	}
	j := u.list.Len() - 1
	for i := 0; i < u.count; i++ {
		s := u.list.At(i)
		if s.full {
			continue
		}
		for !u.list.At(j).full {
			j--
		}
		*s = *u.list.At(j)
		u.list.At(j).punch(0)
		if moved != nil {
			moved(S(j), S(i))
		}
		j--
	}
	u.list.Truncate(u.count)
	u.free = none[S]()
}

func (u *Sparse[T, S]) Clear() {
	u.list.Truncate(0)
	u.free = none[S]()
	u.count = 0
}

// freeLen walks the free list to its end. Test hook for the free list
// invariant: the walk must visit exactly Holes() distinct vacant slots.
func (u *Sparse[T, S]) freeLen() (c int) {
	for i := u.free; i != none[S](); i = u.list.At(int(i)).next {
		c++
	}
	return
}
