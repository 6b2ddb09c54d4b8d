package Storages

import (
	Go_Arenas "github.com/g-m-twostay/go-arenas"
	"golang.org/x/exp/constraints"
)

// Packed is the untagged layout option: elements sit in a dense value slice
// with no per-slot tag, occupancy lives in a side bit array and freed indexes
// in a side stack. One bit of bookkeeping per element instead of a tag word,
// at the cost of the occupancy check no longer travelling with the value.
// Sparse remains the safe default; Packed is for element types small enough
// that the Slot overhead dominates.
type Packed[T any, S constraints.Unsigned] struct {
	vs   []T
	live Go_Arenas.BitArray
	free []S
}

func NewPacked[T any, S constraints.Unsigned](hint int) *Packed[T, S] {
	return &Packed[T, S]{vs: make([]T, 0, hint), live: Go_Arenas.NewBitArray(hint)}
}

func (u *Packed[T, S]) Insert(v T) (S, error) {
	if n := len(u.free); n > 0 {
		i := u.free[n-1]
		u.free = u.free[:n-1]
		u.vs[i] = v
		u.live.Up(int(i))
		return i, nil
	}
	u.vs = append(u.vs, v)
	i := len(u.vs) - 1
	u.live.Grow(len(u.vs))
	u.live.Up(i)
	return S(i), nil
}

func (u *Packed[T, S]) Remove(i S) (T, error) {
	if int(i) >= len(u.vs) || !u.live.Get(int(i)) {
		return *new(T), &VacantError{int(i)}
	}
	v := u.vs[i]
	u.vs[i] = *new(T)
	u.live.Down(int(i))
	u.free = append(u.free, i)
	return v, nil
}

func (u *Packed[T, S]) Get(i S) *T {
	if int(i) >= len(u.vs) || !u.live.Get(int(i)) {
		return nil
	}
	return &u.vs[i]
}

func (u *Packed[T, S]) Len() int {
	return len(u.vs) - len(u.free)
}

func (u *Packed[T, S]) Cap() int {
	return cap(u.vs)
}

func (u *Packed[T, S]) IsEmpty() bool {
	return u.Len() == 0
}

func (u *Packed[T, S]) Holes() int {
	return len(u.free)
}

func (u *Packed[T, S]) IsDense() bool {
	return len(u.free) == 0
}

func (u *Packed[T, S]) Each(f func(S, *T) bool) {
	for i := range u.vs {
		if u.live.Get(i) {
			if !f(S(i), &u.vs[i]) {
				return
			}
		}
	}
}

func (u *Packed[T, S]) Defragment(moved func(old, new S)) {
	if len(u.free) == 0 {
		return
	}
	count := u.Len()
	j := len(u.vs) - 1
	for i := 0; i < count; i++ {
		if u.live.Get(i) {
			continue
		}
		for !u.live.Get(j) {
			j--
		}
		u.vs[i] = u.vs[j]
		u.vs[j] = *new(T)
		u.live.Up(i)
		u.live.Down(j)
		if moved != nil {
			moved(S(j), S(i))
		}
		j--
	}
	u.vs = u.vs[:count]
	u.free = u.free[:0]
}

func (u *Packed[T, S]) Clear() {
	for i := range u.vs {
		u.vs[i] = *new(T)
	}
	u.vs = u.vs[:0]
	u.live.Clear()
	u.free = u.free[:0]
}
