package Storages

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// Gods adapts an emirpasic/gods array list to the List contract. Elements are
// boxed as pointers since the wrapped list stores interface values, so this
// costs one allocation per element; it exists for callers already living in
// the gods ecosystem, not for speed.
type Gods[T any] struct {
	l *arraylist.List
}

func NewGods[T any]() *Gods[T] {
	return &Gods[T]{arraylist.New()}
}

func (u *Gods[T]) Append(v T) (int, error) {
	u.l.Add(&v)
	return u.l.Size() - 1, nil
}

func (u *Gods[T]) At(i int) *T {
	v, ok := u.l.Get(i)
	if !ok {
		return nil
	}
	return v.(*T)
}

func (u *Gods[T]) SwapRemove(i int) T {
	last := u.l.Size() - 1
	u.l.Swap(i, last)
	v, _ := u.l.Get(last)
	u.l.Remove(last)
	return *v.(*T)
}

func (u *Gods[T]) Len() int {
	return u.l.Size()
}

func (u *Gods[T]) Cap() int {
	return u.l.Size()
}

func (u *Gods[T]) Truncate(n int) {
	for u.l.Size() > n {
		u.l.Remove(u.l.Size() - 1)
	}
}
