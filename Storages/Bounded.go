package Storages

// Bounded is a fixed-capacity List. It never allocates after construction;
// Append reports *FullError once the capacity is reached, so arenas built on
// it stay usable in no-allocation environments.
type Bounded[T any] struct {
	s []T
}

func NewBounded[T any](capacity int) *Bounded[T] {
	return &Bounded[T]{make([]T, 0, capacity)}
}

func (u *Bounded[T]) Append(v T) (int, error) {
	if len(u.s) == cap(u.s) {
		return 0, &FullError{cap(u.s)}
	}
	u.s = append(u.s, v)
	return len(u.s) - 1, nil
}

func (u *Bounded[T]) At(i int) *T {
	if i < 0 || i >= len(u.s) {
		return nil
	}
	return &u.s[i]
}

func (u *Bounded[T]) SwapRemove(i int) T {
	v := u.s[i]
	last := len(u.s) - 1
	u.s[i] = u.s[last]
	u.s[last] = *new(T)
	u.s = u.s[:last]
	return v
}

func (u *Bounded[T]) Len() int {
	return len(u.s)
}

func (u *Bounded[T]) Cap() int {
	return cap(u.s)
}

func (u *Bounded[T]) Truncate(n int) {
	if n >= len(u.s) {
		return
	}
	for i := n; i < len(u.s); i++ {
		u.s[i] = *new(T)
	}
	u.s = u.s[:n]
}
