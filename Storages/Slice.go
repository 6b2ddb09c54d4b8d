package Storages

// Slice is a growable List backed by a plain slice.
type Slice[T any] struct {
	s []T
}

func NewSlice[T any](hint int) *Slice[T] {
	return &Slice[T]{make([]T, 0, hint)}
}

func (u *Slice[T]) Append(v T) (int, error) {
	u.s = append(u.s, v)
	return len(u.s) - 1, nil
}

func (u *Slice[T]) At(i int) *T {
	if i < 0 || i >= len(u.s) {
		return nil
	}
	return &u.s[i]
}

func (u *Slice[T]) SwapRemove(i int) T {
	v := u.s[i]
	last := len(u.s) - 1
	u.s[i] = u.s[last]
	u.s[last] = *new(T)
	u.s = u.s[:last]
	return v
}

func (u *Slice[T]) Len() int {
	return len(u.s)
}

func (u *Slice[T]) Cap() int {
	return cap(u.s)
}

func (u *Slice[T]) Truncate(n int) {
	if n >= len(u.s) {
		return
	}
	for i := n; i < len(u.s); i++ {
		u.s[i] = *new(T)
	}
	u.s = u.s[:n]
}
