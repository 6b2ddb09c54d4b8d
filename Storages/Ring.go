package Storages

// Ring is a growable List over a circular buffer, for callers that also use
// the buffer as a double-ended queue. Logical position 0 is the current front.
type Ring[T any] struct {
	sz, head int
	content  []T
}

func NewRing[T any](hint int) *Ring[T] {
	if hint < 1 {
		hint = 1
	}
	return &Ring[T]{content: make([]T, hint)}
}

func (u *Ring[T]) resize(newLen int) {
	nc := make([]T, newLen)
	tail := (u.head + u.sz) % len(u.content)
	if u.head < tail || u.sz == 0 {
		copy(nc, u.content[u.head:u.head+u.sz])
	} else {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:tail])
	}
	u.head, u.content = 0, nc
}

func (u *Ring[T]) Append(v T) (int, error) {
	if u.sz == len(u.content) {
		u.resize(u.sz*3/2 + 1)
	}
	u.content[(u.head+u.sz)%len(u.content)] = v
	u.sz++
	return u.sz - 1, nil
}

// Prepend v at the front, shifting every logical position up by one.
func (u *Ring[T]) Prepend(v T) {
	if u.sz == len(u.content) {
		u.resize(u.sz*3/2 + 1)
	}
	u.head = (u.head - 1 + len(u.content)) % len(u.content)
	u.content[u.head] = v
	u.sz++
}

// PopFront removes and returns the front element, false if empty.
func (u *Ring[T]) PopFront() (T, bool) {
	if u.sz == 0 {
		return *new(T), false
	}
	v := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % len(u.content)
	u.sz--
	return v, true
}

func (u *Ring[T]) At(i int) *T {
	if i < 0 || i >= u.sz {
		return nil
	}
	return &u.content[(u.head+i)%len(u.content)]
}

func (u *Ring[T]) SwapRemove(i int) T {
	p := (u.head + i) % len(u.content)
	last := (u.head + u.sz - 1) % len(u.content)
	v := u.content[p]
	u.content[p] = u.content[last]
	u.content[last] = *new(T)
	u.sz--
	return v
}

func (u *Ring[T]) Len() int {
	return u.sz
}

func (u *Ring[T]) Cap() int {
	return len(u.content)
}

func (u *Ring[T]) Truncate(n int) {
	for ; u.sz > n && u.sz > 0; u.sz-- {
		u.content[(u.head+u.sz-1)%len(u.content)] = *new(T)
	}
}
