package Trees

import (
	"github.com/g-m-twostay/go-arenas/Storages"
)

// Free is a tree with unbounded, ordered children per node. Child order is
// insertion order and survives removals and defragmentation; positions index
// the child list rather than fixed slots, so TakenError never arises here and
// a bad position reports *DegreeError.
type Free[T any] struct {
	sto  Storages.Storage[FreeNode[T], Index]
	root Index
}

func NewFree[T any](sto Storages.Storage[FreeNode[T], Index]) *Free[T] {
	return &Free[T]{sto: sto, root: nilIdx}
}

// MakeFree is a Free over a Sparse arena on a growable slice.
func MakeFree[T any](size int) *Free[T] {
	return NewFree[T](Storages.NewSparse[FreeNode[T], Index](Storages.NewSlice[Storages.Slot[FreeNode[T], Index]](size)))
}

func (u *Free[T]) Len() int {
	return u.sto.Len()
}

func (u *Free[T]) IsEmpty() bool {
	return u.sto.Len() == 0
}

func (u *Free[T]) Holes() int {
	return u.sto.Holes()
}

func (u *Free[T]) Root() (Index, bool) {
	return u.root, u.root != nilIdx
}

func (u *Free[T]) InsertRoot(v T) (Index, error) {
	if u.root != nilIdx {
		return nilIdx, &TakenError{Parent: nilIdx, Pos: -1}
	}
	i, err := u.sto.Insert(FreeNode[T]{v: v, parent: nilIdx})
	if err != nil {
		return nilIdx, err
	}
	u.root = i
	return i, nil
}

// InsertChild appends v as the last child of parent.
func (u *Free[T]) InsertChild(parent Index, v T) (Index, error) {
	return u.InsertChildAt(parent, u.Degree(parent), v)
}

// InsertChildAt places v at position pos in parent's child list, shifting
// later siblings right. pos may equal the current degree, which appends.
func (u *Free[T]) InsertChildAt(parent Index, pos int, v T) (Index, error) {
	p := u.sto.Get(parent)
	if p == nil {
		return nilIdx, &Storages.VacantError{Index: int(parent)}
	}
	if pos < 0 || pos > len(p.kids) {
		return nilIdx, &DegreeError{Pos: pos, Degree: len(p.kids)}
	}
	i, err := u.sto.Insert(FreeNode[T]{v: v, parent: parent})
	if err != nil {
		return nilIdx, err
	}
	p = u.sto.Get(parent)
	p.kids = append(p.kids, nilIdx)
	copy(p.kids[pos+1:], p.kids[pos:])
	p.kids[pos] = i
	return i, nil
}

func (u *Free[T]) Value(i Index) *T {
	if n := u.sto.Get(i); n != nil {
		return &n.v
	}
	return nil
}

func (u *Free[T]) Parent(i Index) (Index, bool) {
	if n := u.sto.Get(i); n != nil && n.parent != nilIdx {
		return n.parent, true
	}
	return nilIdx, false
}

// Degree is the number of children of i, 0 for a dead index.
func (u *Free[T]) Degree(i Index) int {
	if n := u.sto.Get(i); n != nil {
		return len(n.kids)
	}
	return 0
}

// Children returns i's child list in order. The slice aliases the node;
// treat it as read-only and invalid after any mutation.
func (u *Free[T]) Children(i Index) []Index {
	if n := u.sto.Get(i); n != nil {
		return n.kids
	}
	return nil
}

// RemoveSubtree removes i and every descendant, children before their parent,
// returning the number removed. A dangling link inside the subtree fails with
// *CorruptError before anything is removed.
func (u *Free[T]) RemoveSubtree(i Index) (int, error) {
	n := u.sto.Get(i)
	if n == nil {
		return 0, &Storages.VacantError{Index: int(i)}
	}
	order := []Index{i}
	for at := 0; at < len(order); at++ {
		for _, k := range u.sto.Get(order[at]).kids {
			if u.sto.Get(k) == nil {
				return 0, &CorruptError{Node: order[at], Ref: k}
			}
			order = append(order, k)
		}
	}
	u.unlink(i, n.parent)
	//reverse preorder puts every child before its parent.
	for at := len(order) - 1; at >= 0; at-- {
		if _, err := u.sto.Remove(order[at]); err != nil {
			panic(err)
		}
	}
	return len(order), nil
}

// RemoveReparent removes the single node i, splicing its children into i's
// place in the former parent's child list, preserving their order. Removing a
// root that still has more than one child fails with *ReparentError, since
// only one node can become the root.
func (u *Free[T]) RemoveReparent(i Index) (T, error) {
	n := u.sto.Get(i)
	if n == nil {
		var zero T
		return zero, &Storages.VacantError{Index: int(i)}
	}
	parent := n.parent
	if parent == nilIdx {
		if len(n.kids) > 1 {
			var zero T
			return zero, &ReparentError{Node: i, Children: len(n.kids)}
		}
		u.root = nilIdx
		if len(n.kids) == 1 {
			u.root = n.kids[0]
			u.sto.Get(u.root).parent = nilIdx
		}
		c, _ := u.sto.Remove(i)
		return c.v, nil
	}
	for _, k := range n.kids {
		u.sto.Get(k).parent = parent
	}
	p := u.sto.Get(parent)
	pos := 0
	for p.kids[pos] != i {
		pos++
	}
	spliced := make([]Index, 0, len(p.kids)+len(n.kids)-1)
	spliced = append(spliced, p.kids[:pos]...)
	spliced = append(spliced, n.kids...)
	spliced = append(spliced, p.kids[pos+1:]...)
	p.kids = spliced
	c, _ := u.sto.Remove(i)
	return c.v, nil
}

func (u *Free[T]) unlink(i, parent Index) {
	if parent == nilIdx {
		u.root = nilIdx
		return
	}
	p := u.sto.Get(parent)
	for pos := range p.kids {
		if p.kids[pos] == i {
			p.kids = append(p.kids[:pos], p.kids[pos+1:]...)
			return
		}
	}
}

// Walk visits the tree in preorder, children in list order, until f returns
// false.
func (u *Free[T]) Walk(f func(i Index, v *T) bool) {
	if u.root == nilIdx {
		return
	}
	stack := []Index{u.root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := u.sto.Get(cur)
		if !f(cur, &n.v) {
			return
		}
		for pos := len(n.kids) - 1; pos >= 0; pos-- {
			stack = append(stack, n.kids[pos])
		}
	}
}

func (u *Free[T]) Clear() {
	u.sto.Clear()
	u.root = nilIdx
}

// Defragment compacts the backing arena and rewrites every link, preserving
// child order. Validation runs first; a *CorruptError leaves the tree
// untouched.
func (u *Free[T]) Defragment() error {
	if err := u.validate(); err != nil {
		return err
	}
	if u.sto.Holes() == 0 {
		return nil
	}
	moved := make(map[Index]Index)
	u.sto.Defragment(func(old, new Index) {
		moved[old] = new
	})
	fix := func(i Index) Index {
		if n, ok := moved[i]; ok {
			return n
		}
		return i
	}
	u.root = fix(u.root)
	u.sto.Each(func(_ Index, n *FreeNode[T]) bool {
		if n.parent != nilIdx {
			n.parent = fix(n.parent)
		}
		for pos := range n.kids {
			n.kids[pos] = fix(n.kids[pos])
		}
		return true
	})
	return nil
}

func (u *Free[T]) validate() error {
	if u.root != nilIdx && u.sto.Get(u.root) == nil {
		return &CorruptError{Node: nilIdx, Ref: u.root}
	}
	var err error
	u.sto.Each(func(i Index, n *FreeNode[T]) bool {
		if n.parent == nilIdx {
			if i != u.root {
				err = &CorruptError{Node: i, Ref: nilIdx}
				return false
			}
		} else if p := u.sto.Get(n.parent); p == nil || !contains(p.kids, i) {
			err = &CorruptError{Node: i, Ref: n.parent}
			return false
		}
		for _, k := range n.kids {
			if c := u.sto.Get(k); c == nil || c.parent != i {
				err = &CorruptError{Node: i, Ref: k}
				return false
			}
		}
		return true
	})
	return err
}
