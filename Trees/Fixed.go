package Trees

import (
	"github.com/g-m-twostay/go-arenas/Storages"
)

// Fixed is a tree whose every node has the same positional child block C
// (Pair, Quad or Oct), stored in one arena. Use the Binary, Quadtree and
// Octree aliases instead of spelling the three parameters out.
type Fixed[T any, C any, PC branchesPtr[C]] struct {
	sto  Storages.Storage[Node[T, C], Index]
	root Index
}

func NewFixed[T any, C any, PC branchesPtr[C]](sto Storages.Storage[Node[T, C], Index]) *Fixed[T, C, PC] {
	return &Fixed[T, C, PC]{sto: sto, root: nilIdx}
}

type (
	Binary[T any]   = Fixed[T, Pair, *Pair]
	Quadtree[T any] = Fixed[T, Quad, *Quad]
	Octree[T any]   = Fixed[T, Oct, *Oct]
)

func NewBinary[T any](sto Storages.Storage[Node[T, Pair], Index]) *Binary[T] {
	return NewFixed[T, Pair, *Pair](sto)
}

func NewQuadtree[T any](sto Storages.Storage[Node[T, Quad], Index]) *Quadtree[T] {
	return NewFixed[T, Quad, *Quad](sto)
}

func NewOctree[T any](sto Storages.Storage[Node[T, Oct], Index]) *Octree[T] {
	return NewFixed[T, Oct, *Oct](sto)
}

// MakeBinary is the common case: a Binary over a Sparse arena on a growable
// slice. MakeQuadtree and MakeOctree are its siblings.
func MakeBinary[T any](size int) *Binary[T] {
	return NewBinary[T](Storages.NewSparse[Node[T, Pair], Index](Storages.NewSlice[Storages.Slot[Node[T, Pair], Index]](size)))
}

func MakeQuadtree[T any](size int) *Quadtree[T] {
	return NewQuadtree[T](Storages.NewSparse[Node[T, Quad], Index](Storages.NewSlice[Storages.Slot[Node[T, Quad], Index]](size)))
}

func MakeOctree[T any](size int) *Octree[T] {
	return NewOctree[T](Storages.NewSparse[Node[T, Oct], Index](Storages.NewSlice[Storages.Slot[Node[T, Oct], Index]](size)))
}

// Arity is the number of child positions per node.
func (u *Fixed[T, C, PC]) Arity() int {
	var c C
	return len(PC(&c).slots())
}

func (u *Fixed[T, C, PC]) Len() int {
	return u.sto.Len()
}

func (u *Fixed[T, C, PC]) IsEmpty() bool {
	return u.sto.Len() == 0
}

// Holes reports the reclaimable vacancies in the backing arena; Defragment
// removes them.
func (u *Fixed[T, C, PC]) Holes() int {
	return u.sto.Holes()
}

// Root returns the root index; ok is false on an empty tree.
func (u *Fixed[T, C, PC]) Root() (Index, bool) {
	return u.root, u.root != nilIdx
}

// InsertRoot places v as the root of an empty tree. Fails with *TakenError if
// a root exists.
func (u *Fixed[T, C, PC]) InsertRoot(v T) (Index, error) {
	if u.root != nilIdx {
		return nilIdx, &TakenError{Parent: nilIdx, Pos: -1}
	}
	n := Node[T, C]{v: v, parent: nilIdx}
	clearBranches[C, PC](&n.kids)
	i, err := u.sto.Insert(n)
	if err != nil {
		return nilIdx, err
	}
	u.root = i
	return i, nil
}

// InsertChild places v at child position pos of parent. Fails with
// *BoundsError on a bad position, *Storages.VacantError on a dead parent and
// *TakenError on an occupied position; the tree is unchanged on failure.
func (u *Fixed[T, C, PC]) InsertChild(parent Index, pos int, v T) (Index, error) {
	if pos < 0 || pos >= u.Arity() {
		return nilIdx, &BoundsError{Pos: pos, Arity: u.Arity()}
	}
	p := u.sto.Get(parent)
	if p == nil {
		return nilIdx, &Storages.VacantError{Index: int(parent)}
	}
	if PC(&p.kids).slots()[pos] != nilIdx {
		return nilIdx, &TakenError{Parent: parent, Pos: pos}
	}
	n := Node[T, C]{v: v, parent: parent}
	clearBranches[C, PC](&n.kids)
	i, err := u.sto.Insert(n)
	if err != nil {
		return nilIdx, err
	}
	//Insert may have grown the backing; refetch the parent.
	PC(&u.sto.Get(parent).kids).slots()[pos] = i
	return i, nil
}

// Value returns a pointer to the payload of i, nil when i is dead. The
// pointer stays valid until the next Insert, Remove or Defragment.
func (u *Fixed[T, C, PC]) Value(i Index) *T {
	if n := u.sto.Get(i); n != nil {
		return &n.v
	}
	return nil
}

// Parent returns the parent of i; ok is false for the root or a dead index.
func (u *Fixed[T, C, PC]) Parent(i Index) (Index, bool) {
	if n := u.sto.Get(i); n != nil && n.parent != nilIdx {
		return n.parent, true
	}
	return nilIdx, false
}

// Child returns the occupant of position pos under parent, nilIdx when the
// position is empty.
func (u *Fixed[T, C, PC]) Child(parent Index, pos int) (Index, error) {
	if pos < 0 || pos >= u.Arity() {
		return nilIdx, &BoundsError{Pos: pos, Arity: u.Arity()}
	}
	p := u.sto.Get(parent)
	if p == nil {
		return nilIdx, &Storages.VacantError{Index: int(parent)}
	}
	return PC(&p.kids).slots()[pos], nil
}

// RemoveSubtree removes i and every descendant, children before their parent,
// returning the number of nodes removed. The subtree is collected into an
// explicit work list first, so depth is bounded by memory, not the goroutine
// stack, and a dangling link inside the subtree fails with *CorruptError
// before anything is removed.
func (u *Fixed[T, C, PC]) RemoveSubtree(i Index) (int, error) {
	n := u.sto.Get(i)
	if n == nil {
		return 0, &Storages.VacantError{Index: int(i)}
	}
	order := []Index{i}
	for at := 0; at < len(order); at++ {
		for _, k := range PC(&u.sto.Get(order[at]).kids).slots() {
			if k == nilIdx {
				continue
			}
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

// RemoveReparent removes the single node i, splicing its child (if any) into
// i's former position. A node with more than one child cannot be spliced into
// one position; that fails with *ReparentError and the tree is unchanged.
func (u *Fixed[T, C, PC]) RemoveReparent(i Index) (T, error) {
	n := u.sto.Get(i)
	if n == nil {
		var zero T
		return zero, &Storages.VacantError{Index: int(i)}
	}
	child := nilIdx
	kids := 0
	for _, k := range PC(&n.kids).slots() {
		if k != nilIdx {
			child = k
			kids++
		}
	}
	if kids > 1 {
		var zero T
		return zero, &ReparentError{Node: i, Children: kids}
	}
	parent := n.parent
	if parent == nilIdx {
		u.root = child
	} else {
		s := PC(&u.sto.Get(parent).kids).slots()
		for pos := range s {
			if s[pos] == i {
				s[pos] = child
				break
			}
		}
	}
	if child != nilIdx {
		u.sto.Get(child).parent = parent
	}
	c, _ := u.sto.Remove(i)
	return c.v, nil
}

// unlink clears the reference to i held by its parent, or the root field.
func (u *Fixed[T, C, PC]) unlink(i, parent Index) {
	if parent == nilIdx {
		u.root = nilIdx
		return
	}
	s := PC(&u.sto.Get(parent).kids).slots()
	for pos := range s {
		if s[pos] == i {
			s[pos] = nilIdx
			return
		}
	}
}

// Walk visits the tree in preorder, children in position order, until f
// returns false. Mutating the tree during a walk is a caller bug.
func (u *Fixed[T, C, PC]) Walk(f func(i Index, v *T) bool) {
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
		s := PC(&n.kids).slots()
		for pos := len(s) - 1; pos >= 0; pos-- {
			if s[pos] != nilIdx {
				stack = append(stack, s[pos])
			}
		}
	}
}

func (u *Fixed[T, C, PC]) Clear() {
	u.sto.Clear()
	u.root = nilIdx
}

// Defragment compacts the backing arena and rewrites every link for the new
// layout. The topology is validated first; a dangling or mismatched reference
// fails with *CorruptError before anything moves. All externally held indexes
// are invalid afterwards.
func (u *Fixed[T, C, PC]) Defragment() error {
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
	u.sto.Each(func(_ Index, n *Node[T, C]) bool {
		if n.parent != nilIdx {
			n.parent = fix(n.parent)
		}
		s := PC(&n.kids).slots()
		for pos := range s {
			if s[pos] != nilIdx {
				s[pos] = fix(s[pos])
			}
		}
		return true
	})
	return nil
}

// validate checks every stored link: children point at live nodes that point
// back, non-root parents are live and own the node, and the root field is
// live on a non-empty tree.
func (u *Fixed[T, C, PC]) validate() error {
	if u.root != nilIdx && u.sto.Get(u.root) == nil {
		return &CorruptError{Node: nilIdx, Ref: u.root}
	}
	var err error
	u.sto.Each(func(i Index, n *Node[T, C]) bool {
		if n.parent == nilIdx {
			if i != u.root {
				err = &CorruptError{Node: i, Ref: nilIdx}
				return false
			}
		} else if p := u.sto.Get(n.parent); p == nil || !contains(PC(&p.kids).slots(), i) {
			err = &CorruptError{Node: i, Ref: n.parent}
			return false
		}
		for _, k := range PC(&n.kids).slots() {
			if k == nilIdx {
				continue
			}
			if c := u.sto.Get(k); c == nil || c.parent != i {
				err = &CorruptError{Node: i, Ref: k}
				return false
			}
		}
		return true
	})
	return err
}

func contains(s []Index, i Index) bool {
	for _, v := range s {
		if v == i {
			return true
		}
	}
	return false
}
