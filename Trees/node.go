package Trees

// Pair, Quad and Oct are the fixed child blocks of arity 2, 4 and 8. Each
// cell holds a child Index or nilIdx.
type (
	Pair [2]Index
	Quad [4]Index
	Oct  [8]Index
)

func (u *Pair) slots() []Index { return u[:] }
func (u *Quad) slots() []Index { return u[:] }
func (u *Oct) slots() []Index  { return u[:] }

// branchesPtr admits a pointer to a fixed child block. The method set runs on
// the pointer so slots() aliases the block inside the arena rather than a
// copy.
type branchesPtr[C any] interface {
	*C
	slots() []Index
}

func clearBranches[C any, PC branchesPtr[C]](c PC) {
	for i := range c.slots() {
		c.slots()[i] = nilIdx
	}
}

// Node is one element of a fixed arity tree: the payload plus its links. It
// is exported as a type, not for field access, because backing storages are
// parameterized over the element they hold; NewBinary and friends spell its
// instantiation for you.
type Node[T any, C any] struct {
	v      T
	parent Index
	kids   C
}

// FreeNode is the free-form counterpart of Node: children are an ordered
// slice instead of a positional block.
type FreeNode[T any] struct {
	v      T
	parent Index
	kids   []Index
}
