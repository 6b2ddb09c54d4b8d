// Package Trees layers index-based tree topologies over the Storages arenas.
// Nodes live by value inside one arena; parent and child links are arena
// indexes, never pointers, so a tree owns no per-node allocations and can run
// over a fixed-capacity backing. Fixed arity trees (binary, quad, oct) address
// children positionally; the free-form tree keeps an ordered child list.
package Trees

import (
	"fmt"
)

// Index names one node within one tree. Indexes from different trees are
// unrelated; Defragment invalidates indexes held outside the tree's own
// fields.
type Index = uint32

const nilIdx = ^Index(0)

// TakenError reports an insertion aimed at a child position that already
// holds a child, or a root insertion into a tree that has a root. The caller
// picks another position or removes the occupant first.
type TakenError struct {
	Parent Index
	Pos    int
}

func (e *TakenError) Error() string {
	if e.Pos < 0 {
		return "tree already has a root"
	}
	return fmt.Sprintf("position %d of node %d already holds a child", e.Pos, e.Parent)
}

// BoundsError reports a child position outside a fixed arity.
type BoundsError struct {
	Pos, Arity int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("position %d is out of range for arity %d", e.Pos, e.Arity)
}

// DegreeError is the ordered-child-list counterpart of BoundsError: the valid
// positions are [0, degree], where degree is the node's current child count
// and inserting at degree appends.
type DegreeError struct {
	Pos, Degree int
}

func (e *DegreeError) Error() string {
	return fmt.Sprintf("position %d is out of range for degree %d", e.Pos, e.Degree)
}

// ReparentError reports a single-node removal whose children cannot be
// spliced onto the former parent without a policy decision: more children
// than the vacated position can absorb, or a root with children left behind.
// Resolution belongs to the caller, typically by removing the subtree instead
// or detaching children first.
type ReparentError struct {
	Node     Index
	Children int
}

func (e *ReparentError) Error() string {
	return fmt.Sprintf("cannot reparent %d children of node %d onto its former parent", e.Children, e.Node)
}

// CorruptError reports a dangling or doubly-owned reference discovered while
// validating the topology before defragmentation. It means an internal
// invariant was already broken; escalate it as a defect, don't retry.
type CorruptError struct {
	Node, Ref Index
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("node %d holds an inconsistent reference to %d", e.Node, e.Ref)
}
