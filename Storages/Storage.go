package Storages

import (
	"golang.org/x/exp/constraints"
)

// Storage is the arena contract consumed by the tree packages: insertion
// returning a stable index, removal and lookup by index, and explicit
// defragmentation. Implemented by Sparse (tagged slots, the safe default) and
// Packed (untagged layout with external occupancy bookkeeping).
//
// Arenas are single-owner: no Storage implementation locks internally.
// Concurrent reads (Get, Each) are fine only while no mutation runs, under
// whatever reader/writer discipline the caller enforces outside.
type Storage[T any, S constraints.Unsigned] interface {
	//Insert v, reusing a free slot if one exists, and return its index. The
	//index stays valid until Remove(index) or Defragment.
	Insert(v T) (S, error)
	//Remove the element at i. Returns *VacantError if i is not occupied;
	//that is a caller bug, not a routine condition.
	Remove(i S) (T, error)
	//Get a pointer to the element at i, nil when i is vacant or out of
	//range. Doubles as a liveness probe.
	Get(i S) *T
	//Len is the number of occupied slots, not the backing length.
	Len() int
	Cap() int
	IsEmpty() bool
	//Holes is the number of reclaimable vacant slots below the backing length.
	Holes() int
	//IsDense reports whether the arena has no holes, i.e. Defragment would be
	//a no-op.
	IsDense() bool
	//Each calls f for every occupied slot in ascending index order until f
	//returns false.
	Each(f func(S, *T) bool)
	//Defragment eliminates every hole, relocating elements downward and
	//reporting each relocation through moved(old, new), then shrinks the
	//backing to Len(). All previously returned indexes of relocated elements
	//are invalid afterwards; callers holding indexes externally must rewrite
	//them from the reported moves. Never triggered implicitly.
	Defragment(moved func(old, new S))
	//Clear removes everything, keeping the backing allocation.
	Clear()
}
