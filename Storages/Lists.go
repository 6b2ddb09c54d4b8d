// Package Storages implements flat backing collections and the sparse arenas
// built over them. Elements are addressed by plain integer indexes instead of
// pointers; removal leaves holes that are reclaimed through an intrusive free
// list and eliminated explicitly by Defragment.
package Storages

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// List is the contract every backing collection of an arena satisfies. The
// positions it hands out are raw and unstable: SwapRemove relocates the last
// element, so stable indexes exist only above the Slot layer, never here.
type List[T any] interface {
	//Append v at the end, returning its position. Fixed capacity
	//implementations return *FullError when full instead of growing.
	Append(v T) (int, error)
	//At returns a pointer to the element at position i, nil if out of range.
	At(i int) *T
	//SwapRemove removes position i by moving the last element into it.
	SwapRemove(i int) T
	Len() int
	Cap() int
	//Truncate keeps the first n elements. No effect if n>=Len().
	Truncate(n int)
}

// FullError reports an Append on a full fixed-capacity backing. Recoverable:
// the caller may defragment an arena above it and retry, or give up.
type FullError struct {
	Cap int
}

func (e *FullError) Error() string {
	return fmt.Sprintf("backing collection is full: capacity %d", e.Cap)
}

// VacantError reports an arena operation aimed at a vacant or out of range
// index. This is index misuse by the caller, not a routine condition.
type VacantError struct {
	Index int
}

func (e *VacantError) Error() string {
	return fmt.Sprintf("index %d does not refer to an occupied slot", e.Index)
}

func none[S constraints.Unsigned]() S {
	return ^S(0)
}
