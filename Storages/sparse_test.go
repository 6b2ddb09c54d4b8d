package Storages

import (
	"errors"
	"math/rand"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

const tOpN = 40000

func checkFreeList(t *testing.T, u *Sparse[int, uint32]) {
	t.Helper()
	if u.freeLen() != u.Holes() {
		t.Errorf("free list has %d slots, want %d", u.freeLen(), u.Holes())
	}
	seen := make(map[uint32]struct{})
	for i := u.free; i != none[uint32](); i = u.list.At(int(i)).next {
		if u.list.At(int(i)).full {
			t.Errorf("free list visits occupied slot %d", i)
		}
		if _, in := seen[i]; in {
			t.Fatalf("free list visits slot %d twice", i)
		}
		seen[i] = struct{}{}
	}
}

func TestSparse_InsertRemove(t *testing.T) {
	u := NewSparse[int, uint32](NewSlice[Slot[int, uint32]](16))
	content := make(map[uint32]int)
	live := make([]uint32, 0, tOpN)
	for n := 0; n < tOpN; n++ {
		if len(live) > 0 && rg.Uint32()&3 == 0 {
			k := rg.Intn(len(live))
			i := live[k]
			live[k] = live[len(live)-1]
			live = live[:len(live)-1]
			v, err := u.Remove(i)
			if err != nil {
				t.Fatalf("failed to remove %d: %v", i, err)
			}
			if v != content[i] {
				t.Errorf("removed %d from %d, want %d", v, i, content[i])
			}
			delete(content, i)
			if _, err = u.Remove(i); err == nil {
				t.Errorf("removed slot %d twice", i)
			}
		} else {
			i, err := u.Insert(n)
			if err != nil {
				t.Fatalf("failed to insert: %v", err)
			}
			if _, in := content[i]; in {
				t.Fatalf("insert returned live index %d", i)
			}
			content[i] = n
			live = append(live, i)
		}
	}
	if u.Len() != len(content) {
		t.Errorf("arena len is %d, want %d", u.Len(), len(content))
	}
	for i, v := range content {
		if p := u.Get(i); p == nil || *p != v {
			t.Errorf("index %d does not hold %d", i, v)
		}
	}
	checkFreeList(t, u)
}

func TestSparse_Reuse(t *testing.T) {
	u := NewSparse[int, uint32](NewSlice[Slot[int, uint32]](4))
	var is [3]uint32
	for i := range is {
		is[i], _ = u.Insert(i)
	}
	if _, err := u.Remove(is[1]); err != nil {
		t.Fatal(err)
	}
	if i, _ := u.Insert(9); i != is[1] {
		t.Errorf("insert took slot %d, want the just freed %d", i, is[1])
	}
	// LIFO order across several holes
	u.Remove(is[2])
	u.Remove(is[0])
	if i, _ := u.Insert(0); i != is[0] {
		t.Errorf("insert took slot %d, want %d", i, is[0])
	}
	if i, _ := u.Insert(0); i != is[2] {
		t.Errorf("insert took slot %d, want %d", i, is[2])
	}
	if u.Holes() != 0 {
		t.Errorf("arena has %d holes, want 0", u.Holes())
	}
}

func TestSparse_Vacant(t *testing.T) {
	u := NewSparse[int, uint32](NewSlice[Slot[int, uint32]](4))
	i, _ := u.Insert(1)
	if p := u.Get(i + 100); p != nil {
		t.Error("got value outside the backing")
	}
	var ve *VacantError
	if _, err := u.Remove(i + 100); !errors.As(err, &ve) {
		t.Errorf("remove outside the backing: %v", err)
	}
	u.Remove(i)
	if p := u.Get(i); p != nil {
		t.Error("got value from a hole")
	}
	if _, err := u.Remove(i); !errors.As(err, &ve) {
		t.Errorf("remove of a hole: %v", err)
	}
}

func TestSparse_Defragment(t *testing.T) {
	u := NewSparse[int, uint32](NewSlice[Slot[int, uint32]](0))
	content := make(map[uint32]int)
	for n := 0; n < tOpN; n++ {
		i, _ := u.Insert(n)
		content[i] = n
	}
	for i := range content {
		if rg.Uint32()&1 == 0 {
			u.Remove(i)
			delete(content, i)
		}
	}
	checkFreeList(t, u)
	moved := make(map[uint32]uint32)
	u.Defragment(func(old, new uint32) {
		moved[old] = new
	})
	if u.Holes() != 0 {
		t.Fatalf("arena has %d holes after defragment", u.Holes())
	}
	if u.list.Len() != u.Len() {
		t.Fatalf("backing length %d, want %d", u.list.Len(), u.Len())
	}
	if u.Len() != len(content) {
		t.Fatalf("arena len is %d, want %d", u.Len(), len(content))
	}
	for i, v := range content {
		at := i
		if nw, in := moved[i]; in {
			at = nw
		}
		if int(at) >= u.Len() {
			t.Fatalf("index %d remapped past the dense region to %d", i, at)
		}
		if p := u.Get(at); p == nil || *p != v {
			t.Errorf("index %d (was %d) does not hold %d", at, i, v)
		}
	}
	u.Defragment(func(old, new uint32) {
		t.Errorf("defragment of a dense arena moved %d to %d", old, new)
	})
	// freed indexes append again after the rebuild
	i, _ := u.Insert(-1)
	if int(i) != u.list.Len()-1 {
		t.Errorf("insert after defragment took %d, want a fresh slot", i)
	}
}

func TestSparse_Bounded(t *testing.T) {
	u := NewSparse[int, uint32](NewBounded[Slot[int, uint32]](8))
	for n := 0; n < 8; n++ {
		if _, err := u.Insert(n); err != nil {
			t.Fatalf("failed to insert below capacity: %v", err)
		}
	}
	var fe *FullError
	if _, err := u.Insert(8); !errors.As(err, &fe) {
		t.Fatalf("insert into a full arena: %v", err)
	} else if fe.Cap != 8 {
		t.Errorf("full error reports capacity %d, want 8", fe.Cap)
	}
	if _, err := u.Remove(3); err != nil {
		t.Fatal(err)
	}
	if i, err := u.Insert(9); err != nil || i != 3 {
		t.Errorf("insert after a removal got (%d, %v), want the freed slot 3", i, err)
	}
	if _, err := u.Insert(10); !errors.As(err, &fe) {
		t.Errorf("insert into a refilled arena: %v", err)
	}
}

func TestSparse_Clear(t *testing.T) {
	u := NewSparse[int, uint32](NewSlice[Slot[int, uint32]](0))
	for n := 0; n < 100; n++ {
		u.Insert(n)
	}
	u.Remove(5)
	if u.IsEmpty() {
		t.Error("arena with elements reports empty")
	}
	if u.IsDense() {
		t.Error("arena with a hole reports dense")
	}
	u.Clear()
	if u.Len() != 0 || u.Holes() != 0 || u.freeLen() != 0 {
		t.Error("clear left state behind")
	}
	if !u.IsEmpty() || !u.IsDense() {
		t.Error("cleared arena must be empty and dense")
	}
	if i, _ := u.Insert(1); i != 0 {
		t.Errorf("first insert after clear took %d", i)
	}
}

func TestSparse_Each(t *testing.T) {
	u := NewSparse[int, uint32](NewRing[Slot[int, uint32]](4))
	for n := 0; n < 64; n++ {
		u.Insert(n)
	}
	for i := uint32(0); i < 64; i += 2 {
		u.Remove(i)
	}
	prev := -1
	n := 0
	u.Each(func(i uint32, v *int) bool {
		if int(i) <= prev {
			t.Errorf("each visited %d after %d", i, prev)
		}
		prev = int(i)
		if *v != int(i) {
			t.Errorf("index %d holds %d", i, *v)
		}
		n++
		return true
	})
	if n != u.Len() {
		t.Errorf("each visited %d slots, want %d", n, u.Len())
	}
	n = 0
	u.Each(func(uint32, *int) bool {
		n++
		return false
	})
	if n != 1 {
		t.Errorf("each ignored an early stop, visited %d", n)
	}
}
