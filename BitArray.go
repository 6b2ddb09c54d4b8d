package Go_Arenas

import (
	"math/bits"
)

func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a plain array of bits. Out of range accesses panic like slice accesses.
type BitArray struct {
	bits []uint
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Count the raised bits.
func (u BitArray) Count() (c int) {
	for _, w := range u.bits {
		c += bits.OnesCount(w)
	}
	return
}

// Grow in place so that Len()>=size, keeping existing bits. Does nothing if already large enough.
func (u *BitArray) Grow(size int) {
	if size <= u.Len() {
		return
	}
	nb := make([]uint, (size+bits.UintSize-1)/bits.UintSize)
	copy(nb, u.bits)
	u.bits = nb
}

// Clear lowers all bits.
func (u BitArray) Clear() {
	for i := range u.bits {
		u.bits[i] = 0
	}
}
