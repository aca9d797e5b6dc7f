// Package bitset implements a word-packed bit-vector occupancy table, the
// free-list structure backing each descriptor heap's slot allocator.
package bitset

import "math/bits"

const wordBits = 64

// Set tracks occupancy of a fixed number of slots. A cleared bit means the
// slot is free; a set bit means it is owned by exactly one resource view.
type Set struct {
	words []uint64
	size  uint32
	count uint32 // number of occupied slots
}

// New creates a Set with all size slots initially free.
func New(size uint32) *Set {
	n := (size + wordBits - 1) / wordBits
	return &Set{
		words: make([]uint64, n),
		size:  size,
	}
}

// Len returns the total number of slots.
func (s *Set) Len() uint32 {
	return s.size
}

// Count returns the number of currently occupied slots.
func (s *Set) Count() uint32 {
	return s.count
}

// Free returns the number of currently free slots.
func (s *Set) Free() uint32 {
	return s.size - s.count
}

// Allocate finds the first free slot, marks it occupied, and returns its
// index. ok is false if the set is full.
func (s *Set) Allocate() (index uint32, ok bool) {
	for w := range s.words {
		word := s.words[w]
		if word == ^uint64(0) {
			continue
		}
		bit := bits.TrailingZeros64(^word)
		idx := uint32(w)*wordBits + uint32(bit)
		if idx >= s.size {
			return 0, false
		}
		s.words[w] |= 1 << uint(bit)
		s.count++
		return idx, true
	}
	return 0, false
}

// Release marks index as free. It is a no-op if the slot was already free.
func (s *Set) Release(index uint32) {
	if index >= s.size {
		return
	}
	w, bit := index/wordBits, index%wordBits
	mask := uint64(1) << bit
	if s.words[w]&mask != 0 {
		s.words[w] &^= mask
		s.count--
	}
}

// IsSet reports whether index is currently occupied.
func (s *Set) IsSet(index uint32) bool {
	if index >= s.size {
		return false
	}
	w, bit := index/wordBits, index%wordBits
	return s.words[w]&(1<<bit) != 0
}
