package anf

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/consensys/anf/internal/parallel"
)

const (
	// a pass may only fan out over goroutines once its blocks are aligned on
	// whole 64-bit words; below that, two blocks can share a word.
	wordSize = 64

	minParallelBlocks = 8
)

// TransformBitSet replaces table, in place, with the ANF coefficient table of
// the Boolean function it encodes, with the same bit convention as Transform.
// It is the variant to use for functions of more than 6 variables, where no
// machine word can hold the truth table.
//
// It returns ErrInvalidLength if table.Len() is not an exact power of two, in
// which case table is left untouched.
//
// Passes whose blocks span whole words are run in parallel; this changes
// nothing in the result, the block pairs of a pass touch disjoint words.
func TransformBitSet(table *bitset.BitSet) error {
	if table == nil {
		return ErrInvalidLength
	}
	size := table.Len()
	if size == 0 || size&(size-1) != 0 {
		return ErrInvalidLength
	}

	for blocksize := uint(1); blocksize < size; blocksize <<= 1 {
		nbBlocks := size / (blocksize << 1)
		xorBlock := func(blk uint) {
			source := blk * (blocksize << 1)
			target := source + blocksize
			for i := uint(0); i < blocksize; i++ {
				if table.Test(source + i) {
					table.Flip(target + i)
				}
			}
		}
		if blocksize >= wordSize && nbBlocks >= minParallelBlocks {
			parallel.Execute(0, int(nbBlocks), func(start, end int) {
				for blk := start; blk < end; blk++ {
					xorBlock(uint(blk))
				}
			})
		} else {
			for blk := uint(0); blk < nbBlocks; blk++ {
				xorBlock(blk)
			}
		}
	}
	return nil
}
