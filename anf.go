package anf

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Transform computes the ANF coefficient table of the Boolean function of
// nbVariables variables whose truth table is packed in rule (bit i of rule is
// the function's output on assignment i).
//
// The coefficient table comes back in the same packing: bit k of the result
// is the coefficient of the monomial whose variables are the set bits of k.
//
// It returns ErrInsufficientCapacity if U is too narrow to hold 2^nbVariables
// bits (or nbVariables is negative), and ErrOutOfDomain if rule has bits set
// at or above position 2^nbVariables. On error the returned value is 0.
func Transform[U constraints.Unsigned](rule U, nbVariables int) (U, error) {
	// no unsigned type is wider than 64 bits, so nbVariables caps at 6
	width := bits.Len64(uint64(^U(0)))
	if nbVariables < 0 || nbVariables > 6 || width < 1<<nbVariables {
		return 0, ErrInsufficientCapacity
	}
	if rule>>(1<<nbVariables) != 0 {
		return 0, ErrOutOfDomain
	}
	return TransformUnchecked(rule, nbVariables), nil
}

// TransformUnchecked is the fast path of Transform: it performs no validation
// of its inputs. Behavior is undefined if U is narrower than 2^nbVariables
// bits, if rule >= 2^(2^nbVariables), or if nbVariables is negative.
func TransformUnchecked[U constraints.Unsigned](rule U, nbVariables int) U {
	size := 1 << nbVariables
	for blocksize := 1; blocksize < size; blocksize <<= 1 {
		for source := 0; source < size; source += blocksize << 1 {
			target := source + blocksize
			for i := 0; i < blocksize; i++ {
				rule ^= ((rule >> (source + i)) & 1) << (target + i)
			}
		}
	}
	return rule
}
