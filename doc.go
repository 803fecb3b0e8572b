// Package anf computes the Algebraic Normal Form (ANF) of Boolean functions.
//
// The ANF of a Boolean function f of n variables writes f as an XOR-sum of
// AND-monomials. Given the truth table of f, the coefficient table of its ANF
// lives in the same index space: after the transform, the bit at index k is
// the coefficient of the monomial formed by the variables whose bits are set
// in k (index 0 is the constant term).
//
// Three equivalent representations of a truth table are supported:
//   - a fixed-width unsigned integer, bit i holding f(i) ([Transform])
//   - a []bool of length 2^n, element i holding f(i) ([TransformSlice])
//   - a bitset.BitSet of length 2^n, for n past the machine word ([TransformBitSet])
//
// All three run the same in-place XOR butterfly (the Möbius transform over
// the Boolean subset lattice) in O(n·2^n) bit operations. The transform is an
// involution: applying it twice recovers the input.
//
// Truth tables of cellular automaton rules are the typical input; elementary
// rule 30 transforms to coefficient table 30, reading as x0 ^ x1 ^ x0.x1 ^ x2.
package anf

import (
	"github.com/blang/semver/v4"
)

// Version of the anf library
var Version = semver.MustParse("0.1.0")
