package anf

// TransformSlice replaces table, in place, with the ANF coefficient table of
// the Boolean function it encodes: table[i] is the function's output on
// assignment i, and on return table[k] is the coefficient of the monomial
// whose variables are the set bits of k.
//
// It returns ErrInvalidLength if len(table) is not an exact power of two, in
// which case table is left untouched.
func TransformSlice(table []bool) error {
	n := len(table)
	if n == 0 || n&(n-1) != 0 {
		return ErrInvalidLength
	}
	TransformSliceUnchecked(table)
	return nil
}

// TransformSliceUnchecked is the fast path of TransformSlice: it performs no
// validation. Behavior is undefined if len(table) is not a power of two.
func TransformSliceUnchecked(table []bool) {
	size := len(table)
	for blocksize := 1; blocksize < size; blocksize <<= 1 {
		for source := 0; source < size; source += blocksize << 1 {
			target := source + blocksize
			for i := 0; i < blocksize; i++ {
				table[target+i] = table[target+i] != table[source+i]
			}
		}
	}
}
