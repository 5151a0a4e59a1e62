// core/flank/range.go

// Package flank derives gap-run column ranges from a reference sequence
// and masks those columns across a whole alignment.
package flank

// Gap is the alignment gap character.
const Gap byte = '-'

// Range is one maximal run of gap characters in the reference.
// Start and End are zero-based column indices, End inclusive.
// ID is the 1-based discovery order; Total = End - Start + 1.
type Range struct {
	ID    int
	Start int
	End   int
	Total int
}
