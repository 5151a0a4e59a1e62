// core/msa/record.go
package msa

import "fmt"

// HeaderMark introduces a header line in the alignment format.
const HeaderMark byte = '>'

// Record is one alignment entry: the full header line (marker included)
// and the concatenated sequence, one byte per alignment column.
type Record struct {
	Header string
	Seq    []byte
}

// Alignment is an ordered record store. Insertion order controls output
// order; the index exists only to reject duplicate headers.
type Alignment struct {
	recs  []Record
	index map[string]int
}

func NewAlignment() *Alignment {
	return &Alignment{index: map[string]int{}}
}

// add starts an empty record under header and returns its slot, so the
// reader can keep an explicit cursor instead of "last key added".
func (a *Alignment) add(header string) (int, error) {
	if _, dup := a.index[header]; dup {
		return 0, fmt.Errorf("duplicate header %q", header)
	}
	a.index[header] = len(a.recs)
	a.recs = append(a.recs, Record{Header: header})
	return len(a.recs) - 1, nil
}

func (a *Alignment) appendSeq(slot int, line []byte) {
	a.recs[slot].Seq = append(a.recs[slot].Seq, line...)
}

// Len reports the number of records.
func (a *Alignment) Len() int { return len(a.recs) }

// Records exposes the backing slice in insertion order. Callers may
// mutate Seq contents in place; headers and record count are fixed.
func (a *Alignment) Records() []Record { return a.recs }
