// core/msa/find.go
package msa

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrReferenceNotFound means no header matched the reference name.
	ErrReferenceNotFound = errors.New("reference not found")
	// ErrAmbiguousReference means the reference name matched more than
	// one header, so masking against any single one would be arbitrary.
	ErrAmbiguousReference = errors.New("ambiguous reference")
)

// FindReference returns the single record whose header contains name.
// Matching is a plain substring test over the full header line, the
// in-process replacement for a `grep -A1` extraction step.
func (a *Alignment) FindReference(name string) (Record, error) {
	var hits []Record
	for _, rec := range a.recs {
		if strings.Contains(rec.Header, name) {
			hits = append(hits, rec)
		}
	}
	switch len(hits) {
	case 0:
		return Record{}, fmt.Errorf("%w: no header contains %q", ErrReferenceNotFound, name)
	case 1:
		return hits[0], nil
	}
	heads := make([]string, len(hits))
	for i, h := range hits {
		heads[i] = h.Header
	}
	return Record{}, fmt.Errorf("%w: %q matches %s", ErrAmbiguousReference, name, strings.Join(heads, ", "))
}
