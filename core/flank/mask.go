// core/flank/mask.go
package flank

import (
	"fmt"

	"msaclean-core/msa"
)

// Apply overwrites the columns of every record in aln with gaps over
// each range, in ascending Start order. Replacement length equals the
// replaced length, so column indices stay valid across ranges and
// reapplication is idempotent. Headers and record count are untouched.
//
// Sequences are assumed to share the reference's length (standard MSA
// invariant). A record too short for a range is reported rather than
// silently truncated.
func Apply(ranges []Range, aln *msa.Alignment) error {
	for _, rec := range aln.Records() {
		for _, r := range ranges {
			if r.End >= len(rec.Seq) {
				return fmt.Errorf("record %q: sequence length %d shorter than masked columns %d-%d",
					rec.Header, len(rec.Seq), r.Start, r.End)
			}
			for i := r.Start; i <= r.End; i++ {
				rec.Seq[i] = Gap
			}
		}
	}
	return nil
}
