// core/msa/writer.go
package msa

import (
	"bufio"
	"io"
)

// Write serializes the alignment: per record in insertion order, the
// header line then the whole sequence on a single line (no wrapping).
func Write(w io.Writer, aln *Alignment) error {
	bw := bufio.NewWriter(w)
	for _, rec := range aln.Records() {
		if _, err := bw.WriteString(rec.Header); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		if _, err := bw.Write(rec.Seq); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
