// internal/output/output.go
package output

import (
	"os"
	"path/filepath"

	"msaclean-core/msa"
)

// DefaultNamePrefix is prepended to the input basename when --out is
// not supplied.
const DefaultNamePrefix = "cleaned_loci_"

// DefaultName derives the output path for an input alignment: the
// input's basename with the cleaned prefix, in the current directory.
func DefaultName(input string) string {
	return DefaultNamePrefix + filepath.Base(input)
}

// WritePath serializes the alignment to path. The file is created only
// here, after all masking has happened in memory, so a failed run never
// leaves a partial output behind a success exit. The handle is closed
// on every path; close errors on success are reported (buffered data
// may still be in flight).
func WritePath(path string, aln *msa.Alignment) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := msa.Write(fh, aln); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
