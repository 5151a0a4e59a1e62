// core/msa/reader.go
package msa

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrMissingHeader reports a sequence line that precedes any header
// line, leaving no open record to append to.
var ErrMissingHeader = errors.New("sequence line before any header")

// Read parses a line-oriented alignment stream into an Alignment.
// A line starting with '>' opens a new record whose identifier is the
// whole line, marker included. Every other non-blank line is appended
// verbatim to the record opened most recently. A blank line terminates
// the scan; anything after it is ignored.
func Read(r io.Reader) (*Alignment, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	aln := NewAlignment()
	cur := -1
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			break
		}
		if line[0] == HeaderMark {
			slot, err := aln.add(string(line))
			if err != nil {
				return nil, err
			}
			cur = slot
			continue
		}
		if cur < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingHeader, line)
		}
		aln.appendSeq(cur, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("msa scan: %w", err)
	}
	return aln, nil
}

// ReadPath opens path (plain, gzip, or "-" for stdin) and parses it.
func ReadPath(path string) (*Alignment, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Read(rc)
}
