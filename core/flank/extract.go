// core/flank/extract.go
package flank

// Extract scans the reference sequence once, left to right, and returns
// every maximal gap-run as a Range. Ranges come out in ascending Start
// order and never overlap. A gap-run that reaches the end of the
// sequence is closed at end-of-scan, so trailing gap columns are masked
// like any others.
func Extract(seq []byte) []Range {
	var list []Range
	open := false
	for pos, c := range seq {
		gap := c == Gap
		switch {
		case gap && !open:
			list = append(list, Range{ID: len(list) + 1, Start: pos})
			open = true
		case !gap && open:
			r := &list[len(list)-1]
			r.End = pos - 1
			r.Total = r.End - r.Start + 1
			open = false
		}
	}
	if open {
		r := &list[len(list)-1]
		r.End = len(seq) - 1
		r.Total = r.End - r.Start + 1
	}
	return list
}
