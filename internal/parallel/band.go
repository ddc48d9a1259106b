package parallel

// Band is a half-open range of image rows [Start, End).
type Band struct {
	Start int
	End   int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	if b.End <= b.Start {
		return 0
	}
	return b.End - b.Start
}

// SplitRows partitions [start, end) into at most n contiguous bands whose
// sizes differ by at most one row. Bands are returned in row order and
// together cover the range exactly once.
//
// Returns nil for an empty range. If n is 0 or negative, a single band is used.
func SplitRows(start, end, n int) []Band {
	total := end - start
	if total <= 0 {
		return nil
	}
	if n <= 0 {
		n = 1
	}
	if n > total {
		n = total
	}

	base := total / n
	extra := total % n

	bands := make([]Band, n)
	row := start
	for i := range bands {
		size := base
		if i < extra {
			size++
		}
		bands[i] = Band{Start: row, End: row + size}
		row += size
	}

	return bands
}
