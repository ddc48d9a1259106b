package parallel

import "testing"

func TestSplitRows(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		n          int
		want       []Band
	}{
		{"even", 0, 8, 4, []Band{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"remainder first", 2, 9, 3, []Band{{2, 5}, {5, 7}, {7, 9}}},
		{"more bands than rows", 1, 4, 10, []Band{{1, 2}, {2, 3}, {3, 4}}},
		{"single band", 5, 20, 1, []Band{{5, 20}}},
		{"zero bands", 0, 3, 0, []Band{{0, 3}}},
		{"negative bands", 0, 3, -2, []Band{{0, 3}}},
		{"empty range", 4, 4, 3, nil},
		{"inverted range", 6, 2, 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRows(tt.start, tt.end, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitRows(%d, %d, %d) = %v, want %v", tt.start, tt.end, tt.n, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitRows(%d, %d, %d)[%d] = %v, want %v", tt.start, tt.end, tt.n, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitRowsCoversRange(t *testing.T) {
	for total := 1; total <= 50; total++ {
		for n := 1; n <= 12; n++ {
			bands := SplitRows(3, 3+total, n)

			next := 3
			minRows, maxRows := total, 0
			for _, b := range bands {
				if b.Start != next {
					t.Fatalf("total=%d n=%d: band %v starts at %d, want %d", total, n, b, b.Start, next)
				}
				if b.Rows() == 0 {
					t.Fatalf("total=%d n=%d: empty band %v", total, n, b)
				}
				minRows = min(minRows, b.Rows())
				maxRows = max(maxRows, b.Rows())
				next = b.End
			}

			if next != 3+total {
				t.Fatalf("total=%d n=%d: bands end at %d, want %d", total, n, next, 3+total)
			}
			if maxRows-minRows > 1 {
				t.Errorf("total=%d n=%d: band sizes range %d..%d", total, n, minRows, maxRows)
			}
		}
	}
}

func TestBandRows(t *testing.T) {
	tests := []struct {
		band Band
		want int
	}{
		{Band{0, 5}, 5},
		{Band{3, 4}, 1},
		{Band{4, 4}, 0},
		{Band{5, 2}, 0},
	}

	for _, tt := range tests {
		if got := tt.band.Rows(); got != tt.want {
			t.Errorf("%v.Rows() = %d, want %d", tt.band, got, tt.want)
		}
	}
}
