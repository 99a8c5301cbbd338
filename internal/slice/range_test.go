// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slice

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeRange(t *testing.T) {
	tests := []struct {
		name      string
		pageCount int
		requested int
		skipFirst bool
		want      PageRange
	}{
		{"fewer pages than requested", 2, 5, false, PageRange{0, 2}},
		{"skip first on two pages", 2, 5, true, PageRange{1, 2}},
		{"exact fit", 3, 3, false, PageRange{0, 3}},
		{"more pages than requested", 10, 3, false, PageRange{0, 3}},
		{"skip first on long document", 10, 3, true, PageRange{1, 4}},
		{"single page skip first", 1, 3, true, PageRange{1, 1}},
		{"empty document", 0, 3, false, PageRange{0, 0}},
		{"empty document skip first", 0, 3, true, PageRange{1, 1}},
		{"zero requested", 10, 0, false, PageRange{0, 0}},
		{"negative requested", 10, -2, true, PageRange{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRange(tt.pageCount, tt.requested, tt.skipFirst)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.Len(), 0)
		})
	}
}

// TestComputeRange_Formula checks pagesWritten = max(0, min(N, P - offset))
// across a grid of inputs.
func TestComputeRange_Formula(t *testing.T) {
	for p := 0; p <= 8; p++ {
		for n := -1; n <= 8; n++ {
			for _, skip := range []bool{false, true} {
				offset := 0
				if skip {
					offset = 1
				}
				want := max(0, min(n, p-offset))
				got := ComputeRange(p, n, skip)
				assert.Equal(t, want, got.Len(), fmt.Sprintf("P=%d N=%d skip=%v", p, n, skip))
				if !got.Empty() {
					assert.Equal(t, offset, got.Start)
					assert.LessOrEqual(t, got.End, p)
				}
			}
		}
	}
}

func TestPageRange_Selection(t *testing.T) {
	assert.Equal(t, "1-3", PageRange{0, 3}.Selection())
	assert.Equal(t, "2-2", PageRange{1, 2}.Selection())
	assert.Equal(t, "", PageRange{1, 1}.Selection())
}
