package filter

import (
	"github.com/cwbudde/algo-vecmath"
)

// InteriorRows returns the half-open row range [start, end) whose kernel
// neighborhood lies fully inside an image of the given height.
// Returns start >= end when the image has no interior.
func InteriorRows(height, kernelSize int) (start, end int) {
	radius := KernelCenter(kernelSize)
	return radius, height - radius
}

// clipRows intersects [rowStart, rowEnd) with the interior rows.
func clipRows(height, radius, rowStart, rowEnd int) (int, int, bool) {
	if rowStart < radius {
		rowStart = radius
	}
	if rowEnd > height-radius {
		rowEnd = height - radius
	}
	return rowStart, rowEnd, rowStart < rowEnd
}

// ConvolveRows convolves the interior cells of rows [rowStart, rowEnd) of src
// with a size x size kernel and writes them to the same positions in dst.
//
// Each cell is accumulated in an 8-bit register: after every tap the running
// value is truncated toward zero and wrapped modulo 256. Cells outside the
// interior, and rows outside the range, are left untouched.
func ConvolveRows(dst, src []byte, width int, kernel []float64, size, rowStart, rowEnd int) {
	radius := KernelCenter(size)
	height := len(src) / width

	rowStart, rowEnd, ok := clipRows(height, radius, rowStart, rowEnd)
	if !ok || width-radius <= radius {
		return
	}

	for i := rowStart; i < rowEnd; i++ {
		for j := radius; j < width-radius; j++ {
			var acc uint8
			for m := -radius; m <= radius; m++ {
				srcRow := width*(i+m) + j
				kRow := size*(m+radius) + radius
				for n := -radius; n <= radius; n++ {
					acc = accumulate(acc, src[srcRow+n], kernel[kRow+n])
				}
			}
			dst[width*i+j] = acc
		}
	}
}

// accumulate adds sample*weight to an 8-bit accumulator.
// The float sum is truncated toward zero and then wrapped to 8 bits.
func accumulate(acc, sample uint8, weight float64) uint8 {
	return uint8(int64(float64(acc) + float64(sample)*weight))
}

// ConvolveRowsFloat is the float64 counterpart of ConvolveRows.
//
// Each kernel row is applied as one vector multiply over the matching source
// span, partial sums are kept in float64, and the final value is rounded to
// the nearest integer and clamped to [0, 255].
func ConvolveRowsFloat(dst, src []byte, width int, kernel []float64, size, rowStart, rowEnd int) {
	radius := KernelCenter(size)
	height := len(src) / width

	rowStart, rowEnd, ok := clipRows(height, radius, rowStart, rowEnd)
	if !ok || width-radius <= radius {
		return
	}

	// Source rows needed by this range, widened to float64 once.
	first := rowStart - radius
	last := rowEnd + radius
	plane := make([]float64, (last-first)*width)
	for k, v := range src[first*width : last*width] {
		plane[k] = float64(v)
	}

	prod := make([]float64, size)

	for i := rowStart; i < rowEnd; i++ {
		for j := radius; j < width-radius; j++ {
			sum := 0.0
			for m := -radius; m <= radius; m++ {
				span := width*(i+m-first) + j - radius
				vecmath.MulBlock(prod, plane[span:span+size], kernel[size*(m+radius):size*(m+radius+1)])
				for _, p := range prod {
					sum += p
				}
			}
			dst[width*i+j] = clampUint8(sum)
		}
	}
}

// clampUint8 clamps a float64 to [0, 255] and converts to uint8.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
