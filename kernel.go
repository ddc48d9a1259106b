package gaussblur

import (
	"gonum.org/v1/gonum/mat"

	"github.com/gogpu/gaussblur/internal/filter"
)

// Kernel is a normalized square Gaussian convolution kernel.
//
// Weights are stored row-major; entry (row, col) corresponds to the offset
// (row-Radius, col-Radius) from the center pixel. A Kernel is immutable and
// safe for concurrent reads.
type Kernel struct {
	size      int
	deviation float64
	weights   []float64
}

// BuildKernel returns a size x size Gaussian kernel with the given standard
// deviation, normalized so its weights sum to 1.
//
// Returns an error wrapping ErrInvalidArgument if size is below 3 or even,
// or if deviation is not a positive finite number.
func BuildKernel(size int, deviation float64) (*Kernel, error) {
	weights, err := filter.GaussianKernel2D(size, deviation)
	if err != nil {
		return nil, err
	}

	Logger().Debug("gaussblur: kernel built", "size", size, "deviation", deviation)

	return &Kernel{
		size:      size,
		deviation: deviation,
		weights:   weights,
	}, nil
}

// Size returns the side length of the kernel.
func (k *Kernel) Size() int {
	return k.size
}

// Radius returns Size()/2, the width of the unprocessed output border.
func (k *Kernel) Radius() int {
	return filter.KernelCenter(k.size)
}

// Deviation returns the standard deviation the kernel was built with.
func (k *Kernel) Deviation() float64 {
	return k.deviation
}

// At returns the weight at the given kernel row and column.
// It panics if row or col is outside [0, Size()).
func (k *Kernel) At(row, col int) float64 {
	if row < 0 || row >= k.size || col < 0 || col >= k.size {
		panic("gaussblur: kernel index out of range")
	}
	return k.weights[k.size*row+col]
}

// Weights returns a copy of the kernel weights in row-major order.
func (k *Kernel) Weights() []float64 {
	return append([]float64(nil), k.weights...)
}

// Sum returns the sum of all weights. For a built kernel it equals 1 up to
// floating-point rounding.
func (k *Kernel) Sum() float64 {
	sum := 0.0
	for _, w := range k.weights {
		sum += w
	}
	return sum
}

// Dense returns the kernel as a Size() x Size() gonum matrix.
// The matrix owns a copy of the weights.
func (k *Kernel) Dense() *mat.Dense {
	return mat.NewDense(k.size, k.size, k.Weights())
}
