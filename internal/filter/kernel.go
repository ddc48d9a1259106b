package filter

import (
	"fmt"
	"math"
)

// GaussianKernel2D generates a size x size Gaussian kernel in row-major order.
// The kernel is normalized so all values sum to 1.0.
//
// Entry (i, j), with i and j in [-size/2, size/2], holds
// exp(-(i²+j²)/(2σ²)) / (π·2σ²) divided by the sum of all entries.
func GaussianKernel2D(size int, deviation float64) ([]float64, error) {
	if err := validateKernelSize(size); err != nil {
		return nil, err
	}
	if !(deviation > 0) || math.IsInf(deviation, 0) {
		return nil, fmt.Errorf("%w: deviation must be a positive finite number: %v", ErrInvalidArgument, deviation)
	}

	radius := size / 2
	twoSigmaSq := 2 * deviation * deviation
	kernel := make([]float64, size*size)
	sum := 0.0

	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			val := math.Exp(-float64(i*i+j*j)/twoSigmaSq) / (math.Pi * twoSigmaSq)
			kernel[size*(i+radius)+j+radius] = val
			sum += val
		}
	}

	for i := range kernel {
		kernel[i] /= sum
	}

	return kernel, nil
}

// KernelCenter returns the center index of a kernel of the given size.
func KernelCenter(kernelSize int) int {
	return kernelSize / 2
}
