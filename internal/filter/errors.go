package filter

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for malformed images, widths or kernel sizes.
var ErrInvalidArgument = errors.New("gaussblur: invalid argument")

// MinKernelSize is the smallest accepted kernel side length.
const MinKernelSize = 3

func validateKernelSize(size int) error {
	if size < MinKernelSize {
		return fmt.Errorf("%w: kernel size must be >= %d: %d", ErrInvalidArgument, MinKernelSize, size)
	}
	if size%2 == 0 {
		return fmt.Errorf("%w: kernel size must be odd: %d", ErrInvalidArgument, size)
	}
	return nil
}

// Validate checks an image buffer of the given length against width and
// kernel size and returns the derived height.
func Validate(length, width, kernelSize int) (int, error) {
	if length == 0 {
		return 0, fmt.Errorf("%w: empty image", ErrInvalidArgument)
	}
	if width <= 0 {
		return 0, fmt.Errorf("%w: width must be > 0: %d", ErrInvalidArgument, width)
	}
	if length%width != 0 {
		return 0, fmt.Errorf("%w: length %d is not a multiple of width %d", ErrInvalidArgument, length, width)
	}
	if err := validateKernelSize(kernelSize); err != nil {
		return 0, err
	}
	return length / width, nil
}
