package gaussblur

import (
	"errors"

	"github.com/gogpu/gaussblur/internal/filter"
)

// Errors returned by the package.
var (
	// ErrInvalidArgument is returned for an empty image, a non-positive width,
	// a buffer length that is not a multiple of the width, a kernel size
	// below 3 or even, or a non-positive deviation.
	ErrInvalidArgument = filter.ErrInvalidArgument

	// ErrClosed is returned by Engine.FilterParallel after Close.
	ErrClosed = errors.New("gaussblur: engine closed")
)
