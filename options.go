package gaussblur

// Defaults used when no option overrides them.
const (
	// DefaultCoreSize is the default kernel side length.
	DefaultCoreSize = 3

	// DefaultDeviation is the default Gaussian standard deviation.
	DefaultDeviation = 1.0

	// defaultBandsPerWorker oversubscribes the pool so work stealing can
	// balance uneven bands.
	defaultBandsPerWorker = 4
)

// Option configures a filter call or an Engine.
// Use functional options to customize filtering.
//
// Example:
//
//	// Defaults: 3x3 kernel, sigma 1.0, 8-bit accumulation
//	out, err := gaussblur.Filter(pix, width)
//
//	// 7x7 kernel, sigma 2, float accumulation
//	out, err := gaussblur.Filter(pix, width,
//	    gaussblur.WithCoreSize(7),
//	    gaussblur.WithDeviation(2),
//	    gaussblur.WithPrecision(gaussblur.PrecisionFloat))
type Option func(*options)

// options holds the configuration of a filter call.
type options struct {
	coreSize       int
	deviation      float64
	workers        int
	precision      Precision
	bandsPerWorker int
}

// defaultOptions returns the default filter options.
func defaultOptions() options {
	return options{
		coreSize:       DefaultCoreSize,
		deviation:      DefaultDeviation,
		workers:        0, // GOMAXPROCS
		precision:      PrecisionWrap8,
		bandsPerWorker: defaultBandsPerWorker,
	}
}

// applyOptions applies zero or more options to the defaults.
func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithCoreSize sets the kernel side length.
// The value is validated when filtering: sizes below 3 or even sizes make
// the call fail with ErrInvalidArgument.
func WithCoreSize(size int) Option {
	return func(o *options) {
		o.coreSize = size
	}
}

// WithDeviation sets the Gaussian standard deviation.
// Non-positive or non-finite values make the call fail with ErrInvalidArgument.
func WithDeviation(deviation float64) Option {
	return func(o *options) {
		o.deviation = deviation
	}
}

// WithWorkers sets the number of parallel workers.
// Zero or negative values select runtime.GOMAXPROCS(0).
// Sequential filtering ignores this option.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.workers = n
	}
}

// WithPrecision selects the accumulation semantics.
// Unknown values are ignored.
func WithPrecision(p Precision) Option {
	return func(o *options) {
		if p.IsValid() {
			o.precision = p
		}
	}
}

// WithBandsPerWorker sets how many row bands each worker gets on average.
// Values of 0 or below are ignored.
func WithBandsPerWorker(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bandsPerWorker = n
		}
	}
}
