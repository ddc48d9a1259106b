package gaussblur

import (
	"errors"

	"github.com/gogpu/gaussblur/internal/filter"
	"github.com/gogpu/gaussblur/internal/parallel"
)

// rowConvolver writes the interior cells of rows [rowStart, rowEnd) of dst.
type rowConvolver func(dst, src []byte, width int, kernel []float64, size, rowStart, rowEnd int)

// job is one validated filter invocation: immutable input and kernel, and a
// freshly allocated zeroed output.
type job struct {
	src      []byte
	dst      []byte
	width    int
	height   int
	kernel   *Kernel
	convolve rowConvolver
}

// newJob validates the input and builds a kernel owned by this call alone.
// Nothing is allocated for the output until every check has passed.
func newJob(image []byte, width int, o options) (*job, error) {
	height, err := filter.Validate(len(image), width, o.coreSize)
	if err != nil {
		return nil, err
	}

	kernel, err := BuildKernel(o.coreSize, o.deviation)
	if err != nil {
		return nil, err
	}

	convolve := filter.ConvolveRows
	if o.precision == PrecisionFloat {
		convolve = filter.ConvolveRowsFloat
	}

	return &job{
		src:      image,
		dst:      make([]byte, width*height),
		width:    width,
		height:   height,
		kernel:   kernel,
		convolve: convolve,
	}, nil
}

// run convolves the rows of one band.
func (j *job) run(b parallel.Band) {
	j.convolve(j.dst, j.src, j.width, j.kernel.weights, j.kernel.size, b.Start, b.End)
}

// interior returns the rows whose output is computed.
func (j *job) interior() parallel.Band {
	start, end := filter.InteriorRows(j.height, j.kernel.size)
	return parallel.Band{Start: start, End: end}
}

// runSequential convolves every interior row on the calling goroutine.
func (j *job) runSequential() []byte {
	j.run(j.interior())
	return j.dst
}

// runParallel splits the interior rows into bands and runs one task per band
// on pool. It returns once every band has been written.
func (j *job) runParallel(pool *parallel.WorkerPool, bandsPerWorker int) ([]byte, error) {
	in := j.interior()
	bands := parallel.SplitRows(in.Start, in.End, pool.Workers()*bandsPerWorker)

	Logger().Debug("gaussblur: parallel filter",
		"width", j.width,
		"height", j.height,
		"core", j.kernel.size,
		"workers", pool.Workers(),
		"bands", len(bands))

	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { j.run(b) }
	}

	if err := pool.ExecuteAll(work); err != nil {
		if errors.Is(err, parallel.ErrClosed) {
			return nil, ErrClosed
		}
		return nil, err
	}

	return j.dst, nil
}

// Filter blurs image sequentially and returns a new buffer of the same length.
//
// image is a row-major grayscale buffer and width its row length. The kernel
// size defaults to DefaultCoreSize and the deviation to DefaultDeviation.
// Pixels within the kernel radius of an edge are zero in the output.
//
// Returns an error wrapping ErrInvalidArgument if image is empty, width is not
// positive, len(image) is not a multiple of width, or the kernel size is
// below 3 or even. The input is never modified.
func Filter(image []byte, width int, opts ...Option) ([]byte, error) {
	j, err := newJob(image, width, applyOptions(opts))
	if err != nil {
		return nil, err
	}
	return j.runSequential(), nil
}

// FilterParallel blurs image on a temporary worker pool and returns a new
// buffer byte-identical to the one Filter returns for the same arguments.
//
// The interior rows are split into disjoint bands, one task per band. The
// pool is started after validation succeeds and stopped before returning.
// Use an Engine to reuse a pool across calls.
func FilterParallel(image []byte, width int, opts ...Option) ([]byte, error) {
	o := applyOptions(opts)

	j, err := newJob(image, width, o)
	if err != nil {
		return nil, err
	}

	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()

	return j.runParallel(pool, o.bandsPerWorker)
}

// Engine is a reusable blur configuration with a long-lived worker pool.
//
// Thread safety: Engine is safe for concurrent use. Calls share the pool but
// never share input, kernel or output buffers.
//
// Create engines with NewEngine. A zero Engine has no pool and behaves like a
// closed one.
type Engine struct {
	opts options
	pool *parallel.WorkerPool
}

// NewEngine creates an Engine and starts its worker pool.
// Call Close to stop the pool.
func NewEngine(opts ...Option) *Engine {
	o := applyOptions(opts)
	return &Engine{
		opts: o,
		pool: parallel.NewWorkerPool(o.workers),
	}
}

// Filter blurs image sequentially with the engine's options.
// It keeps working after Close.
func (e *Engine) Filter(image []byte, width int) ([]byte, error) {
	j, err := newJob(image, width, e.opts)
	if err != nil {
		return nil, err
	}
	return j.runSequential(), nil
}

// FilterParallel blurs image on the engine's worker pool.
// The result is byte-identical to Filter. Returns ErrClosed after Close.
func (e *Engine) FilterParallel(image []byte, width int) ([]byte, error) {
	if e.pool == nil || !e.pool.IsRunning() {
		return nil, ErrClosed
	}

	j, err := newJob(image, width, e.opts)
	if err != nil {
		return nil, err
	}
	return j.runParallel(e.pool, e.opts.bandsPerWorker)
}

// Workers returns the number of workers in the engine's pool.
func (e *Engine) Workers() int {
	if e.pool == nil {
		return 0
	}
	return e.pool.Workers()
}

// Close stops the worker pool. Close is safe to call multiple times.
func (e *Engine) Close() {
	if e.pool == nil {
		return
	}
	e.pool.Close()
}
