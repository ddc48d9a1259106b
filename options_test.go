package gaussblur

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()

	if o.coreSize != DefaultCoreSize {
		t.Errorf("coreSize = %d, want %d", o.coreSize, DefaultCoreSize)
	}
	if o.deviation != DefaultDeviation {
		t.Errorf("deviation = %v, want %v", o.deviation, DefaultDeviation)
	}
	if o.workers != 0 {
		t.Errorf("workers = %d, want 0 (GOMAXPROCS)", o.workers)
	}
	if o.precision != PrecisionWrap8 {
		t.Errorf("precision = %v, want %v", o.precision, PrecisionWrap8)
	}
	if o.bandsPerWorker != defaultBandsPerWorker {
		t.Errorf("bandsPerWorker = %d, want %d", o.bandsPerWorker, defaultBandsPerWorker)
	}
}

func TestApplyOptions(t *testing.T) {
	o := applyOptions([]Option{
		WithCoreSize(7),
		WithDeviation(2.5),
		WithWorkers(6),
		WithPrecision(PrecisionFloat),
		WithBandsPerWorker(2),
		nil, // ignored
	})

	if o.coreSize != 7 {
		t.Errorf("coreSize = %d, want 7", o.coreSize)
	}
	if o.deviation != 2.5 {
		t.Errorf("deviation = %v, want 2.5", o.deviation)
	}
	if o.workers != 6 {
		t.Errorf("workers = %d, want 6", o.workers)
	}
	if o.precision != PrecisionFloat {
		t.Errorf("precision = %v, want %v", o.precision, PrecisionFloat)
	}
	if o.bandsPerWorker != 2 {
		t.Errorf("bandsPerWorker = %d, want 2", o.bandsPerWorker)
	}
}

func TestOptionsKeepInvalidSizesForValidation(t *testing.T) {
	// Core size and deviation are validated at call time, not dropped.
	o := applyOptions([]Option{WithCoreSize(4), WithDeviation(-1)})

	if o.coreSize != 4 {
		t.Errorf("coreSize = %d, want 4", o.coreSize)
	}
	if o.deviation != -1 {
		t.Errorf("deviation = %v, want -1", o.deviation)
	}
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	o := applyOptions([]Option{
		WithWorkers(-3),
		WithPrecision(Precision(99)),
		WithBandsPerWorker(0),
	})

	if o.workers != 0 {
		t.Errorf("workers = %d, want 0", o.workers)
	}
	if o.precision != PrecisionWrap8 {
		t.Errorf("precision = %v, want %v", o.precision, PrecisionWrap8)
	}
	if o.bandsPerWorker != defaultBandsPerWorker {
		t.Errorf("bandsPerWorker = %d, want %d", o.bandsPerWorker, defaultBandsPerWorker)
	}
}

func TestOptionsLastWins(t *testing.T) {
	o := applyOptions([]Option{WithCoreSize(5), WithCoreSize(9)})
	if o.coreSize != 9 {
		t.Errorf("coreSize = %d, want 9", o.coreSize)
	}
}
