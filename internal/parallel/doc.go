// Package parallel provides fork-join infrastructure for band-parallel
// image filtering.
//
// An image is processed as a set of horizontal bands: contiguous, disjoint,
// half-open row ranges. Each band becomes one work item on a WorkerPool, and
// ExecuteAll returns only when every band is done. Because bands never
// overlap, tasks write to a shared destination slice without locks.
//
// Thread safety: WorkerPool is safe for concurrent use. Band values are
// immutable.
package parallel
