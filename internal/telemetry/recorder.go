// Package telemetry instruments the dedup table and transform search
// with counters and gauges. The engine itself has no network or
// storage surface; this is the one observability seam a pure in-memory
// library legitimately exposes.
package telemetry

// Recorder receives engine events. Callers that don't care about
// metrics can pass NoOp{}. A zero Prometheus value has no collectors and
// is not usable; build one with NewPrometheus.
type Recorder interface {
	// SetTableUnique reports the current number of occupied dedup-table
	// slots for a single Transform call.
	SetTableUnique(n int)

	// IncTableOverflow counts a bucket-overflow diagnostic.
	IncTableOverflow()

	// IncTransformCalls counts one invocation of Transform.
	IncTransformCalls()

	// AddTransformNovel counts newly discovered expressions across all
	// Transform calls.
	AddTransformNovel(n int)
}

// NoOp is a Recorder that discards every event.
type NoOp struct{}

func (NoOp) SetTableUnique(int)     {}
func (NoOp) IncTableOverflow()      {}
func (NoOp) IncTransformCalls()     {}
func (NoOp) AddTransformNovel(int)  {}

var _ Recorder = NoOp{}
