package oxidius

import "github.com/oxidius-lang/oxidius/internal/telemetry"

// recorder receives dedup-table and transform-search events. It
// defaults to a no-op so the engine never requires a metrics backend;
// SetRecorder swaps in a live one (e.g. telemetry.NewPrometheus).
var recorder telemetry.Recorder = telemetry.NoOp{}

// SetRecorder installs r as the process-wide telemetry sink for this
// package. Call it once during startup, before any Transform call that
// should be observed; it is not safe to call concurrently with engine
// use.
func SetRecorder(r telemetry.Recorder) {
	if r == nil {
		r = telemetry.NoOp{}
	}
	recorder = r
}
