package oxidius

import (
	"log"
	"os"
	"sync/atomic"
)

// Lightweight, opt-in tracing for scope teardown and transform search
// internals. Enable by setting env var OXIDIUS_TRACE=1.

var traceEnabled atomic.Bool

func init() {
	if os.Getenv("OXIDIUS_TRACE") == "1" {
		traceEnabled.Store(true)
	}
}

func tracef(format string, args ...any) {
	if !traceEnabled.Load() {
		return
	}
	log.Printf("[oxidius] "+format, args...)
}
