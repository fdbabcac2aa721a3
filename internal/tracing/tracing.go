// Package tracing connects the packages of this module to the global core
// tracer of schuko.
//
// Packages trace through Core() rather than reading gtrace.CoreTracer
// directly. gtrace.CoreTracer is nil until an application or a test installs
// a tracer, and a library must not require that. Until then Core() returns
// a go-log adapter which reports errors only.
package tracing

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Trace is schuko's tracer interface.
type Trace = tracing.Trace

// fallback is used as long as no core tracer has been configured.
var fallback Trace

func init() {
	fallback = gologadapter.New()
	fallback.SetTraceLevel(tracing.LevelError)
}

// Core returns the global core tracer.
func Core() Trace {
	if gtrace.CoreTracer == nil {
		return fallback
	}
	return gtrace.CoreTracer
}

// SetTestingLog redirects the core tracer to the test log of t. Clients
// should defer the returned teardown function.
func SetTestingLog(t *testing.T) (teardown func()) {
	gtrace.CoreTracer = gotestingadapter.New()
	return gotestingadapter.RedirectTracing(t)
}
