// Package trace records what the tagcore pipeline is doing.
//
// Enable it from the command line:
//
//	tagcore defs --trace=- --trace-level=detail
//
// Tracers:
//
//   - Nop: disabled tracing
//   - StreamTracer: writes each event as it happens
//   - RingTracer: keeps the last N events for a dump after a failure
//   - MultiTracer: fans out to several tracers
//
// Levels, from quietest: off, error, phase, detail, debug. Phase shows
// driver and pass spans, detail adds per-module spans and debug adds one
// span per synthesized definition.
//
// The tracer travels in the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "verify", parentID)
//	defer span.End("")
package trace
