// Package tracing provides lightweight request tracing for the ttyfind
// service.
//
// Spans are collected asynchronously and emitted through the structured
// logger, so a trace is reconstructable from log output alone without an
// external collector.
//
// Features:
//   - Trace/span propagation via X-Trace-ID and X-Span-ID headers
//   - Gin middleware that opens a span per request
//   - Tags for method, URL, status, and handler-specific attributes
//   - Non-blocking span submission (full buffers drop, never stall)
//
// Example Usage:
//
//	tracer := tracing.New("ttyfind", logger)
//	router.Use(tracing.HTTPMiddleware(tracer))
//
//	// Inside a handler
//	span, ctx := tracer.StartSpan(c.Request.Context(), "resolve")
//	defer func() { span.Finish(); tracer.Submit(span) }()
package tracing
