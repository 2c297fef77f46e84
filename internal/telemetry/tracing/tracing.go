package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// GlobalTracer is used across the service to create spans
// around interesting units of work.
var GlobalTracer = otel.Tracer("posturecheck")

// EndSpanWithErrCheck ends the span, previously setting
// the status to error in case the provided err is not nil.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}
	span.End()
}
