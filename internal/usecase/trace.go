package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("sportarena/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		// No sampled parent (healthz and friends are filtered at the edge);
		// skip standalone root spans for internal work.
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name)
}
