package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer creates spans around pipeline phases.
type Tracer interface {
	// Start begins a span named name.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span is one timed unit of work.
type Span interface {
	End()
	RecordError(err error)
	SetAttribute(key string, value any)
}
