package telemetry

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/modkit/internal/ui/style"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge is a span processor that prints a summary line for every finished
// span. Task spans are flush left; build steps inside a task are indented and
// list their attributes.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a Bridge logging through logger. A nil logger disables it.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart implements sdktrace.SpanProcessor.
func (b *Bridge) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd implements sdktrace.SpanProcessor.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}
	b.logger.Info(summary(s))
}

// ForceFlush implements sdktrace.SpanProcessor.
func (b *Bridge) ForceFlush(context.Context) error { return nil }

// Shutdown implements sdktrace.SpanProcessor.
func (b *Bridge) Shutdown(context.Context) error { return nil }

func summary(s sdktrace.ReadOnlySpan) string {
	var detail strings.Builder
	detail.WriteString(formatDuration(s.EndTime().Sub(s.StartTime())))
	for _, kv := range s.Attributes() {
		detail.WriteString(", ")
		detail.WriteString(string(kv.Key))
		detail.WriteByte('=')
		detail.WriteString(kv.Value.Emit())
	}

	line := s.Name() + " (" + detail.String() + ")"
	if s.Status().Code == codes.Error {
		line = style.Failure(s.Name() + " failed (" + detail.String() + ")")
	} else {
		line = style.Success(line)
	}

	if s.Parent().IsValid() {
		return "  " + line
	}
	return line
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
