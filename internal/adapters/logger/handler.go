package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/modkit/internal/ui/output"
	"go.trai.ch/modkit/internal/ui/style"
)

// taskPrefix starts the header line logged when a task begins.
const taskPrefix = "> Task :"

// PrettyHandler is a slog.Handler writing one line per record. Task headers
// are bold, warnings and errors carry an icon, and attributes trail the
// message dimmed.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Level
	group string
	attrs string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	h := &PrettyHandler{out: output.New(w), level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level.Level()
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var attrs strings.Builder
	attrs.WriteString(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		attrs.WriteString(h.format(attr))
		return true
	})

	line := h.headline(r)
	if attrs.Len() > 0 {
		line += h.out.String(attrs.String()).Faint().String()
	}
	_, err := h.out.WriteString(line + "\n")
	return err
}

func (h *PrettyHandler) headline(r slog.Record) string {
	switch {
	case r.Level >= slog.LevelError:
		return h.paint(style.Cross+" "+r.Message, string(style.Red))
	case r.Level >= slog.LevelWarn:
		return h.paint(style.Warning+" "+r.Message, string(style.Yellow))
	case strings.HasPrefix(r.Message, taskPrefix):
		return h.out.String(r.Message).Bold().String()
	default:
		return h.paint(r.Message, string(style.Slate))
	}
}

func (h *PrettyHandler) paint(s, color string) string {
	return h.out.String(s).Foreground(h.out.Color(color)).String()
}

func (h *PrettyHandler) format(attr slog.Attr) string {
	return " " + h.group + attr.Key + "=" + attr.Value.String()
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	for _, attr := range attrs {
		next.attrs += h.format(attr)
	}
	return &next
}

// WithGroup returns a new Handler qualifying later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.group += name + "."
	return &next
}
