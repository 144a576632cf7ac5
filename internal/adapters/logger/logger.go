// Package logger prints build progress and errors through log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/modkit/internal/ui/style"
)

// FormatEnv selects the log format when set to "json".
const FormatEnv = "MODKIT_LOG_FORMAT"

// Format is the encoding of log records.
type Format int

const (
	// FormatPretty prints colored lines for humans.
	FormatPretty Format = iota
	// FormatJSON prints one JSON object per record.
	FormatJSON
)

// ParseFormat maps "json" to FormatJSON and anything else to FormatPretty.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatPretty
}

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger.
type Logger struct {
	mu     sync.RWMutex
	out    io.Writer
	format Format
	slog   *slog.Logger
}

// New creates a Logger writing to stderr in the format named by FormatEnv.
func New() *Logger {
	l := &Logger{out: os.Stderr, format: ParseFormat(os.Getenv(FormatEnv))}
	l.rebuild()
	return l
}

// SetOutput redirects the logger. A nil writer selects os.Stderr.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.rebuild()
}

// SetFormat switches the record encoding.
func (l *Logger) SetFormat(f Format) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.format = f
	l.rebuild()
}

func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.format == FormatJSON {
		l.slog = slog.New(slog.NewJSONHandler(l.out, opts))
		return
	}
	l.slog = slog.New(NewPrettyHandler(l.out, opts))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.slog.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.slog.Warn(msg)
}

// Error logs err. Pretty output lists the cause chain below a headline; JSON
// records carry the error and the exit code it maps to.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.format == FormatJSON {
		l.slog.Error("build failed", "error", err.Error(), "exit_code", domain.ExitCodeOf(err))
		return
	}
	l.slog.Error(renderChain(err))
}

// causes flattens err into messages. zerr errors contribute their own message
// and continue with their cause; a joined error ends the chain with one
// message per branch.
func causes(err error) []string {
	var msgs []string
	for err != nil {
		switch e := err.(type) {
		case interface{ Unwrap() []error }:
			for _, branch := range e.Unwrap() {
				msgs = append(msgs, branch.Error())
			}
			return msgs
		case interface{ Message() string }:
			msgs = append(msgs, e.Message())
			err = errors.Unwrap(err)
		default:
			return append(msgs, err.Error())
		}
	}
	return msgs
}

func renderChain(err error) string {
	msgs := causes(err)

	head := strings.Split(msgs[0], "\n")
	lines := []string{"Error: " + head[0]}
	for _, cont := range head[1:] {
		lines = append(lines, "       "+cont)
	}

	if len(msgs) > 1 {
		lines = append(lines, "", "  Caused by:")
	}
	for _, msg := range msgs[1:] {
		parts := strings.Split(msg, "\n")
		lines = append(lines, "    "+style.Arrow+" "+parts[0])
		for _, cont := range parts[1:] {
			lines = append(lines, "      "+cont)
		}
	}
	return strings.Join(lines, "\n")
}
