// Package output builds termenv outputs for log rendering.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/modkit/internal/adapters/detector"
)

// New returns an output for w colored for the current environment.
// A nil w writes to stderr.
func New(w io.Writer) *termenv.Output {
	return ForEnv(w, detector.FromOS())
}

// ForEnv returns an output for w colored for env. Outputs always report a
// TTY so the profile alone decides whether escape codes are written.
func ForEnv(w io.Writer, env detector.Env) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(env.ColorProfile()), termenv.WithTTY(true))
}
