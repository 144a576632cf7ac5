// Package detector decides how build output is rendered.
package detector

import (
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents how tool output and progress are rendered.
type OutputMode int

const (
	// ModeInteractive renders progress bars and runs tools under a pty.
	ModeInteractive OutputMode = iota
	// ModeLinear prints plain lines suitable for CI logs.
	ModeLinear
)

// Env is the part of the process environment that affects rendering.
type Env struct {
	TTY     bool
	CI      bool
	NoColor bool
	Dumb    bool
}

// FromOS reads Env from stdout and the environment variables.
func FromOS() Env {
	ci := os.Getenv("CI")
	return Env{
		TTY:     term.IsTerminal(int(os.Stdout.Fd())), //nolint:gosec // File descriptors fit in int
		CI:      ci == "true" || ci == "1",
		NoColor: os.Getenv("NO_COLOR") != "",
		Dumb:    os.Getenv("TERM") == "dumb",
	}
}

// Mode returns the mode used when no flag overrides it.
func (e Env) Mode() OutputMode {
	if !e.TTY || e.CI || e.Dumb {
		return ModeLinear
	}
	return ModeInteractive
}

// ColorProfile returns the termenv profile for log output.
func (e Env) ColorProfile() termenv.Profile {
	switch {
	case e.NoColor, e.Dumb:
		return termenv.Ascii
	case e.CI:
		return termenv.ANSI
	default:
		return termenv.EnvColorProfile()
	}
}

// DetectEnvironment returns the automatic mode for this process.
func DetectEnvironment() OutputMode {
	return FromOS().Mode()
}

// Resolve applies the value of --output-mode to e.
func Resolve(e Env, flag string) (OutputMode, error) {
	switch flag {
	case "", "auto":
		return e.Mode(), nil
	case "interactive":
		return ModeInteractive, nil
	case "linear", "ci":
		return ModeLinear, nil
	default:
		return 0, zerr.With(domain.ErrUnknownOutputMode, "mode", flag)
	}
}
