// Package shell runs external build tools.
package shell

import (
	"context"
	"errors"
	"io"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// ExitNotFound is reported when the executable cannot be located.
const ExitNotFound = 127

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
// With a terminal attached, tools run under a pty so gradle and d8 keep their
// console progress; otherwise stdout and stderr are piped separately.
type Executor struct {
	usePTY bool
}

// NewExecutor creates a new Executor.
func NewExecutor(usePTY bool) *Executor {
	return &Executor{usePTY: usePTY}
}

// Execute runs cmd and waits for it to complete. A failure is reported as a
// *domain.ProcessError carrying the tool's exit code.
func (e *Executor) Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error {
	env := mergeEnv(os.Environ(), cmd.Env)

	c := exec.CommandContext(ctx, resolveExecutable(cmd.Name, env), cmd.Args...) //nolint:gosec // Configured tool invocation
	c.Args[0] = cmd.Name
	c.Dir = cmd.Dir
	c.Env = env

	var err error
	if e.usePTY {
		err = runPTY(c, stdout)
	} else {
		c.Stdout = stdout
		c.Stderr = stderr
		err = c.Run()
	}
	if err != nil {
		return processError(cmd, err)
	}
	return nil
}

func runPTY(c *exec.Cmd, stdout io.Writer) error {
	ptmx, err := pty.Start(c)
	if err != nil {
		return err
	}

	copied := make(chan struct{})
	go func() {
		defer close(copied)
		// stderr arrives on the same pty.
		_, _ = io.Copy(stdout, ptmx)
	}()

	err = c.Wait()
	<-copied
	_ = ptmx.Close()
	return err
}

func processError(cmd *domain.Command, err error) error {
	tool := cmd.Tool
	if tool == "" {
		tool = filepath.Base(cmd.Name)
	}

	code := domain.ExitFailure
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		code = exitErr.ExitCode()
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, os.ErrNotExist):
		code = ExitNotFound
	}

	return &domain.ProcessError{
		Tool: tool,
		Code: code,
		Err:  zerr.With(zerr.Wrap(err, "command failed"), "command", strings.Join(cmd.Argv(), " ")),
	}
}

// mergeEnv overlays overrides on base. The result is sorted by key so tool
// invocations see a stable environment.
func mergeEnv(base []string, overrides map[string]string) []string {
	vars := make(map[string]string, len(base)+len(overrides))
	for _, kv := range base {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	maps.Copy(vars, overrides)

	merged := make([]string, 0, len(vars))
	for _, k := range slices.Sorted(maps.Keys(vars)) {
		merged = append(merged, k+"="+vars[k])
	}
	return merged
}

// resolveExecutable looks a bare tool name up on the PATH of env, which may
// differ from the PATH of this process. Paths and unresolved names are
// returned unchanged and fail later with a not found error.
func resolveExecutable(name string, env []string) string {
	if strings.ContainsRune(name, filepath.Separator) {
		return name
	}

	var path string
	for _, kv := range env {
		if v, ok := strings.CutPrefix(kv, "PATH="); ok {
			path = v
		}
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() && info.Mode()&0o111 != 0 {
			return candidate
		}
	}
	return name
}
