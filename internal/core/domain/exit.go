package domain

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ExitInvalidModule is returned when a module path or manifest is invalid.
	ExitInvalidModule = -1
	// ExitDuplicateModule is returned when two modules share a name.
	ExitDuplicateModule = -2
	// ExitFailure is returned for failures that carry no exit code of their own.
	ExitFailure = 1
)

// ExitCoder is implemented by errors that determine the process exit code.
type ExitCoder interface {
	error
	ExitCode() int
}

// ExitCodeOf maps an error to the process exit code.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ExitFailure
}

// ProcessError reports an external tool that exited unsuccessfully.
type ProcessError struct {
	Tool string
	Code int
	Err  error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Tool, e.Code)
}

// Unwrap returns the underlying exec error.
func (e *ProcessError) Unwrap() error {
	return e.Err
}

// ExitCode returns the tool's exit code.
func (e *ProcessError) ExitCode() int {
	return e.Code
}

// ConfigIssue is one invalid compile entry.
type ConfigIssue struct {
	Path      string
	Err       error
	Duplicate bool
}

// ConfigError collects every invalid compile entry of a build list.
type ConfigError struct {
	Issues []ConfigIssue
}

func (e *ConfigError) Error() string {
	lines := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		lines = append(lines, fmt.Sprintf("%s: %v", issue.Path, issue.Err))
	}
	return "invalid java configuration:\n" + strings.Join(lines, "\n")
}

// ExitCode is ExitDuplicateModule if any issue is a duplicate name, ExitInvalidModule otherwise.
func (e *ConfigError) ExitCode() int {
	for _, issue := range e.Issues {
		if issue.Duplicate {
			return ExitDuplicateModule
		}
	}
	return ExitInvalidModule
}
