// Package d8 drives the android d8 dexer.
package d8

import (
	"context"
	"errors"
	"io"
	"strconv"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
)

const toolName = "d8"

var _ ports.Dexer = (*Dexer)(nil)

// Dexer runs d8 as `java -jar d8.jar` through an executor.
type Dexer struct {
	executor ports.Executor
	java     string
	jar      string
	stdout   io.Writer
	stderr   io.Writer
}

// NewDexer creates a Dexer using the java runtime and d8 jar from tools.
func NewDexer(executor ports.Executor, tools domain.Tools, stdout, stderr io.Writer) *Dexer {
	return &Dexer{
		executor: executor,
		java:     tools.Java,
		jar:      tools.D8,
		stdout:   stdout,
		stderr:   stderr,
	}
}

// Dex runs one d8 invocation.
func (d *Dexer) Dex(ctx context.Context, req *domain.DexRequest) error {
	args, err := Arguments(req)
	if err != nil {
		return err
	}

	cmd := &domain.Command{
		Tool: toolName,
		Name: d.java,
		Args: append([]string{"-jar", d.jar}, args...),
	}
	if err := d.executor.Execute(ctx, cmd, d.stdout, d.stderr); err != nil {
		return errors.Join(domain.ErrDexFailed, err)
	}
	return nil
}

// Arguments builds the d8 argument list for req.
func Arguments(req *domain.DexRequest) ([]string, error) {
	if len(req.Inputs) == 0 {
		return nil, zerr.With(zerr.New("d8 invocation has no inputs"), "output", req.Output)
	}

	args := append([]string{}, req.Inputs...)
	for _, lib := range req.Libraries {
		args = append(args, "--lib", lib)
	}
	args = append(args, "--min-api", strconv.Itoa(req.MinAPI))

	switch req.Mode {
	case domain.DexLibrary, domain.DexClasses:
		for _, entry := range req.Classpath {
			args = append(args, "--classpath", entry)
		}
		args = append(args, "--intermediate")
		if req.Mode == domain.DexClasses {
			args = append(args, "--file-per-class")
		}
	case domain.DexMerge:
		if req.Release {
			args = append(args, "--release")
		} else {
			args = append(args, "--debug")
		}
		args = append(args, "--intermediate")
	default:
		return nil, zerr.With(zerr.New("unknown dex mode"), "mode", int(req.Mode))
	}

	return append(args, "--output", req.Output), nil
}
