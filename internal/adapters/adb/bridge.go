// Package adb talks to an attached android device through adb.
package adb

import (
	"context"
	"errors"
	"io"
	"strings"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
)

const toolName = "adb"

var _ ports.DeviceBridge = (*Bridge)(nil)

// Bridge implements ports.DeviceBridge.
type Bridge struct {
	executor ports.Executor
	adb      string
	stdout   io.Writer
	stderr   io.Writer
}

// NewBridge creates a Bridge invoking the adb executable from tools.
func NewBridge(executor ports.Executor, tools domain.Tools, stdout, stderr io.Writer) *Bridge {
	return &Bridge{executor: executor, adb: tools.Adb, stdout: stdout, stderr: stderr}
}

// Push copies the contents of src into dst on the device.
func (b *Bridge) Push(ctx context.Context, src, dst string) error {
	return b.run(ctx, "push", strings.TrimRight(src, `/\`)+"/.", dst)
}

// Shell runs args through `adb shell`.
func (b *Bridge) Shell(ctx context.Context, args []string) error {
	return b.run(ctx, append([]string{"shell"}, args...)...)
}

func (b *Bridge) run(ctx context.Context, args ...string) error {
	cmd := &domain.Command{Tool: toolName, Name: b.adb, Args: args}
	if err := b.executor.Execute(ctx, cmd, b.stdout, b.stderr); err != nil {
		return errors.Join(domain.ErrDeviceCommandFailed, err)
	}
	return nil
}
