package ports

import (
	"context"
	"io"

	"go.trai.ch/modkit/internal/core/domain"
)

//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks

// Executor runs external processes.
type Executor interface {
	// Execute runs cmd to completion, streaming its output to stdout and stderr.
	// A nonzero exit is reported as a *domain.ProcessError.
	Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error
}
