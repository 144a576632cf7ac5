package ports

import (
	"context"

	"go.trai.ch/modkit/internal/core/domain"
)

//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks

// Compiler turns a gradle project descriptor into compiled classes.
type Compiler interface {
	// WriteProject serializes the descriptor into gradle scripts.
	WriteProject(project *domain.GradleProject) error
	// Compile builds every module of the project in one gradle invocation.
	Compile(ctx context.Context, project *domain.GradleProject) error
	// CleanupProject removes the per-module scripts written by WriteProject.
	CleanupProject(project *domain.GradleProject) error
}
