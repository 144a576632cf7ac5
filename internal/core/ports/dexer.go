package ports

import (
	"context"

	"go.trai.ch/modkit/internal/core/domain"
)

//go:generate mockgen -source=dexer.go -destination=mocks/mock_dexer.go -package=mocks

// Dexer invokes the d8 dexer.
type Dexer interface {
	// Dex runs one d8 invocation.
	Dex(ctx context.Context, req *domain.DexRequest) error
}
