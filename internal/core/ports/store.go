package ports

import "go.trai.ch/modkit/internal/core/domain"

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// FingerprintStore persists the fingerprint cache.
type FingerprintStore interface {
	// Load reads the document at path. A missing document yields an empty cache
	// and no error; a corrupt one yields an empty cache and an error.
	Load(path string) (domain.FingerprintCache, error)
	// Save replaces the document at path.
	Save(path string, cache domain.FingerprintCache) error
}
