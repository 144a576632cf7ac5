package ports

import "go.trai.ch/modkit/internal/core/domain"

//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks

// ManifestReader parses module manifests.
type ManifestReader interface {
	// Read parses the manifest of the module rooted at dir.
	Read(dir string) (domain.Manifest, error)
}
