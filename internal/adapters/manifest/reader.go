// Package manifest parses per-module build manifests.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestReader = (*Reader)(nil)

// document mirrors the on-disk manifest. Pointers distinguish absent keys.
type document struct {
	SourceDirs  *[]string `json:"source-dirs"`
	LibraryDirs []string  `json:"library-dirs"`
}

// Reader implements ports.ManifestReader.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses <dir>/manifest. A missing library-dirs key reads as empty.
func (r *Reader) Read(dir string) (domain.Manifest, error) {
	path := filepath.Join(dir, domain.ManifestFileName)

	data, err := os.ReadFile(path) //nolint:gosec // Path is a configured module directory
	if err != nil {
		return domain.Manifest{}, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Manifest{}, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}
	if doc.SourceDirs == nil {
		return domain.Manifest{}, zerr.With(domain.ErrManifestMissingSourceDirs, "path", path)
	}

	return domain.Manifest{
		SourceDirs:  *doc.SourceDirs,
		LibraryDirs: doc.LibraryDirs,
	}, nil
}
