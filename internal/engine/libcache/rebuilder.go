// Package libcache merges a module's library archives into one dexer input.
package libcache

import (
	"fmt"
	"path/filepath"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Rebuilder extracts library archives into a flat directory and repacks it.
type Rebuilder struct {
	fs       ports.FileSystem
	archiver ports.Archiver
	logger   ports.Logger
	layout   domain.Layout
}

// NewRebuilder creates a new Rebuilder.
func NewRebuilder(fs ports.FileSystem, archiver ports.Archiver, logger ports.Logger, layout domain.Layout) *Rebuilder {
	return &Rebuilder{fs: fs, archiver: archiver, logger: logger, layout: layout}
}

// Rebuild clears the module's extraction directory, extracts libraries in the
// given order so later archives overwrite earlier entries, and packs the result
// into the module's library archive, whose path is returned.
func (r *Rebuilder) Rebuild(module string, libraries []string) (string, error) {
	extractDir := r.layout.LibraryExtractDir(module)
	archive := r.layout.LibraryArchive(module)

	r.logger.Info("rebuilding library cache: " + module)

	if err := r.fs.ClearDir(extractDir); err != nil {
		return "", zerr.With(err, "module", module)
	}

	for _, library := range libraries {
		r.logger.Info(fmt.Sprintf("  extracting library classes: %s", filepath.Base(library)))
		if err := r.archiver.Extract(library, extractDir); err != nil {
			err = zerr.With(err, "library", library)
			return "", zerr.With(err, "module", module)
		}
	}

	if err := r.fs.RemoveAll(archive); err != nil {
		return "", zerr.With(err, "module", module)
	}
	if err := r.archiver.Pack(extractDir, archive, nil); err != nil {
		return "", zerr.With(err, "module", module)
	}
	return archive, nil
}
