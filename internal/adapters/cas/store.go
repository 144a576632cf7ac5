// Package cas persists content fingerprints of build inputs.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FingerprintStore = (*Store)(nil)

// Store implements ports.FingerprintStore as a single JSON document.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the fingerprint document at path.
// A missing document yields an empty cache. An unreadable or corrupt one
// yields an empty cache together with the error so callers can warn.
func (s *Store) Load(path string) (domain.FingerprintCache, error) {
	//nolint:gosec // Path is derived from the project layout
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.FingerprintCache{}, nil
		}
		return domain.FingerprintCache{}, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var cache domain.FingerprintCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return domain.FingerprintCache{}, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}
	if cache == nil {
		cache = domain.FingerprintCache{}
	}
	for module, entries := range cache {
		if entries == nil {
			cache[module] = domain.ModuleFingerprints{}
		}
	}

	return cache, nil
}

// Save replaces the document at path. The write goes through a temporary
// file so a crash leaves either the old or the new document.
func (s *Store) Save(path string, cache domain.FingerprintCache) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	tmp, err := os.CreateTemp(dir, ".fingerprints-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}
