package fs

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on the local disk.
type FileSystem struct {
	walker *Walker
	hasher *Hasher
}

// NewFileSystem creates a new FileSystem.
func NewFileSystem(walker *Walker) *FileSystem {
	return &FileSystem{walker: walker, hasher: NewHasher()}
}

// EnsureDir creates path and its parents.
func (f *FileSystem) EnsureDir(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	return nil
}

// ClearDir removes everything inside path, creating path if it is absent.
func (f *FileSystem) ClearDir(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrDirectoryClearFailed.Error()), "path", path)
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(path, entry.Name())); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrDirectoryClearFailed.Error()), "path", path)
		}
	}
	return f.EnsureDir(path)
}

// RemoveAll removes path and everything below it.
func (f *FileSystem) RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove path"), "path", path)
	}
	return nil
}

// ListFiles returns the files below root ending in ext, in lexical walk order.
// Unlike the walker, it fails on unreadable directories so no file silently
// drops out of a diff.
func (f *FileSystem) ListFiles(root, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			if path == root && errors.Is(err, iofs.ErrNotExist) {
				return filepath.SkipAll
			}
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list files"), "root", root)
	}
	return files, nil
}

// RemoveMatching removes the entries directly inside dir whose name matches pattern.
func (f *FileSystem) RemoveMatching(dir, pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return zerr.With(zerr.Wrap(doublestar.ErrBadPattern, "invalid pattern"), "pattern", pattern)
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read directory"), "path", dir)
	}
	for _, entry := range entries {
		if ok, _ := doublestar.Match(pattern, entry.Name()); !ok {
			continue
		}
		if err := f.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// ModTimeMillis returns the modification time of path in milliseconds.
func (f *FileSystem) ModTimeMillis(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}
	return info.ModTime().UnixMilli(), nil
}

// WriteFileIfChanged writes data to path unless path already holds exactly data.
func (f *FileSystem) WriteFileIfChanged(path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err := f.EnsureDir(filepath.Dir(path)); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}
	return true, nil
}

// SyncDir mirrors src into dst. Files whose content already matches are left
// untouched so unchanged outputs keep their bytes and timestamps; files in dst
// with no counterpart in src are removed. A missing src is not an error.
func (f *FileSystem) SyncDir(src, dst string) error {
	if _, err := os.Stat(src); errors.Is(err, iofs.ErrNotExist) {
		return nil
	}

	for path := range f.walker.WalkFiles(src, nil) {
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrMirrorFailed.Error()), "path", path)
		}
		if err := f.syncFile(path, filepath.Join(dst, rel)); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrMirrorFailed.Error()), "path", path)
		}
	}

	for path := range f.walker.WalkFiles(dst, nil) {
		rel, err := filepath.Rel(dst, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrMirrorFailed.Error()), "path", path)
		}
		if _, err := os.Stat(filepath.Join(src, rel)); errors.Is(err, iofs.ErrNotExist) {
			if err := os.Remove(path); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrMirrorFailed.Error()), "path", path)
			}
		}
	}
	return nil
}

// SyncFile copies src to dst unless dst already holds the same content.
func (f *FileSystem) SyncFile(src, dst string) error {
	if err := f.syncFile(src, dst); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMirrorFailed.Error()), "path", src)
	}
	return nil
}

func (f *FileSystem) syncFile(src, dst string) error {
	if same, err := f.sameContent(src, dst); err != nil {
		return err
	} else if same {
		return nil
	}

	if err := f.EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}

	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Read-only file

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func (f *FileSystem) sameContent(a, b string) (bool, error) {
	infoB, err := os.Stat(b)
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	infoA, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	if infoA.Size() != infoB.Size() {
		return false, nil
	}

	hashA, err := f.hasher.ComputeFileHash(a)
	if err != nil {
		return false, err
	}
	hashB, err := f.hasher.ComputeFileHash(b)
	if err != nil {
		return false, err
	}
	return hashA == hashB, nil
}
