// Package archive reads and writes zip archives.
package archive

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Archiver = (*Zip)(nil)

// Zip implements ports.Archiver.
type Zip struct{}

// NewZip creates a new Zip archiver.
func NewZip() *Zip {
	return &Zip{}
}

// Extract unpacks archive into dest. Existing files are overwritten, so
// extracting several archives into one directory lets later archives win.
func (z *Zip) Extract(archive, dest string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveExtractFailed.Error()), "archive", archive)
	}
	defer r.Close() //nolint:errcheck // Read-only archive

	dest, err = filepath.Abs(dest)
	if err != nil {
		return zerr.Wrap(err, domain.ErrArchiveExtractFailed.Error())
	}

	for _, f := range r.File {
		if err := extractFile(f, dest); err != nil {
			return zerr.With(zerr.With(err, "archive", archive), "entry", f.Name)
		}
	}
	return nil
}

func extractFile(f *zip.File, dest string) error {
	fpath := filepath.Join(dest, f.Name) //nolint:gosec // Checked against dest below

	if fpath != dest && !strings.HasPrefix(fpath, dest+string(os.PathSeparator)) {
		return domain.ErrIllegalArchivePath
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(fpath, domain.DirPerm)
	}

	if err := os.MkdirAll(filepath.Dir(fpath), domain.DirPerm); err != nil {
		return err
	}

	out, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		_ = out.Close()
		return err
	}

	_, err = io.Copy(out, rc) //nolint:gosec // Archives come from the project's own library dirs
	_ = rc.Close()
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Pack writes every file below src accepted by include into archive.
// Entries are added in lexical walk order with slash separated names.
func (z *Zip) Pack(src, archive string, include func(rel string) bool) error {
	if err := os.MkdirAll(filepath.Dir(archive), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error()), "archive", archive)
	}

	out, err := os.Create(archive) //nolint:gosec // Path is derived from the project layout
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error()), "archive", archive)
	}

	w := zip.NewWriter(out)
	walkErr := filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if include != nil && !include(rel) {
			return nil
		}
		return addFile(w, path, rel)
	})

	closeErr := w.Close()
	if err := out.Close(); closeErr == nil {
		closeErr = err
	}

	if walkErr != nil {
		_ = os.Remove(archive)
		return zerr.With(zerr.Wrap(walkErr, domain.ErrArchiveCreateFailed.Error()), "archive", archive)
	}
	if closeErr != nil {
		_ = os.Remove(archive)
		return zerr.With(zerr.Wrap(closeErr, domain.ErrArchiveCreateFailed.Error()), "archive", archive)
	}
	return nil
}

func addFile(w *zip.Writer, path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate

	dst, err := w.CreateHeader(header)
	if err != nil {
		return err
	}

	in, err := os.Open(path) //nolint:gosec // Path comes from walking src
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Read-only file

	_, err = io.Copy(dst, in)
	return err
}
