package fs_test

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modkit/internal/adapters/fs"
	"go.trai.ch/modkit/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
}

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b", "B.class"), "b")
	writeFile(t, filepath.Join(root, "a", "A.class"), "a")
	writeFile(t, filepath.Join(root, "a", "notes.txt"), "n")
	writeFile(t, filepath.Join(root, ".git", "HEAD"), "ref")

	w := fs.NewWalker()

	all := slices.Collect(w.WalkFiles(root, nil))
	assert.Equal(t, []string{
		filepath.Join(root, "a", "A.class"),
		filepath.Join(root, "a", "notes.txt"),
		filepath.Join(root, "b", "B.class"),
	}, all)

	ignored := slices.Collect(w.WalkFiles(root, []string{"*.txt", "b"}))
	assert.Equal(t, []string{filepath.Join(root, "a", "A.class")}, ignored)
}

func TestWalker_MissingRoot(t *testing.T) {
	w := fs.NewWalker()
	assert.Empty(t, slices.Collect(w.WalkFiles(filepath.Join(t.TempDir(), "nope"), nil)))
}

func TestHasher_Digest(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	writeFile(t, a, "same")
	writeFile(t, b, "same")

	h := fs.NewHasher()
	da, err := h.Digest(a)
	require.NoError(t, err)
	db, err := h.Digest(b)
	require.NoError(t, err)

	assert.Len(t, da, 16)
	assert.Equal(t, da, db)

	writeFile(t, b, "diff")
	db, err = h.Digest(b)
	require.NoError(t, err)
	assert.NotEqual(t, da, db)

	_, err = h.Digest(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestFileSystem_ClearDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(dir, "x", "y.dex"), "y")
	writeFile(t, filepath.Join(dir, "z.dex"), "z")

	f := fs.NewFileSystem(fs.NewWalker())
	require.NoError(t, f.ClearDir(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	missing := filepath.Join(t.TempDir(), "fresh")
	require.NoError(t, f.ClearDir(missing))
	assert.DirExists(t, missing)
}

func TestFileSystem_SyncDirKeepsUnchangedFiles(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "lib", "a.jar"), "jar-a")
	writeFile(t, filepath.Join(src, "b.jar"), "jar-b")

	f := fs.NewFileSystem(fs.NewWalker())
	require.NoError(t, f.SyncDir(src, dst))

	mirrored := filepath.Join(dst, "lib", "a.jar")
	data, err := os.ReadFile(mirrored)
	require.NoError(t, err)
	assert.Equal(t, "jar-a", string(data))

	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(mirrored, old, old))

	require.NoError(t, f.SyncDir(src, dst))
	info, err := os.Stat(mirrored)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "unchanged file must not be rewritten")

	writeFile(t, filepath.Join(src, "lib", "a.jar"), "jar-A")
	require.NoError(t, f.SyncDir(src, dst))
	data, err = os.ReadFile(mirrored)
	require.NoError(t, err)
	assert.Equal(t, "jar-A", string(data))
}

func TestFileSystem_SyncDirRemovesVanishedFiles(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "a.jar"), "a")
	writeFile(t, filepath.Join(src, "old", "b.jar"), "b")

	f := fs.NewFileSystem(fs.NewWalker())
	require.NoError(t, f.SyncDir(src, dst))
	require.NoError(t, os.RemoveAll(filepath.Join(src, "old")))
	require.NoError(t, f.SyncDir(src, dst))

	assert.FileExists(t, filepath.Join(dst, "a.jar"))
	assert.NoFileExists(t, filepath.Join(dst, "old", "b.jar"))
}

func TestFileSystem_SyncDirMissingSource(t *testing.T) {
	f := fs.NewFileSystem(fs.NewWalker())
	assert.NoError(t, f.SyncDir(filepath.Join(t.TempDir(), "none"), t.TempDir()))
}

func TestFileSystem_WriteFileIfChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "java", "core", "manifest")
	f := fs.NewFileSystem(fs.NewWalker())

	changed, err := f.WriteFileIfChanged(path, []byte(`{"source-dirs":["src"]}`))
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = f.WriteFileIfChanged(path, []byte(`{"source-dirs":["src"]}`))
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestFileSystem_ModTimeMillis(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jar")
	writeFile(t, path, "a")
	stamp := time.UnixMilli(1700000000123)
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	f := fs.NewFileSystem(fs.NewWalker())
	millis, err := f.ModTimeMillis(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000123), millis)

	_, err = f.ModTimeMillis(path + ".missing")
	assert.Error(t, err)
}

func TestFileSystem_ListFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "x.jar"), "x")
	writeFile(t, filepath.Join(root, "sub", "y.jar"), "y")
	writeFile(t, filepath.Join(root, "readme"), "r")

	f := fs.NewFileSystem(fs.NewWalker())
	files, err := f.ListFiles(root, ".jar")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "sub", "y.jar"), filepath.Join(root, "x.jar")}, files)

	files, err = f.ListFiles(filepath.Join(root, "missing"), ".jar")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFileSystem_ListFilesUnreadableDir(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced")
	}

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "A.class"), "a")
	locked := filepath.Join(root, "pkg")
	writeFile(t, filepath.Join(locked, "B.class"), "b")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, domain.DirPerm) })

	_, err := fs.NewFileSystem(fs.NewWalker()).ListFiles(root, ".class")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list files")
}

func TestFileSystem_RemoveMatching(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "classes.dex"), "1")
	writeFile(t, filepath.Join(dir, "classes2.dex"), "2")
	writeFile(t, filepath.Join(dir, "manifest"), "m")
	writeFile(t, filepath.Join(dir, "lib", "nested.dex"), "n")

	f := fs.NewFileSystem(fs.NewWalker())
	require.NoError(t, f.RemoveMatching(dir, "*.dex"))

	assert.NoFileExists(t, filepath.Join(dir, "classes.dex"))
	assert.NoFileExists(t, filepath.Join(dir, "classes2.dex"))
	assert.FileExists(t, filepath.Join(dir, "manifest"))
	assert.FileExists(t, filepath.Join(dir, "lib", "nested.dex"))

	require.NoError(t, f.RemoveMatching(filepath.Join(dir, "missing"), "*.dex"))
	assert.Error(t, f.RemoveMatching(dir, "[unclosed"))
}
