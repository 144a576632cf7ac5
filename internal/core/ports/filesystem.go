package ports

//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks

// FileSystem performs the directory operations of the build pipeline.
type FileSystem interface {
	// EnsureDir creates path and its parents.
	EnsureDir(path string) error
	// ClearDir removes the contents of path, creating it if absent.
	ClearDir(path string) error
	// RemoveAll removes path and everything below it.
	RemoveAll(path string) error
	// RemoveMatching removes the entries directly inside dir whose name matches
	// the glob pattern. A missing dir is not an error.
	RemoveMatching(dir, pattern string) error
	// SyncDir mirrors src into dst, rewriting only files whose content differs
	// and removing files that no longer exist in src.
	SyncDir(src, dst string) error
	// SyncFile copies src to dst unless dst already holds the same content.
	SyncFile(src, dst string) error
	// WriteFileIfChanged writes data to path unless it already holds data.
	WriteFileIfChanged(path string, data []byte) (bool, error)
	// ListFiles returns the files below root with the given extension in lexical
	// walk order. A missing root yields no files; any other walk error is
	// returned.
	ListFiles(root, ext string) ([]string, error)
	// ModTimeMillis returns the modification time of path in milliseconds.
	ModTimeMillis(path string) (int64, error)
}
