package domain

// Manifest is the per-module build descriptor.
// Paths are relative to the module directory.
type Manifest struct {
	SourceDirs  []string `json:"source-dirs"`
	LibraryDirs []string `json:"library-dirs"`
}

// Module is one unit of Java source compiled into one dex output.
type Module struct {
	// Name is the basename of Dir and is unique within a build.
	Name     string
	Dir      string
	Manifest Manifest
}

// ModifiedSet is the result of diffing a module against the fingerprint cache.
type ModifiedSet struct {
	// Classes holds the class files whose content changed, sorted.
	Classes []string
	// LibrariesChanged reports whether any library archive changed, appeared or vanished.
	LibrariesChanged bool
	// LibraryFiles lists every library archive of the module in manifest order.
	LibraryFiles []string
	// LibraryArchive is the rebuilt merged library archive, empty if none was rebuilt.
	LibraryArchive string
}

// Empty reports whether the module can skip dexing entirely.
func (s ModifiedSet) Empty() bool {
	return len(s.Classes) == 0 && !s.LibrariesChanged
}
