// Package fingerprint detects which compiled classes and libraries of a module
// changed since the last build.
package fingerprint

import (
	"context"
	"path/filepath"
	"runtime"
	"slices"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	classExt   = ".class"
	libraryExt = ".jar"
)

// Input names the files of one module that take part in a diff.
type Input struct {
	Module string
	// ClassesDir holds the compiled class files of the module.
	ClassesDir string
	// LibraryDirs are absolute, in manifest order.
	LibraryDirs []string
}

// Tracker owns the in-memory fingerprint cache for one build.
// It is not safe for concurrent use by multiple builds.
type Tracker struct {
	store  ports.FingerprintStore
	hasher ports.Hasher
	fs     ports.FileSystem
	logger ports.Logger
	path   string

	cache domain.FingerprintCache
}

// NewTracker creates a Tracker persisting to path.
func NewTracker(
	store ports.FingerprintStore,
	hasher ports.Hasher,
	fs ports.FileSystem,
	logger ports.Logger,
	path string,
) *Tracker {
	return &Tracker{
		store:  store,
		hasher: hasher,
		fs:     fs,
		logger: logger,
		path:   path,
		cache:  make(domain.FingerprintCache),
	}
}

// Load reads the persisted cache. An unreadable document is replaced by an
// empty cache, which forces every module to rebuild.
func (t *Tracker) Load() {
	cache, err := t.store.Load(t.path)
	if err != nil {
		t.logger.Warn("fingerprint cache is unreadable, rebuilding every module: " + err.Error())
	}
	if cache == nil {
		cache = make(domain.FingerprintCache)
	}
	t.cache = cache
}

// Save overwrites the persisted cache with the in-memory one.
func (t *Tracker) Save() error {
	return t.store.Save(t.path, t.cache)
}

// Forget drops the fingerprints of the named modules so the next diff treats
// all of their files as new.
func (t *Tracker) Forget(modules ...string) {
	for _, name := range modules {
		delete(t.cache, name)
	}
}

// Diff compares the files of in against the cache and replaces the module's
// entry with what was observed.
func (t *Tracker) Diff(ctx context.Context, in Input) (domain.ModifiedSet, error) {
	previous := t.cache[in.Module]
	current := make(domain.ModuleFingerprints)

	classes, err := t.diffClasses(ctx, in.ClassesDir, previous, current)
	if err != nil {
		return domain.ModifiedSet{}, zerr.With(err, "module", in.Module)
	}

	libraries, changed, err := t.diffLibraries(in.LibraryDirs, previous, current)
	if err != nil {
		return domain.ModifiedSet{}, zerr.With(err, "module", in.Module)
	}

	t.cache[in.Module] = current

	return domain.ModifiedSet{
		Classes:          classes,
		LibrariesChanged: changed,
		LibraryFiles:     libraries,
	}, nil
}

func (t *Tracker) diffClasses(
	ctx context.Context,
	classesDir string,
	previous, current domain.ModuleFingerprints,
) ([]string, error) {
	files, err := t.fs.ListFiles(classesDir, classExt)
	if err != nil {
		return nil, err
	}

	digests := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			digest, err := t.hasher.Digest(file)
			if err != nil {
				return zerr.With(err, "file", file)
			}
			digests[i] = digest
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var modified []string
	for i, file := range files {
		fp := domain.ContentFingerprint(digests[i])
		if old, ok := previous[file]; !ok || old != fp {
			modified = append(modified, file)
		}
		current[file] = fp
	}
	slices.Sort(modified)
	return slices.Compact(modified), nil
}

// diffLibraries reports any library whose modification time differs, and any
// library recorded last run that no longer exists.
func (t *Tracker) diffLibraries(
	dirs []string,
	previous, current domain.ModuleFingerprints,
) ([]string, bool, error) {
	var files []string
	seen := make(map[string]bool)
	changed := false

	for _, dir := range dirs {
		found, err := t.fs.ListFiles(dir, libraryExt)
		if err != nil {
			return nil, false, err
		}
		for _, file := range found {
			file = filepath.Clean(file)
			if seen[file] {
				continue
			}
			seen[file] = true
			files = append(files, file)

			millis, err := t.fs.ModTimeMillis(file)
			if err != nil {
				return nil, false, err
			}
			key := domain.LibraryKey(file)
			fp := domain.ModTimeFingerprint(millis)
			if old, ok := previous[key]; !ok || old != fp {
				changed = true
			}
			current[key] = fp
		}
	}

	for key := range previous {
		if domain.IsLibraryKey(key) {
			if _, ok := current[key]; !ok {
				changed = true
			}
		}
	}

	return files, changed, nil
}
