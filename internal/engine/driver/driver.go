// Package driver orchestrates a java build: assembly, compilation,
// fingerprinting, dexing and rollback.
package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/modkit/internal/engine/assembler"
	"go.trai.ch/modkit/internal/engine/dexer"
	"go.trai.ch/modkit/internal/engine/fingerprint"
	"go.trai.ch/modkit/internal/engine/libcache"
)

// Ports are the adapters a build runs against.
type Ports struct {
	Manifests ports.ManifestReader
	FS        ports.FileSystem
	Hasher    ports.Hasher
	Store     ports.FingerprintStore
	Archiver  ports.Archiver
	Compiler  ports.Compiler
	Dexer     ports.Dexer
	Progress  ports.ProgressFactory
	Tracer    ports.Tracer
	Logger    ports.Logger
}

// Options tune one build.
type Options struct {
	Java    domain.JavaOptions
	Release bool
}

// Driver runs java builds for one project layout.
type Driver struct {
	manifests ports.ManifestReader
	fs        ports.FileSystem
	hasher    ports.Hasher
	store     ports.FingerprintStore
	archiver  ports.Archiver
	compiler  ports.Compiler
	dexer     ports.Dexer
	progress  ports.ProgressFactory
	tracer    ports.Tracer
	logger    ports.Logger

	layout domain.Layout
	opts   Options
}

// New creates a new Driver.
func New(p Ports, layout domain.Layout, opts Options) *Driver {
	return &Driver{
		manifests: p.Manifests,
		fs:        p.FS,
		hasher:    p.Hasher,
		store:     p.Store,
		archiver:  p.Archiver,
		compiler:  p.Compiler,
		dexer:     p.Dexer,
		progress:  p.Progress,
		tracer:    p.Tracer,
		logger:    p.Logger,
		layout:    layout,
		opts:      opts,
	}
}

// Build compiles and dexes modules in order. When it fails after the build
// list was accepted, the output directory of every module in the list is
// cleared and their fingerprints are dropped, so the next build starts clean.
func (d *Driver) Build(ctx context.Context, modules []domain.Module) (err error) {
	tracker := fingerprint.NewTracker(d.store, d.hasher, d.fs, d.logger, d.layout.FingerprintCachePath())
	tracker.Load()

	defer func() {
		if err != nil {
			d.rollback(tracker, modules)
		}
	}()

	if err := d.prepare(modules); err != nil {
		return err
	}
	if len(modules) == 0 {
		d.logger.Info("no java modules to compile")
		return nil
	}

	toolchain, compileClasspath, err := d.classpath(d.opts.Java.Classpath)
	if err != nil {
		return err
	}

	asm := assembler.New(d.compiler, d.fs, d.logger, d.layout, assembler.Options{
		KeepLibraries: d.opts.Java.KeepLibraries,
		KeepSources:   d.opts.Java.KeepSources,
		Classpath:     compileClasspath,
	})
	if err := d.traced(ctx, "compile", func(ctx context.Context, span ports.Span) error {
		span.SetAttribute("modules", len(modules))
		return asm.Assemble(ctx, modules)
	}); err != nil {
		return err
	}

	sets := make([]domain.ModifiedSet, len(modules))
	if err := d.traced(ctx, "fingerprint", func(ctx context.Context, _ ports.Span) error {
		return d.diff(ctx, tracker, modules, sets)
	}); err != nil {
		return err
	}
	if err := tracker.Save(); err != nil {
		return err
	}

	dx := dexer.New(d.dexer, d.fs, d.archiver, d.progress, d.logger, d.layout, dexer.Options{
		Toolchain: toolchain,
		MinAPI:    d.opts.Java.MinAPI,
		BatchSize: d.opts.Java.BatchSize,
		Release:   d.opts.Release,
	})
	for i, m := range modules {
		if sets[i].Empty() {
			d.logger.Info(m.Name + " is up to date")
			continue
		}
		if err := d.traced(ctx, "dex "+m.Name, func(ctx context.Context, span ports.Span) error {
			span.SetAttribute("classes", len(sets[i].Classes))
			span.SetAttribute("libraries", sets[i].LibrariesChanged)
			return dx.DexModule(ctx, m.Name, sets[i])
		}); err != nil {
			d.logger.Warn(fmt.Sprintf("failed to dex %s with code %d", m.Name, domain.ExitCodeOf(err)))
			return err
		}
	}

	return tracker.Save()
}

// prepare creates the output and cache roots, records the build order and
// stages every module's manifest into its output directory.
func (d *Driver) prepare(modules []domain.Module) error {
	if err := d.fs.EnsureDir(d.layout.JavaOutputDir()); err != nil {
		return err
	}
	if err := d.fs.EnsureDir(d.layout.CacheDir()); err != nil {
		return err
	}

	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = m.Name
	}
	if _, err := d.fs.WriteFileIfChanged(d.layout.OrderFilePath(), []byte(strings.Join(names, "\n"))); err != nil {
		return err
	}

	for _, m := range modules {
		src := filepath.Join(m.Dir, domain.ManifestFileName)
		dst := filepath.Join(d.layout.ModuleOutputDir(m.Name), domain.ManifestFileName)
		if err := d.fs.SyncFile(src, dst); err != nil {
			return err
		}
	}
	return nil
}

// diff fills sets with the modified set of every module, rebuilding library
// caches where the library set changed.
func (d *Driver) diff(ctx context.Context, tracker *fingerprint.Tracker, modules []domain.Module, sets []domain.ModifiedSet) error {
	rebuilder := libcache.NewRebuilder(d.fs, d.archiver, d.logger, d.layout)

	for i, m := range modules {
		libraryDirs := make([]string, len(m.Manifest.LibraryDirs))
		for j, dir := range m.Manifest.LibraryDirs {
			libraryDirs[j] = filepath.Join(m.Dir, dir)
		}

		set, err := tracker.Diff(ctx, fingerprint.Input{
			Module:      m.Name,
			ClassesDir:  d.layout.ClassesDir(m.Name),
			LibraryDirs: libraryDirs,
		})
		if err != nil {
			return err
		}

		if set.LibrariesChanged && len(set.LibraryFiles) > 0 {
			archive, err := rebuilder.Rebuild(m.Name, set.LibraryFiles)
			if err != nil {
				return err
			}
			set.LibraryArchive = archive
		}
		sets[i] = set
	}
	return nil
}

func (d *Driver) rollback(tracker *fingerprint.Tracker, modules []domain.Module) {
	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = m.Name
		if err := d.fs.ClearDir(d.layout.ModuleOutputDir(m.Name)); err != nil {
			d.logger.Warn("failed to clear output of " + m.Name + ": " + err.Error())
		}
	}
	if len(names) > 0 {
		d.logger.Warn("build failed, cleared outputs of " + strings.Join(names, ", "))
	}

	tracker.Forget(names...)
	if err := tracker.Save(); err != nil {
		d.logger.Warn("failed to save fingerprint cache: " + err.Error())
	}
}

func (d *Driver) traced(ctx context.Context, name string, fn func(context.Context, ports.Span) error) error {
	ctx, span := d.tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
