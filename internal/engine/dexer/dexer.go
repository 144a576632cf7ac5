// Package dexer turns a module's modified classes and libraries into merged dex output.
package dexer

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
)

const dexExt = ".dex"

// Options are shared by every module of one build.
type Options struct {
	Toolchain domain.Toolchain
	MinAPI    int
	BatchSize int
	Release   bool
}

// Dexer runs the per-module dex state machine: library dex, class batches,
// packaging of intermediate output, and merge.
type Dexer struct {
	d8       ports.Dexer
	fs       ports.FileSystem
	archiver ports.Archiver
	progress ports.ProgressFactory
	logger   ports.Logger
	layout   domain.Layout
	opts     Options
}

// New creates a new Dexer.
func New(
	d8 ports.Dexer,
	fs ports.FileSystem,
	archiver ports.Archiver,
	progress ports.ProgressFactory,
	logger ports.Logger,
	layout domain.Layout,
	opts Options,
) *Dexer {
	if opts.BatchSize <= 0 {
		opts.BatchSize = domain.DefaultBatchSize
	}
	if opts.MinAPI <= 0 {
		opts.MinAPI = domain.DefaultMinAPI
	}
	return &Dexer{
		d8:       d8,
		fs:       fs,
		archiver: archiver,
		progress: progress,
		logger:   logger,
		layout:   layout,
		opts:     opts,
	}
}

// DexModule brings the output of module up to date with set.
// An empty set leaves every file of the module untouched.
func (d *Dexer) DexModule(ctx context.Context, module string, set domain.ModifiedSet) error {
	if set.Empty() {
		return nil
	}

	intermediate := d.layout.IntermediateDexDir(module)
	if err := d.fs.EnsureDir(intermediate); err != nil {
		return zerr.With(err, "module", module)
	}

	if set.LibrariesChanged {
		if err := d.dexLibraries(ctx, module, set.LibraryArchive); err != nil {
			return err
		}
	}

	if err := d.dexClasses(ctx, module, set.Classes); err != nil {
		return err
	}

	archive := d.layout.IntermediateArchive(module)
	d.logger.Info("compressing changed parts of " + module)
	if err := d.archiver.Pack(intermediate, archive, isDex); err != nil {
		return zerr.With(err, "module", module)
	}

	return d.merge(ctx, module, archive)
}

// dexLibraries replaces the module's library dex output. Without an archive
// every library was removed and the output is only cleared.
func (d *Dexer) dexLibraries(ctx context.Context, module, archive string) error {
	output := d.layout.LibraryDexDir(module)
	if err := d.fs.ClearDir(output); err != nil {
		return zerr.With(err, "module", module)
	}
	if archive == "" {
		return nil
	}

	d.logger.Info("dexing libraries of " + module)
	return d.d8.Dex(ctx, &domain.DexRequest{
		Mode:      domain.DexLibrary,
		Inputs:    []string{archive},
		Output:    output,
		Libraries: d.libraries(module),
		Classpath: d.opts.Toolchain.Jars,
		MinAPI:    d.opts.MinAPI,
	})
}

func (d *Dexer) dexClasses(ctx context.Context, module string, classes []string) error {
	if len(classes) == 0 {
		return nil
	}

	progress := d.progress.New(len(classes), "dexing classes of "+module)
	defer progress.Finish()

	for _, batch := range Batches(classes, d.opts.BatchSize) {
		err := d.d8.Dex(ctx, &domain.DexRequest{
			Mode:      domain.DexClasses,
			Inputs:    batch,
			Output:    d.layout.IntermediateDexDir(module),
			Libraries: d.libraries(module),
			Classpath: d.opts.Toolchain.Jars,
			MinAPI:    d.opts.MinAPI,
		})
		if err != nil {
			return err
		}
		progress.Add(len(batch))
	}
	return nil
}

func (d *Dexer) merge(ctx context.Context, module, archive string) error {
	output := d.layout.ModuleOutputDir(module)
	if err := d.fs.EnsureDir(output); err != nil {
		return zerr.With(err, "module", module)
	}

	if err := d.fs.RemoveMatching(output, "*"+dexExt); err != nil {
		return zerr.With(err, "module", module)
	}

	mode := "debug"
	if d.opts.Release {
		mode = "release"
	}
	d.logger.Info(fmt.Sprintf("merging dex of %s (%s)", module, mode))

	return d.d8.Dex(ctx, &domain.DexRequest{
		Mode:      domain.DexMerge,
		Inputs:    []string{archive},
		Output:    output,
		Libraries: d.opts.Toolchain.Jars,
		MinAPI:    d.opts.MinAPI,
		Release:   d.opts.Release,
	})
}

// libraries are the toolchain jars followed by the module's own shaded jar.
func (d *Dexer) libraries(module string) []string {
	libs := make([]string, 0, len(d.opts.Toolchain.Jars)+1)
	libs = append(libs, d.opts.Toolchain.Jars...)
	return append(libs, d.layout.ModuleJar(module))
}

// Batches splits files into consecutive slices of at most size entries.
func Batches(files []string, size int) [][]string {
	if size <= 0 {
		size = domain.DefaultBatchSize
	}
	batches := make([][]string, 0, (len(files)+size-1)/size)
	for start := 0; start < len(files); start += size {
		end := min(start+size, len(files))
		batches = append(batches, files[start:end:end])
	}
	return batches
}

func isDex(rel string) bool {
	return strings.HasSuffix(rel, dexExt)
}
