// Package assembler generates the gradle project for the build list and compiles it.
package assembler

import (
	"context"
	"path/filepath"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options control mirroring and the compile classpath.
type Options struct {
	KeepLibraries bool
	KeepSources   bool
	// Classpath lists jars every module compiles against.
	Classpath []string
}

// Assembler writes project descriptors, mirrors module directories into the
// output tree and runs the compiler once for every module.
type Assembler struct {
	compiler ports.Compiler
	fs       ports.FileSystem
	logger   ports.Logger
	layout   domain.Layout
	opts     Options
}

// New creates a new Assembler.
func New(compiler ports.Compiler, fs ports.FileSystem, logger ports.Logger, layout domain.Layout, opts Options) *Assembler {
	return &Assembler{compiler: compiler, fs: fs, logger: logger, layout: layout, opts: opts}
}

// Project returns the gradle descriptor of modules.
func (a *Assembler) Project(modules []domain.Module) *domain.GradleProject {
	project := &domain.GradleProject{
		Root:    a.layout.CacheDir(),
		Modules: make([]domain.GradleModule, 0, len(modules)),
	}
	for _, m := range modules {
		project.Modules = append(project.Modules, domain.GradleModule{
			Name:        m.Name,
			Dir:         m.Dir,
			SourceDirs:  resolve(m.Dir, m.Manifest.SourceDirs),
			LibraryDirs: resolve(m.Dir, m.Manifest.LibraryDirs),
			BuildDir:    a.layout.BuildDir(m.Name),
			Classpath:   a.opts.Classpath,
		})
	}
	return project
}

// Assemble writes the project, mirrors kept directories and compiles.
// Generated module scripts are removed again on every exit path.
func (a *Assembler) Assemble(ctx context.Context, modules []domain.Module) (err error) {
	project := a.Project(modules)

	if err := a.fs.EnsureDir(a.layout.CacheDir()); err != nil {
		return err
	}

	defer func() {
		if cleanupErr := a.compiler.CleanupProject(project); cleanupErr != nil {
			a.logger.Warn("failed to remove generated build scripts: " + cleanupErr.Error())
		}
	}()

	if err := a.compiler.WriteProject(project); err != nil {
		return err
	}

	if err := a.Mirror(modules); err != nil {
		return err
	}

	a.logger.Info("compiling java modules")
	return a.compiler.Compile(ctx, project)
}

// Mirror copies library and source directories of every module into its
// output directory, as selected by the options.
func (a *Assembler) Mirror(modules []domain.Module) error {
	for _, m := range modules {
		out := a.layout.ModuleOutputDir(m.Name)
		if a.opts.KeepLibraries {
			if err := a.mirror(m, out, m.Manifest.LibraryDirs); err != nil {
				return err
			}
		}
		if a.opts.KeepSources {
			if err := a.mirror(m, out, m.Manifest.SourceDirs); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *Assembler) mirror(m domain.Module, out string, dirs []string) error {
	for _, dir := range dirs {
		if err := a.fs.SyncDir(filepath.Join(m.Dir, dir), filepath.Join(out, dir)); err != nil {
			return zerr.With(err, "module", m.Name)
		}
	}
	return nil
}

func resolve(base string, dirs []string) []string {
	if len(dirs) == 0 {
		return nil
	}
	resolved := make([]string, len(dirs))
	for i, dir := range dirs {
		if filepath.IsAbs(dir) {
			resolved[i] = filepath.Clean(dir)
			continue
		}
		resolved[i] = filepath.Join(base, dir)
	}
	return resolved
}
