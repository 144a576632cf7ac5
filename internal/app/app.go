// Package app implements the application layer for modkit.
package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/modkit/internal/adapters/detector"
	"go.trai.ch/modkit/internal/adapters/lock"
	"go.trai.ch/modkit/internal/adapters/progress"
	"go.trai.ch/modkit/internal/adapters/watcher"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	manifests    ports.ManifestReader
	fs           ports.FileSystem
	hasher       ports.Hasher
	store        ports.FingerprintStore
	archiver     ports.Archiver
	tracer       ports.Tracer
	logger       ports.Logger
	watchers     watcher.Factory

	stdout io.Writer
	stderr io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	manifests ports.ManifestReader,
	fs ports.FileSystem,
	hasher ports.Hasher,
	store ports.FingerprintStore,
	archiver ports.Archiver,
	tracer ports.Tracer,
	log ports.Logger,
	watchers watcher.Factory,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		manifests:    manifests,
		fs:           fs,
		hasher:       hasher,
		store:        store,
		archiver:     archiver,
		tracer:       tracer,
		logger:       log,
		watchers:     watchers,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput redirects the output of external tools.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// RunOptions configuration for the Run and Watch methods.
type RunOptions struct {
	OutputMode string
	// Dir is where the search for modkit.yaml starts. Empty means the
	// working directory.
	Dir string
}

// Run executes phases in the given order. The first failing phase stops the run.
func (a *App) Run(ctx context.Context, phases []domain.Phase, opts RunOptions) error {
	if len(phases) == 0 {
		return domain.ErrNoPhasesSpecified
	}

	cfg, err := a.loadConfig(opts.Dir)
	if err != nil {
		return err
	}

	s, err := a.newSession(cfg, opts)
	if err != nil {
		return err
	}
	return s.run(ctx, phases)
}

func (a *App) loadConfig(dir string) (*domain.Config, error) {
	// An empty dir resolves to the working directory.
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve working directory")
	}
	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func (a *App) newSession(cfg *domain.Config, opts RunOptions) (*session, error) {
	mode, err := detector.Resolve(detector.FromOS(), opts.OutputMode)
	if err != nil {
		return nil, err
	}
	return &session{
		app:      a,
		cfg:      cfg,
		locks:    lock.NewRegistry(cfg.Layout.LockDir(), a.logger),
		progress: progress.NewFactory(mode == detector.ModeInteractive, a.stderr, a.logger),
	}, nil
}

// Watch builds the java modules, then rebuilds them whenever a file below a
// module directory changes. It returns when ctx is canceled.
func (a *App) Watch(ctx context.Context, opts RunOptions) error {
	cfg, err := a.loadConfig(opts.Dir)
	if err != nil {
		return err
	}
	s, err := a.newSession(cfg, opts)
	if err != nil {
		return err
	}

	modules, err := s.driver(false).Resolve(cfg.JavaEntries())
	if err != nil {
		return errors.Join(domain.ErrBuildFailed, err)
	}
	roots := make([]string, len(modules))
	for i, m := range modules {
		roots[i] = m.Dir
	}

	w, err := a.watchers()
	if err != nil {
		return err
	}
	if err := w.Start(ctx, roots); err != nil {
		return err
	}
	defer w.Stop() //nolint:errcheck // Nothing to recover on shutdown

	// The debouncer collects module roots, so a burst of saves across one
	// module reports that module once.
	rebuild := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(changed []string) {
		select {
		case rebuild <- changed:
		default:
		}
	})
	go func() {
		for event := range w.Events() {
			debouncer.Add(cmp.Or(event.Root, event.Path))
		}
	}()

	build := []domain.Phase{domain.PhaseCompileJavaDebug}
	if err := s.run(ctx, build); err != nil {
		a.logger.Error(err)
	}
	a.logger.Info(fmt.Sprintf("watching %d modules for changes", len(roots)))

	for {
		select {
		case <-ctx.Done():
			return nil
		case changed := <-rebuild:
			names := make([]string, len(changed))
			for i, dir := range changed {
				names[i] = filepath.Base(dir)
			}
			a.logger.Info("changes in " + strings.Join(names, ", ") + ", rebuilding")
			if err := s.run(ctx, build); err != nil {
				a.logger.Error(err)
			}
		}
	}
}
