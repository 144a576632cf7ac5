package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/modkit/internal/adapters/adb"
	"go.trai.ch/modkit/internal/adapters/d8"
	"go.trai.ch/modkit/internal/adapters/gradle"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/modkit/internal/engine/driver"
	"go.trai.ch/zerr"
)

// HorizonPackage is the android package of the game the mods run in.
const HorizonPackage = "com.zheka.horizon"

// session runs phases against one loaded configuration.
type session struct {
	app      *App
	cfg      *domain.Config
	locks    ports.Locker
	progress ports.ProgressFactory
}

func (s *session) run(ctx context.Context, phases []domain.Phase) error {
	for _, phase := range phases {
		if err := s.runPhase(ctx, phase); err != nil {
			return errors.Join(domain.ErrBuildFailed, err)
		}
	}
	return nil
}

func (s *session) runPhase(ctx context.Context, phase domain.Phase) error {
	release, err := s.locks.Acquire(ctx, phase.Locks())
	if err != nil {
		return err
	}
	defer release()

	ctx, span := s.app.tracer.Start(ctx, phase.String())
	defer span.End()

	s.app.logger.Info("> Task :" + phase.String())
	if err := s.dispatch(ctx, phase); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (s *session) dispatch(ctx context.Context, phase domain.Phase) error {
	switch phase {
	case domain.PhaseCompileJavaDebug:
		return s.compileJava(ctx, false)
	case domain.PhaseCompileJavaRelease:
		return s.compileJava(ctx, true)
	case domain.PhaseClearGradleCache:
		return s.clearGradleCache()
	case domain.PhaseClearOutput:
		return s.clearOutput()
	case domain.PhaseExcludeDirectories:
		return s.excludeDirectories()
	case domain.PhaseBuildPackage:
		return s.buildPackage()
	case domain.PhasePushEverything:
		return s.pushEverything(ctx)
	case domain.PhaseLaunchHorizon:
		return s.bridge().Shell(ctx, []string{
			"monkey", "-p", HorizonPackage, "-c", "android.intent.category.LAUNCHER", "1",
		})
	case domain.PhaseStopHorizon:
		return s.bridge().Shell(ctx, []string{"am", "force-stop", HorizonPackage})
	default:
		return zerr.With(domain.ErrUnknownPhase, "task", phase.String())
	}
}

func (s *session) driver(release bool) *driver.Driver {
	a := s.app
	return driver.New(driver.Ports{
		Manifests: a.manifests,
		FS:        a.fs,
		Hasher:    a.hasher,
		Store:     a.store,
		Archiver:  a.archiver,
		Compiler:  gradle.NewCompiler(a.executor, a.fs, s.cfg.Tools, a.stdout, a.stderr),
		Dexer:     d8.NewDexer(a.executor, s.cfg.Tools, a.stdout, a.stderr),
		Progress:  s.progress,
		Tracer:    a.tracer,
		Logger:    a.logger,
	}, s.cfg.Layout, driver.Options{
		Java:    s.cfg.Java,
		Release: release,
	})
}

func (s *session) bridge() *adb.Bridge {
	return adb.NewBridge(s.app.executor, s.cfg.Tools, s.app.stdout, s.app.stderr)
}

func (s *session) compileJava(ctx context.Context, release bool) error {
	d := s.driver(release)
	modules, err := d.Resolve(s.cfg.JavaEntries())
	if err != nil {
		return err
	}
	return d.Build(ctx, modules)
}

func (s *session) clearGradleCache() error {
	s.app.logger.Info("removing java build cache")
	return s.app.fs.RemoveAll(s.cfg.Layout.CacheDir())
}

func (s *session) clearOutput() error {
	s.app.logger.Info("clearing " + s.cfg.Layout.Output)
	return s.app.fs.ClearDir(s.cfg.Layout.Output)
}

// excludeDirectories deletes every output path matching a package exclude pattern.
func (s *session) excludeDirectories() error {
	output := s.cfg.Layout.Output
	for _, pattern := range s.cfg.Package.Exclude {
		matches, err := doublestar.FilepathGlob(filepath.Join(output, filepath.FromSlash(pattern)))
		if err != nil {
			return zerr.With(zerr.Wrap(err, "invalid exclude pattern"), "pattern", pattern)
		}
		for _, match := range matches {
			s.app.logger.Info("excluding " + match)
			if err := s.app.fs.RemoveAll(match); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildPackage zips the output root into a staging archive and moves it into place.
func (s *session) buildPackage() error {
	layout := s.cfg.Layout
	staging := layout.PackageStagingPath()
	target := s.cfg.Package.Output

	s.app.logger.Info("packaging " + layout.Output)
	if err := s.app.archiver.Pack(layout.Output, staging, func(rel string) bool {
		return !Excluded(s.cfg.Package.Exclude, rel)
	}); err != nil {
		return errors.Join(domain.ErrPackageFailed, err)
	}

	if err := s.app.fs.EnsureDir(filepath.Dir(target)); err != nil {
		return err
	}
	if err := os.Rename(staging, target); err != nil {
		_ = os.Remove(staging)
		return zerr.With(zerr.Wrap(err, domain.ErrPackageFailed.Error()), "path", target)
	}
	s.app.logger.Info("package written to " + target)
	return nil
}

func (s *session) pushEverything(ctx context.Context) error {
	target := s.cfg.Push.Target
	if target == "" {
		return domain.ErrPushTargetMissing
	}
	s.app.logger.Info(fmt.Sprintf("pushing %s to %s", s.cfg.Layout.Output, target))
	return s.bridge().Push(ctx, s.cfg.Layout.Output, target)
}

// Excluded reports whether the slash separated path rel, or any directory
// containing it, matches one of patterns.
func Excluded(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		pattern = strings.Trim(filepath.ToSlash(pattern), "/")
		for candidate := rel; candidate != "." && candidate != ""; candidate = path.Dir(candidate) {
			if ok, _ := doublestar.Match(pattern, candidate); ok {
				return true
			}
		}
	}
	return false
}
