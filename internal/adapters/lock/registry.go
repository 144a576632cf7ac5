// Package lock provides cross-process task locks backed by lock files.
package lock

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	defaultInitialInterval = 100 * time.Millisecond
	defaultMaxInterval     = 2 * time.Second
	defaultMaxElapsed      = 5 * time.Minute
)

var _ ports.Locker = (*Registry)(nil)

// Registry tracks the task locks held by this process. A lock is a file
// created exclusively in the lock directory and removed on release.
type Registry struct {
	dir        string
	logger     ports.Logger
	newBackOff func() backoff.BackOff

	mu   sync.Mutex
	held map[string]*os.File
}

// Option configures a Registry.
type Option func(*Registry)

// WithBackOff overrides the retry policy used while a lock is held elsewhere.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(r *Registry) {
		r.newBackOff = newBackOff
	}
}

// NewRegistry creates a Registry storing lock files in dir.
func NewRegistry(dir string, logger ports.Logger, opts ...Option) *Registry {
	r := &Registry{
		dir:        dir,
		logger:     logger,
		newBackOff: defaultBackOff,
		held:       make(map[string]*os.File),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = defaultInitialInterval
	b.MaxInterval = defaultMaxInterval
	b.MaxElapsedTime = defaultMaxElapsed
	return b
}

// Acquire takes every named lock in order. If any lock cannot be taken the
// ones already acquired are released. The returned function releases all of
// them in reverse order and is safe to call more than once.
func (r *Registry) Acquire(ctx context.Context, names []string) (func(), error) {
	acquired := make([]string, 0, len(names))
	releaseAll := func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			r.release(acquired[i])
		}
		acquired = acquired[:0]
	}

	for _, name := range names {
		if err := r.acquire(ctx, name); err != nil {
			releaseAll()
			return nil, err
		}
		acquired = append(acquired, name)
	}

	var once sync.Once
	return func() { once.Do(releaseAll) }, nil
}

// Held reports whether this process holds the named lock.
func (r *Registry) Held(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.held[name]
	return ok
}

func (r *Registry) acquire(ctx context.Context, name string) error {
	if r.Held(name) {
		return zerr.With(domain.ErrDeadLock, "lock", name)
	}

	if err := os.MkdirAll(r.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create lock directory"), "path", r.dir)
	}

	path := r.path(name)
	waiting := false

	op := func() error {
		//nolint:gosec // Path is derived from the project layout
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, domain.PrivateFilePerm)
		if err == nil {
			_, _ = fmt.Fprintf(f, "%d\n", os.Getpid())
			r.mu.Lock()
			r.held[name] = f
			r.mu.Unlock()
			return nil
		}
		if errors.Is(err, fs.ErrExist) {
			if !waiting {
				waiting = true
				r.logger.Warn(fmt.Sprintf("task %s is locked by another process, waiting for it to unlock", name))
			}
			return err
		}
		return backoff.Permanent(err)
	}

	err := backoff.Retry(op, backoff.WithContext(r.newBackOff(), ctx))
	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return zerr.With(zerr.Wrap(ctx.Err(), "interrupted while waiting for task lock"), "lock", name)
	case errors.Is(err, fs.ErrExist):
		return zerr.With(zerr.With(domain.ErrLockTimeout, "lock", name), "path", path)
	default:
		return zerr.With(zerr.Wrap(err, "failed to create lock file"), "path", path)
	}
}

func (r *Registry) release(name string) {
	r.mu.Lock()
	f, ok := r.held[name]
	delete(r.held, name)
	r.mu.Unlock()

	if !ok {
		return
	}
	_ = f.Close()
	if err := os.Remove(r.path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		r.logger.Warn(fmt.Sprintf("failed to remove lock file for task %s: %v", name, err))
	}
}

func (r *Registry) path(name string) string {
	return filepath.Join(r.dir, name+".lock")
}
