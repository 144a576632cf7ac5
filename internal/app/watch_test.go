package app_test

import (
	"context"
	"io"
	"iter"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modkit/internal/app"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.uber.org/mock/gomock"
)

type fakeWatcher struct {
	started chan []string
	events  chan ports.WatchEvent
	once    sync.Once
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{
		started: make(chan []string, 1),
		events:  make(chan ports.WatchEvent),
	}
}

func (w *fakeWatcher) Start(_ context.Context, roots []string) error {
	w.started <- roots
	return nil
}

func (w *fakeWatcher) Stop() error {
	w.once.Do(func() { close(w.events) })
	return nil
}

func (w *fakeWatcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func TestApp_Watch_RebuildsOnChange(t *testing.T) {
	w := newFakeWatcher()
	env := setupApp(t, func() (ports.Watcher, error) { return w, nil })
	env.logger.EXPECT().Error(gomock.Any()).AnyTimes()
	env.addModule(t, "core")

	builds := make(chan struct{}, 4)
	tools := env.fakeTools("core")
	env.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error {
			if cmd.Tool == "gradle" {
				builds <- struct{}{}
			}
			return tools(ctx, cmd, stdout, stderr)
		}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- env.app.Watch(ctx, app.RunOptions{}) }()

	roots := <-w.started
	moduleDir := filepath.Join(env.cfg.Layout.Root, "src", "java", "core")
	assert.Equal(t, []string{moduleDir}, roots)

	waitBuild := func() {
		t.Helper()
		select {
		case <-builds:
		case <-time.After(10 * time.Second):
			t.Fatal("expected a build")
		}
	}
	waitBuild()

	w.events <- ports.WatchEvent{Path: filepath.Join(moduleDir, "src", "Main.java"), Root: moduleDir, Operation: ports.OpWrite}
	waitBuild()

	cancel()
	require.NoError(t, <-done)
}
