package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modkit/internal/adapters/watcher"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/modkit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestIsBuildInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"src/Main.java", true},
		{"src/Legacy.JAVA", true},
		{"libs/guava.jar", true},
		{"manifest", true},
		{"order.txt", true},
		{"build.gradle", false},
		{"settings.gradle", false},
		{"src/.Main.java.swp", false},
		{"notes.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, watcher.IsBuildInput(tt.path))
		})
	}
}

func startWatcher(t *testing.T, roots ...string) <-chan ports.WatchEvent {
	t.Helper()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, w.Start(ctx, roots))

	events := make(chan ports.WatchEvent, 16)
	go func() {
		for ev := range w.Events() {
			events <- ev
		}
	}()
	return events
}

func TestWatcher_ReportsSourceChanges(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(src, domain.DirPerm))

	events := startWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("x"), domain.PrivateFilePerm))
	target := filepath.Join(src, "Main.java")
	require.NoError(t, os.WriteFile(target, []byte("class Main {}"), domain.PrivateFilePerm))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			assert.NotEqual(t, "README.md", filepath.Base(ev.Path), "only build inputs are reported")
			if ev.Path == target {
				assert.Equal(t, root, ev.Root)
				return
			}
		case <-deadline:
			t.Fatal("no event for modified source file")
		}
	}
}

func TestWatcher_FollowsNewDirectories(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()

	events := startWatcher(t, rootA, rootB)

	pkg := filepath.Join(rootB, "src", "pkg")
	require.NoError(t, os.MkdirAll(pkg, domain.DirPerm))
	// Give the watcher a moment to pick up the new directory.
	time.Sleep(200 * time.Millisecond)
	target := filepath.Join(pkg, "Util.java")
	require.NoError(t, os.WriteFile(target, []byte("class Util {}"), domain.PrivateFilePerm))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Path == target {
				assert.Equal(t, rootB, ev.Root)
				return
			}
		case <-deadline:
			t.Fatal("no event for source file in new directory")
		}
	}
}

func TestWatcher_StartMissingRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, err := watcher.NewWatcher(mocks.NewMockLogger(ctrl))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	err = w.Start(context.Background(), []string{filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
}
