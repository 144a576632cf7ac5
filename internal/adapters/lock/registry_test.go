package lock_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modkit/internal/adapters/lock"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func fastBackOff() backoff.BackOff {
	return backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Millisecond), 3)
}

func TestRegistry_AcquireRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := filepath.Join(t.TempDir(), "lock")
	r := lock.NewRegistry(dir, mocks.NewMockLogger(ctrl), lock.WithBackOff(fastBackOff))

	release, err := r.Acquire(context.Background(), []string{"compileJavaDebug", "java", "push"})
	require.NoError(t, err)

	for _, name := range []string{"compileJavaDebug", "java", "push"} {
		assert.FileExists(t, filepath.Join(dir, name+".lock"))
		assert.True(t, r.Held(name))
	}

	release()
	release()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.False(t, r.Held("java"))
}

func TestRegistry_DeadLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := lock.NewRegistry(t.TempDir(), mocks.NewMockLogger(ctrl), lock.WithBackOff(fastBackOff))

	release, err := r.Acquire(context.Background(), []string{"java"})
	require.NoError(t, err)
	defer release()

	_, err = r.Acquire(context.Background(), []string{"push", "java"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDeadLock.Error())
	assert.False(t, r.Held("push"), "partially acquired locks must be released")
}

func TestRegistry_HeldByAnotherProcess(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn("task java is locked by another process, waiting for it to unlock").Times(1)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "java.lock"), []byte("1\n"), domain.PrivateFilePerm))

	r := lock.NewRegistry(dir, logger, lock.WithBackOff(fastBackOff))
	_, err := r.Acquire(context.Background(), []string{"java"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrLockTimeout.Error())
	assert.FileExists(t, filepath.Join(dir, "java.lock"), "foreign lock must survive")
}

func TestRegistry_WaitsForRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	foreign := filepath.Join(dir, "push.lock")
	require.NoError(t, os.WriteFile(foreign, []byte("1\n"), domain.PrivateFilePerm))

	slow := func() backoff.BackOff {
		return backoff.WithMaxRetries(backoff.NewConstantBackOff(20*time.Millisecond), 100)
	}
	r := lock.NewRegistry(dir, logger, lock.WithBackOff(slow))

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.Remove(foreign)
	}()

	release, err := r.Acquire(context.Background(), []string{"push"})
	require.NoError(t, err)
	release()
}

func TestRegistry_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "java.lock"), nil, domain.PrivateFilePerm))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := lock.NewRegistry(dir, logger)
	_, err := r.Acquire(ctx, []string{"java"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interrupted while waiting for task lock")
}
