package adb_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modkit/internal/adapters/adb"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_Push(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	bridge := adb.NewBridge(executor, domain.Tools{Adb: "adb"}, io.Discard, io.Discard)

	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd *domain.Command, _, _ io.Writer) error {
			assert.Equal(t, []string{"adb", "push", "/p/output/.", "/sdcard/mods/x"}, cmd.Argv())
			return nil
		})

	require.NoError(t, bridge.Push(context.Background(), "/p/output/", "/sdcard/mods/x"))
}

func TestBridge_Shell(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	bridge := adb.NewBridge(executor, domain.Tools{Adb: "/sdk/adb"}, io.Discard, io.Discard)

	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd *domain.Command, _, _ io.Writer) error {
			assert.Equal(t, "adb", cmd.Tool)
			assert.Equal(t, []string{"/sdk/adb", "shell", "am", "force-stop", "com.zheka.horizon"}, cmd.Argv())
			return &domain.ProcessError{Tool: "adb", Code: 1, Err: errors.New("no devices")}
		})

	err := bridge.Shell(context.Background(), []string{"am", "force-stop", "com.zheka.horizon"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDeviceCommandFailed)
	assert.Equal(t, 1, domain.ExitCodeOf(err))
}
