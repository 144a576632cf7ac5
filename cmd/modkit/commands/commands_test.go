package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modkit/cmd/modkit/commands"
	"go.trai.ch/modkit/internal/app"
	"go.trai.ch/modkit/internal/build"
	"go.trai.ch/modkit/internal/core/domain"
)

type mockApp struct {
	phases  []domain.Phase
	opts    app.RunOptions
	watched bool
	err     error
}

func (m *mockApp) Run(_ context.Context, phases []domain.Phase, opts app.RunOptions) error {
	m.phases = phases
	m.opts = opts
	return m.err
}

func (m *mockApp) Watch(_ context.Context, opts app.RunOptions) error {
	m.watched = true
	m.opts = opts
	return m.err
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	cli.SetArgs(args)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Phases(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []domain.Phase
	}{
		{"build", []string{"build"}, []domain.Phase{domain.PhaseCompileJavaDebug}},
		{"build release", []string{"build", "--release"}, []domain.Phase{domain.PhaseCompileJavaRelease}},
		{"clean", []string{"clean"}, []domain.Phase{domain.PhaseClearGradleCache}},
		{"clean output", []string{"clean", "--output"}, []domain.Phase{domain.PhaseClearGradleCache, domain.PhaseClearOutput}},
		{"package", []string{"package"}, []domain.Phase{domain.PhaseBuildPackage}},
		{"push", []string{"push"}, []domain.Phase{domain.PhasePushEverything}},
		{
			"run keeps order",
			[]string{"run", "stopHorizon", "compileJavaDebug", "pushEverything", "launchHorizon"},
			[]domain.Phase{
				domain.PhaseStopHorizon,
				domain.PhaseCompileJavaDebug,
				domain.PhasePushEverything,
				domain.PhaseLaunchHorizon,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockApp{}
			_, err := execute(t, m, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.phases)
		})
	}
}

func TestCommands_Run(t *testing.T) {
	t.Run("unknown task", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "run", "compileNative")
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrUnknownPhase.Error())
		assert.Nil(t, m.phases)
	})

	t.Run("shows usage when no tasks provided", func(t *testing.T) {
		m := &mockApp{}
		out, err := execute(t, m, "run")
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
		assert.Contains(t, out, "compileJavaRelease")
		assert.Nil(t, m.phases)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		m := &mockApp{err: errors.New("simulated error")}
		_, err := execute(t, m, "build")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_OutputMode(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "build", "--output-mode", "interactive")
	require.NoError(t, err)
	assert.Equal(t, "interactive", m.opts.OutputMode)

	_, err = execute(t, m, "package", "--ci")
	require.NoError(t, err)
	assert.Equal(t, "linear", m.opts.OutputMode)
}

func TestCommands_Chdir(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "-C", "mods/horizon", "build")
	require.NoError(t, err)
	assert.Equal(t, "mods/horizon", m.opts.Dir)
}

func TestCommands_HelpGroups(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Build Commands:")
	assert.Contains(t, out, "Device Commands:")
}

func TestCommands_Watch(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "watch")
	require.NoError(t, err)
	assert.True(t, m.watched)
	assert.Equal(t, "auto", m.opts.OutputMode)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "modkit "+build.Version+" (commit "+build.Commit), out)

	out, err = execute(t, &mockApp{}, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, build.Version+"\n", out)
}
