package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modkit/internal/adapters/logger"
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("compiling 2 java modules") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("fingerprint cache is corrupt, rebuilding") },
			goldenName: "warn_basic",
		},
		{
			name:       "error",
			log:        func(l *logger.Logger) { l.Error(os.ErrPermission) },
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			log:        func(l *logger.Logger) { l.Error(errors.New("yaml: unmarshal errors:\n  line 3: bad")) },
			goldenName: "error_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.Wrap(errors.New("exit status 1"), "gradle failed")
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: gradle failed")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "exit status 1")
}

func TestLogger_ErrorJoined(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.Join(domain.ErrBuildFailed, &domain.ProcessError{Tool: "d8", Code: 2}))

	out := buf.String()
	assert.Contains(t, out, "Error: build failed")
	assert.Contains(t, out, "→ d8 exited with code 2")
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetFormat(logger.FormatJSON)

	lg.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}

func TestLogger_JSONErrorCarriesExitCode(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetFormat(logger.FormatJSON)

	lg.Error(errors.Join(domain.ErrBuildFailed, &domain.ProcessError{Tool: "gradle", Code: 4}))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "build failed\ngradle exited with code 4", record["error"])
	assert.InDelta(t, 4, record["exit_code"], 0)
}

func TestNew_FormatFromEnv(t *testing.T) {
	t.Setenv(logger.FormatEnv, "JSON")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	lg.Warn("stale lock")

	assert.True(t, json.Valid(buf.Bytes()), buf.String())
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, logger.FormatJSON, logger.ParseFormat(" json "))
	assert.Equal(t, logger.FormatPretty, logger.ParseFormat(""))
	assert.Equal(t, logger.FormatPretty, logger.ParseFormat("text"))
}

func TestLogger_SetOutputNil(t *testing.T) {
	lg := logger.New()
	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}
