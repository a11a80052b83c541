package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cook/internal/adapters/logger"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing uncoloured output into a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Golden(t *testing.T) {
	tests := []struct {
		name string
		log  func(*logger.Logger)
	}{
		{
			name: "info_basic",
			log:  func(l *logger.Logger) { l.Info("cooking started") },
		},
		{
			name: "warn_basic",
			log:  func(l *logger.Logger) { l.Warn("slow package") },
		},
		{
			name: "error_chain",
			log: func(l *logger.Logger) {
				l.Error(zerr.Wrap(errors.New("connection refused"), "failed to reach cook server"))
			},
		},
		{
			name: "error_save_failed",
			log: func(l *logger.Logger) {
				err := zerr.With(errors.Join(domain.ErrSaveFailed, errors.New("disk full")), "package", "/game/a")
				l.Error(zerr.With(err, "platform", "Win64"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_Quiet(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetQuiet(true)

	lg.Info("hidden")
	lg.Warn("shown")

	assert.Equal(t, "! shown\n", buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(domain.ErrCookFailed)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, slog.LevelError.String(), record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "package cook failed", record["error"])
}

func TestLogger_SetJSONKeepsOutput(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetJSON(false)

	lg.Info("back to pretty")
	assert.Equal(t, "back to pretty\n", buf.String())
}
