package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cook/internal/adapters/logger"
)

func TestPrettyHandler(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		args  []any
		want  string
	}{
		{name: "info", level: slog.LevelInfo, want: "msg\n"},
		{name: "warn", level: slog.LevelWarn, want: "! msg\n"},
		{name: "error", level: slog.LevelError, want: "✗ msg\n"},
		{name: "debug filtered", level: slog.LevelDebug, want: ""},
		{name: "attributes", level: slog.LevelInfo, args: []any{"platform", "Win64", "n", 3}, want: "msg platform=Win64 n=3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")
			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

			lg.Log(t.Context(), tt.level, "msg", tt.args...)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	base := logger.NewPrettyHandler(buf, nil)

	h := base.WithAttrs([]slog.Attr{slog.String("session", "book_1")}).WithGroup("child")
	slog.New(h).Info("started", "index", 2)
	slog.New(base).Info("plain")

	assert.Equal(t, "started child.session=book_1 child.index=2\nplain\n", buf.String())
}
