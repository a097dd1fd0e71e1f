package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		kv    string
	}{
		{"DEBUG", "dbg", "a=1"},
		{"INFO", "inf", "b=2"},
		{"WARN", "wrn", "c=3"},
		{"ERROR", "err", "d=4"},
	}

	for _, tc := range tests {
		assert.Contains(t, out, "level="+tc.level)
		assert.Contains(t, out, "msg="+tc.msg)
		assert.Contains(t, out, tc.kv)
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("module", "explorer", "folder", "f1").Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	for _, s := range []string{"level=INFO", "msg=hello", "module=explorer", "folder=f1", "k=v"} {
		assert.Contains(t, out, s)
	}
}

func TestNew_Backends(t *testing.T) {
	t.Run("slog json", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(BackendSlog, "info", &buf)
		require.NoError(t, err)

		l.Debug(context.Background(), "hidden")
		l.Info(context.Background(), "shown", "n", 1)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 1)
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
		assert.Equal(t, "shown", rec["msg"])
	})

	t.Run("zap json", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(BackendZap, "debug", &buf)
		require.NoError(t, err)

		l.With("module", "grpc").Warn(context.Background(), "slow call", "method", "ListFiles")
		require.NoError(t, l.(*ZapLogger).Sync())

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "slow call", rec["msg"])
		assert.Equal(t, "warn", rec["level"])
		assert.Equal(t, "grpc", rec["module"])
		assert.Equal(t, "ListFiles", rec["method"])
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := New("logrus", "info", &bytes.Buffer{})
		require.Error(t, err)
	})
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop().With("a", 1)
	l.Info(context.TODO(), "x")
	l.Error(context.TODO(), "y")
}

func TestContextWith_FieldsReachBothBackends(t *testing.T) {
	ctx := ContextWith(context.Background(), "user_id", "u1")
	ctx = ContextWith(ctx, "method", "/portal/ListFiles")
	assert.Equal(t, ctx, ContextWith(ctx), "no args keeps the context")

	for _, backend := range []string{BackendSlog, BackendZap} {
		t.Run(backend, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(backend, "info", &buf)
			require.NoError(t, err)

			l.Info(ctx, "listed", "items", 3)
			if z, ok := l.(*ZapLogger); ok {
				require.NoError(t, z.Sync())
			}

			var rec map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
			assert.Equal(t, "u1", rec["user_id"])
			assert.Equal(t, "/portal/ListFiles", rec["method"])
			assert.EqualValues(t, 3, rec["items"])
		})
	}
}
