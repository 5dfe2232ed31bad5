package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Sink(t *testing.T) {
	t.Parallel()

	t.Run("unopenable sink reported", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		sink := filepath.Join(t.TempDir(), "missing", "library.log")
		log := newLogger(Log{LogLevel: zapcore.InfoLevel, Sink: sink}, "test", zapcore.AddSync(&out))
		log.Info("hello")

		require.Contains(t, out.String(), `"msg":"log sink unavailable"`)
		require.Contains(t, out.String(), sink)
		require.Contains(t, out.String(), `"msg":"hello"`)
	})

	t.Run("sink receives entries", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		sink := filepath.Join(t.TempDir(), "library.log")
		log := newLogger(Log{LogLevel: zapcore.InfoLevel, Sink: sink}, "test", zapcore.AddSync(&out))
		log.Info("hello")
		require.NoError(t, log.Sync())

		raw, err := os.ReadFile(sink)
		require.NoError(t, err)
		require.Contains(t, string(raw), `"msg":"hello"`)
		require.NotContains(t, out.String(), "log sink unavailable")
	})
}
