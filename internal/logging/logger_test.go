package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"", zapcore.InfoLevel},
		{"INFO", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestGetBeforeInitializeIsNoop(t *testing.T) {
	Reset()
	l := Get(CategoryStats)
	require.NotNil(t, l)
	l.Warn("dropped")
}

func TestInitializeJSONCategoryNames(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	_, err := Initialize(Options{Level: "debug", Format: "json", Output: zapcore.AddSync(&buf)})
	require.NoError(t, err)

	Get(CategoryCodec).Warn("overflow", zap.Int64("value", 128))
	Sync()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "codec", entry["logger"])
	assert.Equal(t, "overflow", entry["msg"])
	assert.Equal(t, float64(128), entry["value"])
}

func TestInitializeRespectsLevel(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	_, err := Initialize(Options{Level: "error", Format: "console", Output: zapcore.AddSync(&buf)})
	require.NoError(t, err)

	Get(CategoryStats).Warn("skipped line")
	Get(CategoryStats).Error("no data")
	Sync()

	out := buf.String()
	assert.NotContains(t, out, "skipped line")
	assert.True(t, strings.Contains(out, "no data"))
}

func TestInitializeRejectsUnknownFormat(t *testing.T) {
	_, err := Initialize(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestUseObserver(t *testing.T) {
	defer Reset()

	core, logs := observer.New(zapcore.DebugLevel)
	Use(zap.New(core))

	Get(CategoryWatch).Info("rerun")
	entries := logs.FilterLoggerName("watch").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "rerun", entries[0].Message)
}
