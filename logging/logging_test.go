package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_Set(t *testing.T) {
	var l Level
	require.NoError(t, l.Set("info"))
	assert.Equal(t, LevelInfo, l)
	assert.Equal(t, "INFO", l.String())

	require.NoError(t, l.Set("DEBUG"))
	assert.Equal(t, LevelDebug, l)

	assert.Error(t, l.Set("loud"))
	assert.Equal(t, "[DEBUG,INFO,WARN,ERROR]", l.Type())
}

func TestFormat_Set(t *testing.T) {
	var f Format
	require.NoError(t, f.Set("json"))
	assert.Equal(t, FmtJSON, f)
	require.NoError(t, f.Set("LogFmt"))
	assert.Equal(t, FmtLogfmt, f)
	assert.Error(t, f.Set("xml"))
}

// TestInitialize covers early loggers, level filtering and both formats.
// Not parallel: it swaps the package backend.
func TestInitialize(t *testing.T) {
	early := GetLogger("early")

	var buf bytes.Buffer
	require.NoError(t, Initialize(&buf, FmtLogfmt, LevelInfo))
	assert.Equal(t, LevelInfo, GetLevel())

	early.Debug("hidden")
	early.Info("shown", "bins", 4)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "module=early")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "bins=4")

	buf.Reset()
	require.NoError(t, Initialize(&buf, FmtJSON, LevelError))
	GetLogger("late").With("run", 1).Error("failed", "err", "boom")
	early.Warn("dropped")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "failed", rec["msg"])
	assert.Equal(t, "late", rec["module"])
	assert.Equal(t, "boom", rec["err"])
	assert.Equal(t, float64(1), rec["run"])

	require.NoError(t, Initialize(nil, FmtLogfmt, LevelWarn))
	early.Error("nowhere")
}
