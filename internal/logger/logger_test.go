package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductionLogsJSON(t *testing.T) {
	var buf bytes.Buffer
	build(&buf, "production").Info("ticket generated", "ticket", "T1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ticket generated", line["msg"])
	assert.Equal(t, "T1", line["ticket"])
}

func TestDevLogsTextWithDebug(t *testing.T) {
	var buf bytes.Buffer
	build(&buf, "dev").Debug("catalog loaded", "products", 5)
	assert.True(t, strings.Contains(buf.String(), "level=DEBUG"))
	assert.Contains(t, buf.String(), "products=5")
}
