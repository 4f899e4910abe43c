package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAudit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	for _, n := range []string{"T1", "T2"} {
		body, err := json.Marshal(TicketGeneratedEvent{
			TicketNumber: n, ItemCount: 3, Subtotal: "439.94", Tax: "70.39", Total: "510.33",
			Location: "tickets/ticket-" + n + ".html", GeneratedAt: "2026-10-15T09:30:05Z",
		})
		require.NoError(t, err)
		require.NoError(t, AppendAudit(dir, body))
	}

	b, err := os.ReadFile(filepath.Join(dir, AuditLogName))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `ticket="T1"`)
	assert.Contains(t, lines[0], "total=510.33")
	assert.Contains(t, lines[1], `ticket="T2"`)
}

func TestAppendAuditRejectsBadPayloads(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, AppendAudit(dir, []byte("not json")))
	assert.Error(t, AppendAudit(dir, []byte(`{"total":"1.00"}`)))
}
