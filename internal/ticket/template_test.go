package ticket

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allPlaceholders() string {
	var sb strings.Builder
	for _, p := range placeholders {
		sb.WriteString("{{" + p + "}}\n")
	}
	return sb.String()
}

func values(v string) map[string]string {
	m := make(map[string]string, len(placeholders))
	for _, p := range placeholders {
		m[p] = v
	}
	return m
}

func TestDefaultTemplateDeclaresEveryPlaceholder(t *testing.T) {
	tmpl, err := DefaultTemplate()
	require.NoError(t, err)
	for _, p := range placeholders {
		assert.GreaterOrEqual(t, tmpl.Occurrences(p), 1, p)
	}
}

func TestCompileRejectsMissingPlaceholder(t *testing.T) {
	src := strings.Replace(allPlaceholders(), "{{tax}}", "", 1)
	_, err := CompileTemplate(src)
	require.ErrorIs(t, err, ErrGeneration)
	assert.Contains(t, err.Error(), "tax")
}

func TestCompileRejectsUnknownPlaceholder(t *testing.T) {
	_, err := CompileTemplate(allPlaceholders() + "{{discount}}")
	require.ErrorIs(t, err, ErrGeneration)
	assert.Contains(t, err.Error(), "discount")
}

func TestRenderSubstitutesAllOccurrences(t *testing.T) {
	tmpl, err := CompileTemplate(allPlaceholders() + "{{total}} again {{ total }}")
	require.NoError(t, err)
	assert.Equal(t, 3, tmpl.Occurrences(PhTotal))

	vals := values("x")
	vals[PhTotal] = "9.99"
	out, err := tmpl.Render(vals)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "9.99"))
	assert.NotContains(t, out, "{{")
}

func TestRenderMissingValue(t *testing.T) {
	tmpl, err := CompileTemplate(allPlaceholders())
	require.NoError(t, err)
	vals := values("x")
	delete(vals, PhItems)
	_, err = tmpl.Render(vals)
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestLoadTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.html")
	require.NoError(t, os.WriteFile(path, []byte(allPlaceholders()), 0o644))
	_, err := LoadTemplate(path)
	require.NoError(t, err)

	_, err = LoadTemplate(filepath.Join(t.TempDir(), "missing.html"))
	assert.ErrorIs(t, err, ErrGeneration)
}
