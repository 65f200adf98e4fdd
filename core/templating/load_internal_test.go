package templating

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExit replaces the process exit seam for the duration of a test and
// records the exit code. The stub panics so the fail-fast constructors do
// not fall through to returning a nil engine.
func stubExit(t *testing.T) *int {
	t.Helper()
	code := -1
	prev := exitFn
	exitFn = func(c int) {
		code = c
		panic("exit")
	}
	t.Cleanup(func() { exitFn = prev })
	return &code
}

func TestFromDirectoryExitsOnParseError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.html"), []byte("{% if %}"), 0o644))

	code := stubExit(t)
	assert.PanicsWithValue(t, "exit", func() {
		FromDirectory(dir)
	})
	assert.Equal(t, 1, *code)
}

func TestFromGlobExitsOnNoMatch(t *testing.T) {
	code := stubExit(t)
	assert.PanicsWithValue(t, "exit", func() {
		FromGlob(filepath.Join(t.TempDir(), "*.html"))
	})
	assert.Equal(t, 1, *code)
}

func TestFromDirectoryValidSet(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.html"), []byte("ok"), 0o644))

	code := stubExit(t)
	engine := FromDirectory(dir)
	require.NotNil(t, engine)
	assert.Equal(t, -1, *code, "exit must not be called for a valid set")
}

func TestSplitGlob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		base    string
		rest    string
	}{
		{"templates/**/*.html", "templates", "**/*.html"},
		{"templates/*.html", "templates", "*.html"},
		{"a/b/c/*.txt", "a/b/c", "*.txt"},
		{"*.html", ".", "*.html"},
		{"templates/page.html", "templates", "page.html"},
	}
	for _, tt := range tests {
		base, rest := splitGlob(tt.pattern)
		assert.Equal(t, tt.base, base, tt.pattern)
		assert.Equal(t, tt.rest, rest, tt.pattern)
	}
}
