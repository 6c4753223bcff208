package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedName(t *testing.T) {
	assert.Equal(t, "internal/ui/pages/home_templ.go", generatedName("internal/ui/pages/home.templ"))
}

func TestIsUpToDate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "home.templ")
	out := filepath.Join(dir, "home_templ.go")
	require.NoError(t, os.WriteFile(src, []byte("package pages"), 0o644))

	assert.False(t, isUpToDate(out, []string{src}), "missing output")

	require.NoError(t, os.WriteFile(out, []byte("package pages"), 0o644))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(src, old, old))
	assert.True(t, isUpToDate(out, []string{src, filepath.Join(dir, "missing.templ")}))

	require.NoError(t, os.Chtimes(src, time.Now().Add(time.Hour), time.Now().Add(time.Hour)))
	assert.False(t, isUpToDate(out, []string{src}))
}

func TestFilesWithSuffix(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.templ", "a_templ.go", "a_test.go", "sub/b.templ"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	assert.ElementsMatch(t,
		[]string{filepath.Join(dir, "a.templ"), filepath.Join(dir, "sub", "b.templ")},
		filesWithSuffix(dir, ".templ"))
	assert.Equal(t, []string{filepath.Join(dir, "a_templ.go")}, filesWithSuffix(dir, ".go"))
}
