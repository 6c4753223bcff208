package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Abhinay9346/portfolio/internal/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBlocks(t *testing.T) {
	var buf bytes.Buffer
	blocks := markdown.Render("## Title\n```go\nfmt.Println()\n```\n5. one\n9. two\nplain")
	require.NoError(t, printBlocks(&buf, blocks))

	want := strings.Join([]string{
		`  1  heading   "Title"`,
		`  2  code      lang=go lines=1`,
		`       | fmt.Println()`,
		`  3  numbered  items=2`,
		`       1. one`,
		`       2. two`,
		`  4  paragraph "plain"`,
		`4 blocks`,
		``,
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestLoadContent_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.md")
	require.NoError(t, os.WriteFile(path, []byte("---\ntitle: Draft\n---\n## Hello\n"), 0o644))

	content, name, err := loadContent(path)
	require.NoError(t, err)
	assert.Equal(t, path, name)
	assert.NotContains(t, content, "title: Draft")
	assert.Contains(t, content, "## Hello")
}

func TestLoadContent_Slug(t *testing.T) {
	content, name, err := loadContent("jwt-authentication-mern")
	require.NoError(t, err)
	assert.Equal(t, "jwt-authentication-mern", name)
	assert.NotEmpty(t, content)

	_, _, err = loadContent("no-such-post")
	assert.ErrorContains(t, err, "known slugs")
}

func TestBlocksCmd_WarnsOnUnterminatedFence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "open.md")
	require.NoError(t, os.WriteFile(path, []byte("```\nnever closed"), 0o644))

	var out, errOut bytes.Buffer
	cmd := BlocksCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "unterminated code fence")
	assert.Contains(t, out.String(), "1 blocks")
}
