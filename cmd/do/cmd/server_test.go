package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Abhinay9346/portfolio/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitHost(t *testing.T) {
	user, addr := splitHost("deploy@203.0.113.7")
	assert.Equal(t, "deploy", user)
	assert.Equal(t, "203.0.113.7", addr)

	user, addr = splitHost("example.com")
	assert.Equal(t, "root", user)
	assert.Equal(t, "example.com", addr)
}

func TestServiceUnit(t *testing.T) {
	assert.Equal(t, "portfolio.service", serviceUnit("portfolio"))
	assert.Equal(t, "portfolio.service", serviceUnit("portfolio.service"))
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, `'/opt/portfolio'`, shellQuote("/opt/portfolio"))
	assert.Equal(t, `'it'\''s'`, shellQuote("it's"))
}

func TestFindUnit(t *testing.T) {
	output := `[
		{"unit":"caddy.service","load":"loaded","active":"active","sub":"running","description":"Caddy"},
		{"unit":"portfolio.service","load":"loaded","active":"active","sub":"running","description":"Portfolio site"}
	]`

	u, err := findUnit(output, "portfolio.service")
	require.NoError(t, err)
	assert.Equal(t, "running", u.Sub)
	assert.Equal(t, "Portfolio site", u.Description)

	_, err = findUnit(output, "missing.service")
	assert.ErrorContains(t, err, "not found")

	_, err = findUnit("not json", "portfolio.service")
	assert.ErrorContains(t, err, "parse systemctl output")
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, confirm(strings.NewReader("yes\n"), &out, "Deploy?"))
	assert.Contains(t, out.String(), "Deploy? Type 'yes' to confirm: ")

	assert.False(t, confirm(strings.NewReader("y\n"), &out, "Deploy?"))
	assert.False(t, confirm(strings.NewReader(""), &out, "Deploy?"))
	assert.True(t, confirm(strings.NewReader("yes"), &out, "Deploy?"))
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printMessages(&buf, nil))
	assert.Equal(t, "No messages.\n", buf.String())

	buf.Reset()
	require.NoError(t, printMessages(&buf, []*model.ContactMessage{{
		Name:      "Ada",
		Email:     "ada@example.com",
		Message:   "Hello\nthere",
		CreatedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
	}}))
	assert.Contains(t, buf.String(), "RECEIVED")
	assert.Contains(t, buf.String(), "2026-03-01 09:30")
	assert.Contains(t, buf.String(), "Hello there")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short", 10))
	assert.Equal(t, "abcd…", preview("abcdefgh", 5))
	assert.Equal(t, "a b", preview(" a \n b ", 10))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", contentType("Resume.pdf"))
	assert.Equal(t, "application/octet-stream", contentType("resume"))
}
