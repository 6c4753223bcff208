package blocks

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Abhinay9346/portfolio/internal/markdown"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestMarkdown_CodeBlock(t *testing.T) {
	out := render(t, Markdown("```js\nif (a < b) {\n}\n```"))

	assert.Contains(t, out, `text-muted-foreground">js</div>`)
	assert.Contains(t, out, "if (a &lt; b) {\n}</code>")
}

func TestMarkdown_CodeBlockWithoutLanguage(t *testing.T) {
	out := render(t, Markdown("```\nx\n```"))

	assert.NotContains(t, out, "border-b border-border bg-muted/50")
	assert.Contains(t, out, ">x</code>")
}

func TestMarkdown_HeadingAndBoldAreNotSubstituted(t *testing.T) {
	out := render(t, Markdown("## Use `jwt` **now**\n**Step <1>**"))

	assert.Contains(t, out, "<h2 class=\"mb-4 mt-10 text-2xl font-bold tracking-tight text-foreground\">Use `jwt` **now**</h2>")
	assert.Contains(t, out, ">Step &lt;1&gt;</p>")
}

func TestMarkdown_NumberedListRenumbers(t *testing.T) {
	out := render(t, Markdown("3. first\n7. second"))

	assert.Equal(t, 1, strings.Count(out, "<ol"))
	assert.Contains(t, out, ">1</span><span>first</span>")
	assert.Contains(t, out, ">2</span><span>second</span>")
	assert.NotContains(t, out, ">3</span>")
}

func TestMarkdown_BulletListInline(t *testing.T) {
	out := render(t, Markdown("- **Bold** and `code` and *not em*"))

	assert.Contains(t, out, `<strong class="text-foreground font-semibold">Bold</strong>`)
	assert.Contains(t, out, `font-mono text-xs text-foreground">code</code>`)
	assert.Contains(t, out, "*not em*")
}

func TestMarkdown_ParagraphEscapesHTML(t *testing.T) {
	out := render(t, Markdown("<script>alert(1)</script> *hi*"))

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "<em>hi</em>")
}

func TestMarkdownBlocks_Order(t *testing.T) {
	out := render(t, MarkdownBlocks([]markdown.Block{
		markdown.Paragraph{Text: "one"},
		markdown.Heading{Text: "two"},
		markdown.Paragraph{Text: "three"},
	}))

	one := strings.Index(out, "one")
	two := strings.Index(out, "two")
	three := strings.Index(out, "three")
	assert.True(t, one < two && two < three)
}

func TestMarkdown_Empty(t *testing.T) {
	assert.Empty(t, render(t, Markdown("")))
	assert.Empty(t, render(t, Markdown("\n  \n\t")))
}
