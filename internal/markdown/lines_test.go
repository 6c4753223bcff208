package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Block
	}{
		{
			name:    "heading",
			content: "## Title",
			want:    []Block{Heading{Text: "Title"}},
		},
		{
			name:    "heading keeps inline markers",
			content: "## Why **JWT**?",
			want:    []Block{Heading{Text: "Why **JWT**?"}},
		},
		{
			name:    "heading needs a space",
			content: "##Title",
			want:    []Block{Paragraph{Text: "##Title"}},
		},
		{
			name:    "bullet list",
			content: "- a\n- b\n- c",
			want:    []Block{BulletList{Items: []string{"a", "b", "c"}}},
		},
		{
			name:    "bullet list stops at blank line",
			content: "- a\n\n- b",
			want: []Block{
				BulletList{Items: []string{"a"}},
				BulletList{Items: []string{"b"}},
			},
		},
		{
			name:    "numbered list drops source numbers",
			content: "1. first\n2. second",
			want:    []Block{NumberedList{Items: []string{"first", "second"}}},
		},
		{
			name:    "numbered list with arbitrary numbers",
			content: "7. seven\n12.\ttwelve",
			want:    []Block{NumberedList{Items: []string{"seven", "twelve"}}},
		},
		{
			name:    "numbered list after no-break space",
			content: "1.\u00a0nbsp",
			want:    []Block{NumberedList{Items: []string{"nbsp"}}},
		},
		{
			name:    "numbered list after vertical tab",
			content: "1.\vvt\n2.\u2028ls",
			want:    []Block{NumberedList{Items: []string{"vt", "ls"}}},
		},
		{
			name:    "next line after number is a paragraph",
			content: "1.\u0085nel",
			want:    []Block{Paragraph{Text: "1.\u0085nel"}},
		},
		{
			name:    "number without whitespace is a paragraph",
			content: "1.5 is a number",
			want:    []Block{Paragraph{Text: "1.5 is a number"}},
		},
		{
			name:    "paragraphs are not merged",
			content: "plain line\nanother line",
			want: []Block{
				Paragraph{Text: "plain line"},
				Paragraph{Text: "another line"},
			},
		},
		{
			name:    "bold line",
			content: "**Key advantages:**",
			want:    []Block{BoldLine{Text: "Key advantages:"}},
		},
		{
			name:    "bold line needs four characters",
			content: "***",
			want:    []Block{Paragraph{Text: "***"}},
		},
		{
			name:    "empty bold line",
			content: "****",
			want:    []Block{BoldLine{Text: ""}},
		},
		{
			name:    "bold line wins over bullet",
			content: "**- not a list**",
			want:    []Block{BoldLine{Text: "- not a list"}},
		},
		{
			name:    "bullet with trailing bold is a list",
			content: "- **Stateless**",
			want:    []Block{BulletList{Items: []string{"**Stateless**"}}},
		},
		{
			name:    "code block with language",
			content: "```javascript\nconst a = 1;\n\n## not a heading\n```",
			want: []Block{
				CodeBlock{Language: "javascript", Lines: []string{"const a = 1;", "", "## not a heading"}},
			},
		},
		{
			name:    "code block language is trimmed",
			content: "```  go  \nx\n```",
			want:    []Block{CodeBlock{Language: "go", Lines: []string{"x"}}},
		},
		{
			name:    "code block without language",
			content: "```\nx\n```\nafter",
			want: []Block{
				CodeBlock{Language: "", Lines: []string{"x"}},
				Paragraph{Text: "after"},
			},
		},
		{
			name:    "closing fence text is discarded",
			content: "```\nx\n```trailing\nafter",
			want: []Block{
				CodeBlock{Lines: []string{"x"}},
				Paragraph{Text: "after"},
			},
		},
		{
			name:    "empty code block",
			content: "```\n```",
			want:    []Block{CodeBlock{Lines: []string{}}},
		},
		{
			name:    "unterminated fence swallows the rest",
			content: "intro\n```sh\necho hi\n## heading\n- item",
			want: []Block{
				Paragraph{Text: "intro"},
				CodeBlock{Language: "sh", Lines: []string{"echo hi", "## heading", "- item"}},
			},
		},
		{
			name:    "lone opening fence",
			content: "```",
			want:    []Block{CodeBlock{Lines: []string{}}},
		},
		{
			name:    "blank lines emit nothing",
			content: "\n   \n\t\n",
			want:    []Block{},
		},
		{
			name:    "byte order mark and unicode spaces are blank",
			content: "\ufeff\n\u00a0\u3000\n\v\u2029",
			want:    []Block{},
		},
		{
			name:    "next line character is not blank",
			content: "\u0085",
			want:    []Block{Paragraph{Text: "\u0085"}},
		},
		{
			name:    "empty content",
			content: "",
			want:    []Block{},
		},
		{
			name:    "carriage returns are kept",
			content: "## Title\r\n- a\r",
			want: []Block{
				Heading{Text: "Title\r"},
				BulletList{Items: []string{"a\r"}},
			},
		},
		{
			name:    "indented bullet is a paragraph",
			content: "  - nested",
			want:    []Block{Paragraph{Text: "  - nested"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.content))
		})
	}
}

func TestRender_MixedDocument(t *testing.T) {
	content := strings.Join([]string{
		"## Introduction",
		"",
		"Some **bold** text.",
		"",
		"**Key advantages:**",
		"- Stateless",
		"- Scalable",
		"1. one",
		"2. two",
		"```js",
		"const x = 1;",
		"```",
		"Closing line",
	}, "\n")

	blocks := Render(content)
	require.Len(t, blocks, 7)

	kinds := make([]Kind, len(blocks))
	for i, b := range blocks {
		kinds[i] = b.Kind()
	}
	assert.Equal(t, []Kind{
		KindHeading,
		KindParagraph,
		KindBoldLine,
		KindBulletList,
		KindNumberedList,
		KindCode,
		KindParagraph,
	}, kinds)

	code, ok := blocks[5].(CodeBlock)
	require.True(t, ok)
	assert.Equal(t, "const x = 1;", code.Code())
}

func TestRender_Deterministic(t *testing.T) {
	content := "## A\n- x\n- y\n```go\nfmt.Println()\n```\npara *em*"
	first := Render(content)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Render(content))
	}
}

func TestCodeBlock_Code(t *testing.T) {
	b := CodeBlock{Lines: []string{"a", "", "b"}}
	assert.Equal(t, "a\n\nb", b.Code())
	assert.Equal(t, "", CodeBlock{}.Code())
}

func TestHasUnterminatedFence(t *testing.T) {
	assert.False(t, HasUnterminatedFence("no code"))
	assert.False(t, HasUnterminatedFence("```\nx\n```"))
	assert.True(t, HasUnterminatedFence("```\nx"))
	assert.True(t, HasUnterminatedFence("```\nx\n```\n```go"))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "code", KindCode.String())
	assert.Equal(t, "paragraph", KindParagraph.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func FuzzRender(f *testing.F) {
	f.Add("## Title")
	f.Add("- a\n- b")
	f.Add("1. x\n2. y")
	f.Add("```go\nunterminated")
	f.Add("**a*b**c*")
	f.Add("**")
	f.Add("\n\n\n")

	f.Fuzz(func(t *testing.T, content string) {
		blocks := Render(content)
		lines := strings.Split(content, "\n")
		if len(blocks) > len(lines) {
			t.Fatalf("got %d blocks from %d lines", len(blocks), len(lines))
		}
		for _, b := range blocks {
			switch v := b.(type) {
			case Paragraph:
				_ = ParagraphHTML(v.Text)
			case BulletList:
				for _, item := range v.Items {
					_ = ListItemHTML(item)
				}
			case NumberedList:
				for _, item := range v.Items {
					_ = ListItemHTML(item)
				}
			}
		}
	})
}
