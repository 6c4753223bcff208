package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

const frontmatterDelim = "---"

// Parser reads the YAML frontmatter of post sources. Post bodies are not
// rendered by goldmark; they go through Render.
type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			&frontmatter.Extender{},
		),
	)

	return &Parser{
		md: md,
	}
}

// ExtractFrontmatter decodes the frontmatter block of source.
// Missing or malformed frontmatter yields an empty map.
func (p *Parser) ExtractFrontmatter(source []byte) map[string]any {
	context := parser.NewContext()
	p.md.Parser().Parse(text.NewReader(source), parser.WithContext(context))

	data := frontmatter.Get(context)
	if data == nil {
		return make(map[string]any)
	}

	var meta map[string]any
	err := data.Decode(&meta)
	if err != nil || meta == nil {
		return make(map[string]any)
	}
	return meta
}

// Body returns source with a leading "---" delimited frontmatter block
// removed. Source without frontmatter is returned unchanged.
func (p *Parser) Body(source []byte) []byte {
	lines := bytes.SplitAfter(source, []byte("\n"))
	if len(lines) == 0 || string(bytes.TrimRight(lines[0], "\r\n")) != frontmatterDelim {
		return source
	}

	offset := len(lines[0])
	for _, line := range lines[1:] {
		offset += len(line)
		if string(bytes.TrimRight(line, "\r\n")) == frontmatterDelim {
			return source[offset:]
		}
	}

	// Unclosed frontmatter: goldmark treats it as content too.
	return source
}
