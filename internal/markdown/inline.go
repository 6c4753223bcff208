package markdown

import (
	"html"
	"regexp"
)

const (
	strongOpen = `<strong class="text-foreground font-semibold">`
	codeOpen   = `<code class="rounded bg-muted px-1.5 py-0.5 font-mono text-xs text-foreground">`
)

var (
	strongSpan = regexp.MustCompile(`\*\*(.*?)\*\*`)
	emSpan     = regexp.MustCompile(`\*(.*?)\*`)
	codeSpan   = regexp.MustCompile("`(.*?)`")
)

// ListItemHTML escapes a list item and applies the bold and inline code
// substitutions, in that order. Italics are not applied to list items.
func ListItemHTML(item string) string {
	s := html.EscapeString(item)
	s = strongSpan.ReplaceAllString(s, strongOpen+"${1}</strong>")
	s = codeSpan.ReplaceAllString(s, codeOpen+"${1}</code>")
	return s
}

// ParagraphHTML escapes a paragraph line and applies bold, italic and
// inline code substitutions in sequence. Each pass sees the output of the
// previous one, so markers do not nest.
func ParagraphHTML(line string) string {
	s := html.EscapeString(line)
	s = strongSpan.ReplaceAllString(s, strongOpen+"${1}</strong>")
	s = emSpan.ReplaceAllString(s, "<em>${1}</em>")
	s = codeSpan.ReplaceAllString(s, codeOpen+"${1}</code>")
	return s
}
