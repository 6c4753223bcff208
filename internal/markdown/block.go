package markdown

import "strings"

// Kind identifies the variant of a Block.
type Kind int

const (
	KindCode Kind = iota
	KindHeading
	KindBoldLine
	KindBulletList
	KindNumberedList
	KindParagraph
)

func (k Kind) String() string {
	switch k {
	case KindCode:
		return "code"
	case KindHeading:
		return "heading"
	case KindBoldLine:
		return "bold"
	case KindBulletList:
		return "bullets"
	case KindNumberedList:
		return "numbered"
	case KindParagraph:
		return "paragraph"
	}
	return "unknown"
}

// Block is one structural unit of a rendered post.
type Block interface {
	Kind() Kind
}

// CodeBlock holds the verbatim lines of a fenced region.
// An empty Language means the fence carried no language tag.
type CodeBlock struct {
	Language string
	Lines    []string
}

func (CodeBlock) Kind() Kind { return KindCode }

// Code returns the block content as a single string.
func (b CodeBlock) Code() string {
	return strings.Join(b.Lines, "\n")
}

// Heading is a "## " line. Text keeps any inline markers.
type Heading struct {
	Text string
}

func (Heading) Kind() Kind { return KindHeading }

// BoldLine is a line that is entirely one bold span, markers stripped.
type BoldLine struct {
	Text string
}

func (BoldLine) Kind() Kind { return KindBoldLine }

// BulletList is a run of consecutive "- " lines, prefixes stripped.
type BulletList struct {
	Items []string
}

func (BulletList) Kind() Kind { return KindBulletList }

// NumberedList items have their source numbers removed.
// They are displayed renumbered from 1.
type NumberedList struct {
	Items []string
}

func (NumberedList) Kind() Kind { return KindNumberedList }

// Paragraph holds exactly one source line of raw text.
type Paragraph struct {
	Text string
}

func (Paragraph) Kind() Kind { return KindParagraph }
