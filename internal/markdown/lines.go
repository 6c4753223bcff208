package markdown

import (
	"regexp"
	"strings"
	"unicode"
)

const fence = "```"

// numberedPrefix and isSpace agree on what counts as whitespace: Unicode
// spaces and the BOM, but not U+0085.
var numberedPrefix = regexp.MustCompile(`^\d+\.[\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}]`)

// rule classifies the line at the cursor. consume returns the block to emit
// (nil for none) and the index of the next unread line, which is always
// greater than i.
type rule struct {
	name    string
	match   func(line string) bool
	consume func(lines []string, i int) (Block, int)
}

// rules are evaluated top to bottom, first match wins.
var rules = []rule{
	{name: "fence", match: isFence, consume: consumeFence},
	{name: "heading", match: isHeading, consume: consumeHeading},
	{name: "bold", match: isBoldLine, consume: consumeBoldLine},
	{name: "bullets", match: isBulletItem, consume: consumeBulletList},
	{name: "numbered", match: isNumberedItem, consume: consumeNumberedList},
	{name: "blank", match: isBlank, consume: consumeBlank},
	{name: "paragraph", match: func(string) bool { return true }, consume: consumeParagraph},
}

// Render converts post content into blocks in source order. Lines are split
// on "\n" only. Render accepts any input; lines it does not recognize become
// paragraphs.
func Render(content string) []Block {
	lines := strings.Split(content, "\n")
	blocks := []Block{}

	i := 0
	for i < len(lines) {
		for _, r := range rules {
			if !r.match(lines[i]) {
				continue
			}
			var b Block
			b, i = r.consume(lines, i)
			if b != nil {
				blocks = append(blocks, b)
			}
			break
		}
	}

	return blocks
}

// HasUnterminatedFence reports whether content opens a code fence that is
// never closed. Render still succeeds on such content; the rest of the
// document becomes code.
func HasUnterminatedFence(content string) bool {
	open := false
	for _, line := range strings.Split(content, "\n") {
		if isFence(line) {
			open = !open
		}
	}
	return open
}

func isFence(line string) bool {
	return strings.HasPrefix(line, fence)
}

func isHeading(line string) bool {
	return strings.HasPrefix(line, "## ")
}

func isBoldLine(line string) bool {
	return len(line) >= 4 && strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**")
}

func isBulletItem(line string) bool {
	return strings.HasPrefix(line, "- ")
}

func isNumberedItem(line string) bool {
	return numberedPrefix.MatchString(line)
}

func isBlank(line string) bool {
	return strings.TrimFunc(line, isSpace) == ""
}

func isSpace(r rune) bool {
	return r == '\uFEFF' || (unicode.IsSpace(r) && r != '\u0085')
}

func consumeFence(lines []string, i int) (Block, int) {
	lang := strings.TrimSpace(lines[i][len(fence):])
	i++

	code := []string{}
	for i < len(lines) && !isFence(lines[i]) {
		code = append(code, lines[i])
		i++
	}

	// Step past the closing fence. Without one this lands past the end.
	return CodeBlock{Language: lang, Lines: code}, i + 1
}

func consumeHeading(lines []string, i int) (Block, int) {
	return Heading{Text: lines[i][len("## "):]}, i + 1
}

func consumeBoldLine(lines []string, i int) (Block, int) {
	line := lines[i]
	return BoldLine{Text: line[2 : len(line)-2]}, i + 1
}

func consumeBulletList(lines []string, i int) (Block, int) {
	items := []string{}
	for i < len(lines) && isBulletItem(lines[i]) {
		items = append(items, lines[i][len("- "):])
		i++
	}
	return BulletList{Items: items}, i
}

func consumeNumberedList(lines []string, i int) (Block, int) {
	items := []string{}
	for i < len(lines) {
		loc := numberedPrefix.FindStringIndex(lines[i])
		if loc == nil {
			break
		}
		items = append(items, lines[i][loc[1]:])
		i++
	}
	return NumberedList{Items: items}, i
}

func consumeBlank(_ []string, i int) (Block, int) {
	return nil, i + 1
}

func consumeParagraph(lines []string, i int) (Block, int) {
	return Paragraph{Text: lines[i]}, i + 1
}
