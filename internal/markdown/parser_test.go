package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const postSource = `---
slug: sample
title: "Sample Post"
tags:
  - "Go"
  - "Web"
---
## Introduction

Body text.
`

func TestParser_ExtractFrontmatter(t *testing.T) {
	p := NewParser()
	meta := p.ExtractFrontmatter([]byte(postSource))

	assert.Equal(t, "sample", meta["slug"])
	assert.Equal(t, "Sample Post", meta["title"])
	assert.Equal(t, []any{"Go", "Web"}, meta["tags"])
}

func TestParser_ExtractFrontmatter_Missing(t *testing.T) {
	p := NewParser()
	assert.Empty(t, p.ExtractFrontmatter([]byte("## Just content")))
}

func TestParser_Body(t *testing.T) {
	p := NewParser()

	assert.Equal(t, "## Introduction\n\nBody text.\n", string(p.Body([]byte(postSource))))
	assert.Equal(t, "no frontmatter", string(p.Body([]byte("no frontmatter"))))

	unclosed := "---\ntitle: x\nbody"
	assert.Equal(t, unclosed, string(p.Body([]byte(unclosed))))
}
