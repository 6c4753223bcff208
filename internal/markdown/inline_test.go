package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParagraphHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain",
			in:   "just text",
			want: "just text",
		},
		{
			name: "bold and code",
			in:   "Some **bold** and `code`",
			want: `Some <strong class="text-foreground font-semibold">bold</strong> and ` +
				`<code class="rounded bg-muted px-1.5 py-0.5 font-mono text-xs text-foreground">code</code>`,
		},
		{
			name: "italic",
			in:   "a *secure* API",
			want: "a <em>secure</em> API",
		},
		{
			name: "non greedy",
			in:   "*a* and *b*",
			want: "<em>a</em> and <em>b</em>",
		},
		{
			name: "unbalanced marker left alone",
			in:   "2 * 3",
			want: "2 * 3",
		},
		{
			name: "overlapping markers follow pass order",
			in:   "**a*b**c*",
			want: `<strong class="text-foreground font-semibold">a<em>b</strong>c</em>`,
		},
		{
			name: "italic pass runs inside code spans",
			in:   "`a*b*c`",
			want: `<code class="rounded bg-muted px-1.5 py-0.5 font-mono text-xs text-foreground">a<em>b</em>c</code>`,
		},
		{
			name: "html is escaped",
			in:   "Array<string> & `<T>`",
			want: `Array&lt;string&gt; &amp; <code class="rounded bg-muted px-1.5 py-0.5 font-mono text-xs text-foreground">&lt;T&gt;</code>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParagraphHTML(tt.in))
		})
	}
}

func TestListItemHTML(t *testing.T) {
	assert.Equal(t,
		`<strong class="text-foreground font-semibold">Stateless</strong>: no session`,
		ListItemHTML("**Stateless**: no session"))

	assert.Equal(t,
		`use <code class="rounded bg-muted px-1.5 py-0.5 font-mono text-xs text-foreground">_id</code>`,
		ListItemHTML("use `_id`"))

	// No italics in list items.
	assert.Equal(t, "an *important* item", ListItemHTML("an *important* item"))
}
