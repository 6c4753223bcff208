package blocks

import (
	"testing"

	"github.com/Abhinay9346/portfolio/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestTag(t *testing.T) {
	assert.Equal(t,
		`<span class="rounded-full bg-primary/10 px-2.5 py-0.5 text-xs font-medium text-primary">Go</span>`,
		render(t, Tag("Go", "")))

	out := render(t, Tag("QR Code", TagHref("QR Code")))
	assert.Contains(t, out, `href="/blog/tag/QR%20Code"`)
	assert.Contains(t, out, ">QR Code</a>")
}

func TestTag_UnsafeHrefIsSanitized(t *testing.T) {
	out := render(t, Tag("x", "javascript:alert(1)"))
	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, `href="about:invalid#TemplFailedSanitizationURL"`)
}

func TestFooter_EscapesOwnerData(t *testing.T) {
	out := render(t, Footer(model.Owner{
		FirstName: "<b>Ada</b>",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Links:     []model.SocialLink{{Label: `Git"Hub`, Href: "javascript:void(0)"}},
	}))

	assert.Contains(t, out, "&lt;b&gt;Ada&lt;/b&gt; Lovelace. All rights reserved.")
	assert.Contains(t, out, `aria-label="Git&#34;Hub profile"`)
	assert.Contains(t, out, `href="mailto:ada@example.com"`)
	assert.NotContains(t, out, "javascript:")
}

func TestSectionHeading(t *testing.T) {
	out := render(t, SectionHeading("Skills", ""))
	assert.Contains(t, out, ">Skills</h2>")
	assert.NotContains(t, out, "max-w-2xl")

	out = render(t, SectionHeading("Skills", "Tools & <tech>"))
	assert.Contains(t, out, "Tools &amp; &lt;tech&gt;</p>")
}
