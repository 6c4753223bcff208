package blocks

import (
	"bytes"
	"context"
	"testing"

	"github.com/Abhinay9346/portfolio/internal/ctxkeys"
	"github.com/Abhinay9346/portfolio/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavbar_Links(t *testing.T) {
	links := []model.NavLink{
		{Label: "About", Href: "#about"},
		{Label: "Blog", Href: "/blog"},
	}

	tests := []struct {
		name  string
		path  string
		about string
	}{
		{name: "home keeps anchors", path: "/", about: `href="#about"`},
		{name: "other pages link back home", path: "/blog", about: `href="/#about"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := ctxkeys.WithURLPath(context.Background(), tt.path)
			var buf bytes.Buffer
			require.NoError(t, Navbar("NA", links).Render(ctx, &buf))

			out := buf.String()
			assert.Contains(t, out, tt.about)
			assert.Contains(t, out, `href="/blog"`)
			assert.Contains(t, out, `NA<span class="text-primary">.</span>`)
		})
	}
}
