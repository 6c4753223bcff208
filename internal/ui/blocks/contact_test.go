package blocks

import (
	"bytes"
	"context"
	"testing"

	"github.com/Abhinay9346/portfolio/internal/ctxkeys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactForm_Empty(t *testing.T) {
	ctx := ctxkeys.WithCSRFToken(context.Background(), "tok123")

	var buf bytes.Buffer
	require.NoError(t, ContactForm(ContactFormState{}).Render(ctx, &buf))
	out := buf.String()

	assert.Contains(t, out, `id="contact-form"`)
	assert.Contains(t, out, `name="csrf_token" value="tok123"`)
	assert.NotContains(t, out, `role="alert"`)
	assert.NotContains(t, out, `role="status"`)
}

func TestContactForm_Error(t *testing.T) {
	out := render(t, ContactForm(ContactFormState{
		Name:    `Ann "A"`,
		Email:   "bad",
		Message: "<hello>",
		Field:   "email",
		Error:   "invalid email format",
	}))

	assert.Contains(t, out, `role="alert"`)
	assert.Contains(t, out, "invalid email format")
	assert.Contains(t, out, `value="Ann &#34;A&#34;"`)
	assert.Contains(t, out, "&lt;hello&gt;</textarea>")
	assert.Contains(t, out, `type="email" required placeholder="your@email.com" value="bad"`)
	assert.Contains(t, out, `aria-invalid="true"`)
}

func TestContactForm_Success(t *testing.T) {
	out := render(t, ContactForm(ContactFormState{Success: true}))

	assert.Contains(t, out, `role="status"`)
	assert.Contains(t, out, "Your message has been sent.")
}
