package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr string
	}{
		{email: "visitor@example.com"},
		{email: "", wantErr: "email address is required"},
		{email: " visitor@example.com "},
		{email: "not-an-email", wantErr: "invalid email address format"},
		{email: "Ada <ada@example.com>", wantErr: "invalid email address format"},
		{email: strings.Repeat("a", 250) + "@x.io", wantErr: "email address is too long (max 254 characters)"},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Ada"))
	assert.EqualError(t, ValidateName("   "), "name is required")
	assert.NoError(t, ValidateName(strings.Repeat("é", 100)))
	assert.EqualError(t, ValidateName(strings.Repeat("n", 101)), "name is too long (max 100 characters)")
	assert.EqualError(t, ValidateName("Ada\r\nBcc: x@y.z"), "name contains invalid characters")
}

func TestValidateMessage(t *testing.T) {
	assert.NoError(t, ValidateMessage("Hello there"))
	assert.EqualError(t, ValidateMessage("\n\t "), "message is required")
	assert.NoError(t, ValidateMessage(strings.Repeat("é", 5000)))
	assert.EqualError(t, ValidateMessage(strings.Repeat("m", 5001)), "message is too long (max 5000 characters)")
}
