package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentSanitizer_Sanitize(t *testing.T) {
	sanitizer := NewContentSanitizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain text", input: "Tap takeover on Friday", want: "Tap takeover on Friday"},
		{name: "script removed", input: "Hi<script>alert(1)</script>", want: "Hi"},
		{name: "tags stripped", input: "<b>Bold</b> <a href=\"javascript:x\">link</a>", want: "Bold link"},
		{name: "ampersand kept", input: "Fish & chips", want: "Fish & chips"},
		{name: "whitespace only", input: "  <br>  ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizer.Sanitize(tt.input))
		})
	}
}
