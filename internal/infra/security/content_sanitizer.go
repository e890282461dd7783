// Package security sanitizes user-submitted content.
package security

import (
	"html"
	"strings"

	"beerhaus/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

// contentSanitizer strips every HTML element from announcement and comment text.
// bluemonday policies are safe for concurrent use.
type contentSanitizer struct {
	policy *bluemonday.Policy
}

// NewContentSanitizer builds a sanitizer on bluemonday's strict policy.
func NewContentSanitizer() service.ContentSanitizer {
	return &contentSanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize removes markup and trims surrounding whitespace. The strict policy
// escapes entities, which are unescaped again because clients render the
// stored value as plain text.
func (s *contentSanitizer) Sanitize(input string) string {
	if input == "" {
		return ""
	}

	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(input)))
}
