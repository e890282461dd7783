package entity

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	// AnonymousName is used when no name or email can be resolved.
	AnonymousName = "Anonymous"
	// MissingValue is shown in place of empty optional fields.
	MissingValue = "—"
	// BioPreviewLength is the number of characters kept in directory bios.
	BioPreviewLength = 200

	skillSeparator = ", "
)

// ResolveDisplayIdentity picks the name and avatar to show for an author.
//
// The name falls back from the stored user document to the identity provider's
// first/last name, then its email, then AnonymousName. The avatar is the stored
// picture URL or a placeholder generated from the resolved name.
func ResolveDisplayIdentity(user *User, identity *Identity, placeholderBaseURL string) (name, avatar string) {
	switch {
	case user != nil && user.FullName() != "":
		name = user.FullName()
	case identity != nil && identity.FullName() != "":
		name = identity.FullName()
	case identity != nil && identity.Email != "":
		name = identity.Email
	default:
		name = AnonymousName
	}

	if user != nil && user.PictureURL() != "" {
		return name, user.PictureURL()
	}

	return name, PlaceholderAvatarURL(placeholderBaseURL, name)
}

// PlaceholderAvatarURL builds a generated-avatar URL keyed by name.
func PlaceholderAvatarURL(baseURL, name string) string {
	query := url.Values{}
	query.Set("name", name)
	query.Set("background", "random")

	return baseURL + "?" + query.Encode()
}

// ParseSkills splits comma-separated input into trimmed, non-empty skills.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if skill := strings.TrimSpace(part); skill != "" {
			skills = append(skills, skill)
		}
	}

	return skills
}

// FormatSkills joins skills for display.
func FormatSkills(skills []string) string {
	return strings.Join(skills, skillSeparator)
}

// TruncateBio shortens bio to BioPreviewLength characters and appends "..."
// when anything was cut.
func TruncateBio(bio string) string {
	if utf8.RuneCountInString(bio) <= BioPreviewLength {
		return bio
	}

	return string([]rune(bio)[:BioPreviewLength]) + "..."
}

// OrMissing returns s, or MissingValue when s is blank.
func OrMissing(s string) string {
	if strings.TrimSpace(s) == "" {
		return MissingValue
	}

	return s
}
