package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testPlaceholder = "https://ui-avatars.com/api/"

func TestResolveDisplayIdentity(t *testing.T) {
	pic := "https://cdn.example.com/profile_pics/u1_x"

	tests := []struct {
		name       string
		user       *User
		identity   *Identity
		wantName   string
		wantAvatar string
	}{
		{
			name:       "user document wins",
			user:       &User{FirstName: "Ada", LastName: "Lovelace", ProfilePicURL: &pic},
			identity:   &Identity{FirstName: "Other", LastName: "Name", Email: "ada@example.com"},
			wantName:   "Ada Lovelace",
			wantAvatar: pic,
		},
		{
			name:       "identity name when document has none",
			user:       &User{},
			identity:   &Identity{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"},
			wantName:   "Grace Hopper",
			wantAvatar: testPlaceholder + "?background=random&name=Grace+Hopper",
		},
		{
			name:       "email when no names",
			identity:   &Identity{Email: "linus@example.com"},
			wantName:   "linus@example.com",
			wantAvatar: testPlaceholder + "?background=random&name=linus%40example.com",
		},
		{
			name:       "anonymous",
			wantName:   AnonymousName,
			wantAvatar: testPlaceholder + "?background=random&name=Anonymous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, avatar := ResolveDisplayIdentity(tt.user, tt.identity, testPlaceholder)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantAvatar, avatar)
		})
	}
}

func TestParseSkills_RoundTrip(t *testing.T) {
	skills := ParseSkills("a, b ,c")
	assert.Equal(t, []string{"a", "b", "c"}, skills)
	assert.Equal(t, "a, b, c", FormatSkills(skills))

	assert.Empty(t, ParseSkills(" , ,"))
	assert.Equal(t, []string{"go"}, ParseSkills("go,"))
}

func TestTruncateBio(t *testing.T) {
	short := strings.Repeat("x", BioPreviewLength)
	assert.Equal(t, short, TruncateBio(short))

	long := strings.Repeat("y", BioPreviewLength+1)
	got := TruncateBio(long)
	assert.Equal(t, strings.Repeat("y", BioPreviewLength)+"...", got)

	multibyte := strings.Repeat("é", BioPreviewLength+5)
	assert.Equal(t, strings.Repeat("é", BioPreviewLength)+"...", TruncateBio(multibyte))
}

func TestOrMissing(t *testing.T) {
	assert.Equal(t, MissingValue, OrMissing("  "))
	assert.Equal(t, "Brewer", OrMissing("Brewer"))
}

func TestSplitDisplayName(t *testing.T) {
	first, last := SplitDisplayName("Mary Ann Evans")
	assert.Equal(t, "Mary", first)
	assert.Equal(t, "Ann Evans", last)

	first, last = SplitDisplayName("Cher")
	assert.Equal(t, "Cher", first)
	assert.Empty(t, last)
}
