package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_Navigate(t *testing.T) {
	user := &Identity{UID: "uid-1", Email: "ada@example.com"}

	tests := []struct {
		name   string
		user   *Identity
		target Page
		want   Page
	}{
		{name: "authenticated to members", user: user, target: PageMembers, want: PageMembers},
		{name: "authenticated to profile", user: user, target: PageProfile, want: PageProfile},
		{name: "authenticated to login falls back home", user: user, target: PageLogin, want: PageHome},
		{name: "authenticated to unknown falls back home", user: user, target: Page("settings"), want: PageHome},
		{name: "anonymous to signup", target: PageSignUp, want: PageSignUp},
		{name: "anonymous to members falls back to login", target: PageMembers, want: PageLogin},
		{name: "anonymous to unknown falls back to login", target: Page(""), want: PageLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &Session{User: tt.user}
			session.Navigate(tt.target)
			assert.Equal(t, tt.want, session.Page)
		})
	}
}

func TestSession_LoginLogout(t *testing.T) {
	session := NewSession()
	assert.Equal(t, PageLogin, session.Page)
	assert.False(t, session.IsAuthenticated())

	session.Login(&Identity{UID: "uid-1"})
	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, PageHome, session.Page)

	session.Logout()
	assert.Nil(t, session.User)
	assert.Equal(t, PageLogin, session.Page)
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, PageAnnouncements, ParsePage(" Announcements "))
	assert.False(t, ParsePage("nope").IsValid())
}
