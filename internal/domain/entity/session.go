package entity

import "strings"

// Page identifies the view a session is currently on.
type Page string

const (
	PageHome          Page = "home"
	PageAnnouncements Page = "announcements"
	PageProfile       Page = "profile"
	PageMembers       Page = "members"
	PageLogin         Page = "login"
	PageSignUp        Page = "signup"
)

// String returns the string representation of the Page.
func (p Page) String() string {
	return string(p)
}

// IsValid checks if the Page is a known value.
func (p Page) IsValid() bool {
	switch p {
	case PageHome, PageAnnouncements, PageProfile, PageMembers, PageLogin, PageSignUp:
		return true
	default:
		return false
	}
}

// RequiresAuth reports whether the page is only reachable when logged in.
func (p Page) RequiresAuth() bool {
	switch p {
	case PageHome, PageAnnouncements, PageProfile, PageMembers:
		return true
	default:
		return false
	}
}

// ParsePage converts user input into a Page. Unknown values are returned as-is
// and resolved by Session.Normalize.
func ParsePage(s string) Page {
	return Page(strings.ToLower(strings.TrimSpace(s)))
}

// Session is the per-request navigation state.
// User is nil for anonymous visitors.
type Session struct {
	Page Page
	User *Identity
}

// NewSession returns an anonymous session on the login page.
func NewSession() *Session {
	return &Session{Page: PageLogin}
}

// IsAuthenticated reports whether a user is logged in.
func (s *Session) IsAuthenticated() bool {
	return s.User != nil
}

// Navigate moves to target, falling back when target is unknown or not
// allowed for the current auth state.
func (s *Session) Navigate(target Page) {
	s.Page = target
	s.Normalize()
}

// Login marks the session as authenticated and shows the home page.
func (s *Session) Login(user *Identity) {
	s.User = user
	s.Page = PageHome
}

// Logout clears the user and shows the login page.
func (s *Session) Logout() {
	s.User = nil
	s.Page = PageLogin
}

// Normalize forces Page into the set allowed for the current auth state:
// Home when authenticated, Login otherwise.
func (s *Session) Normalize() {
	if s.IsAuthenticated() {
		if !s.Page.RequiresAuth() {
			s.Page = PageHome
		}

		return
	}

	if s.Page != PageLogin && s.Page != PageSignUp {
		s.Page = PageLogin
	}
}
