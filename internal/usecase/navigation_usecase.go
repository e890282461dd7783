package usecase

import (
	"context"

	"beerhaus/internal/domain/entity"
)

// NavigationUsecase renders the view for the page a session is on.
type NavigationUsecase interface {
	View(ctx context.Context, session *entity.Session) (*PageView, error)
}

// PageView is the data shown for one page. Only the field matching Page is set.
type PageView struct {
	Page          entity.Page         `json:"page"`
	Authenticated bool                `json:"authenticated"`
	User          *IdentityView       `json:"user,omitempty"`
	Home          *HomeView           `json:"home,omitempty"`
	Announcements []*AnnouncementView `json:"announcements,omitempty"`
	Profile       *ProfileView        `json:"profile,omitempty"`
	Members       []*MemberCard       `json:"members,omitempty"`
}

// HomeView greets the logged-in member.
type HomeView struct {
	Greeting string `json:"greeting"`
}

// IdentityView is the logged-in account as shown to clients.
type IdentityView struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// NewIdentityView returns nil for anonymous sessions.
func NewIdentityView(identity *entity.Identity) *IdentityView {
	if identity == nil {
		return nil
	}

	return &IdentityView{
		UID:       identity.UID,
		Email:     identity.Email,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
	}
}
