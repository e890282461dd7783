package usecase

import (
	"context"
	"time"

	"beerhaus/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile returns Exists=false instead of an error when no document exists yet.
	GetProfile(ctx context.Context, userID string) (*ProfileResult, error)
	// SaveProfile merges the supplied fields into the owner's document and
	// replaces the profile picture when one is supplied.
	SaveProfile(ctx context.Context, owner *entity.Identity, input *SaveProfileInput) (*entity.User, error)
}

// ProfileResult wraps a profile lookup.
type ProfileResult struct {
	Exists bool
	User   *entity.User
}

// --- Input DTOs ---

// SaveProfileInput defines the fields of a profile save. Nil fields are left untouched.
type SaveProfileInput struct {
	FirstName *string              `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string              `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Company   *string              `json:"company,omitempty" validate:"omitempty,max=200"`
	Position  *string              `json:"position,omitempty" validate:"omitempty,max=200"`
	Phone     *string              `json:"phone,omitempty" validate:"omitempty,max=50"`
	Bio       *string              `json:"bio,omitempty" validate:"omitempty,max=5000"`
	Skills    *string              `json:"skills,omitempty"` // comma separated
	Address   *entity.AddressPatch `json:"address,omitempty"`
	Picture   *PictureUpload       `json:"-"`
}

// --- Views ---

// ProfileView is a profile ready for display. Missing optional fields hold entity.MissingValue.
type ProfileView struct {
	Exists      bool        `json:"exists"`
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Company     string      `json:"company"`
	Position    string      `json:"position"`
	Phone       string      `json:"phone"`
	Bio         string      `json:"bio"`
	Skills      []string    `json:"skills"`
	SkillsText  string      `json:"skills_text"`
	Address     AddressView `json:"address"`
	PictureURL  string      `json:"profile_pic_url"`
	Role        string      `json:"role"`
	LastUpdated *time.Time  `json:"last_updated,omitempty"`
}

// AddressView is an address ready for display.
type AddressView struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// NewProfileView projects a lookup result into display form. The identity
// supplies the email and name when no document exists yet.
func NewProfileView(result *ProfileResult, owner *entity.Identity, placeholderBaseURL string) *ProfileView {
	var user *entity.User
	if result != nil && result.Exists {
		user = result.User
	}
	if user == nil {
		user = &entity.User{}
	}

	_, avatar := entity.ResolveDisplayIdentity(user, owner, placeholderBaseURL)

	email := user.Email
	firstName, lastName := user.FirstName, user.LastName
	id := user.ID
	if owner != nil {
		if email == "" {
			email = owner.Email
		}
		if firstName == "" && lastName == "" {
			firstName, lastName = owner.FirstName, owner.LastName
		}
		if id == "" {
			id = owner.UID
		}
	}

	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}

	view := &ProfileView{
		Exists:     result != nil && result.Exists,
		ID:         id,
		Email:      entity.OrMissing(email),
		FirstName:  entity.OrMissing(firstName),
		LastName:   entity.OrMissing(lastName),
		Company:    entity.OrMissing(user.Company),
		Position:   entity.OrMissing(user.Position),
		Phone:      entity.OrMissing(user.Phone),
		Bio:        entity.OrMissing(user.Bio),
		Skills:     skills,
		SkillsText: entity.OrMissing(entity.FormatSkills(skills)),
		Address: AddressView{
			Street:  entity.OrMissing(user.Address.Street),
			City:    entity.OrMissing(user.Address.City),
			State:   entity.OrMissing(user.Address.State),
			ZipCode: entity.OrMissing(user.Address.ZipCode),
			Country: entity.OrMissing(user.Address.Country),
		},
		PictureURL: avatar,
		Role:       entity.OrMissing(user.Role.String()),
	}
	if !user.LastUpdated.IsZero() {
		lastUpdated := user.LastUpdated
		view.LastUpdated = &lastUpdated
	}

	return view
}
