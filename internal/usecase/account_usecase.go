// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"beerhaus/internal/domain/entity"
)

// AccountUsecase defines signup and login.
type AccountUsecase interface {
	// SignUp creates the identity and the initial user document. It does not log the user in.
	SignUp(ctx context.Context, input *SignUpInput) (*entity.User, error)
	// Login resolves an account by email.
	Login(ctx context.Context, email string) (*entity.Identity, error)
	// LoginWithIDToken resolves an account from a client-issued ID token.
	LoginWithIDToken(ctx context.Context, idToken string) (*entity.Identity, error)
}

// --- Input DTOs ---

// SignUpInput defines the data of a registration. Only email and password are
// required; the profile fields seed the initial user document.
type SignUpInput struct {
	Email     string         `json:"email" validate:"required,email"`
	Password  string         `json:"password" validate:"required,min=6"`
	FirstName string         `json:"first_name" validate:"omitempty,max=100"`
	LastName  string         `json:"last_name" validate:"omitempty,max=100"`
	Company   string         `json:"company" validate:"omitempty,max=200"`
	Position  string         `json:"position" validate:"omitempty,max=200"`
	Phone     string         `json:"phone" validate:"omitempty,max=50"`
	Bio       string         `json:"bio" validate:"omitempty,max=5000"`
	Skills    string         `json:"skills"` // comma separated
	Address   entity.Address `json:"address"`
	Picture   *PictureUpload `json:"-"`
}

// PictureUpload is an image received from the client.
type PictureUpload struct {
	Data        []byte
	ContentType string
}
