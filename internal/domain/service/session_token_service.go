package service

import (
	"beerhaus/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims defines the claims carried by the session cookie.
type SessionClaims struct {
	Page      string `json:"page"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	jwt.RegisteredClaims
}

// SessionTokenService encodes navigation sessions into signed tokens.
type SessionTokenService interface {
	// Encode signs the session into a token string.
	Encode(session *entity.Session) (string, error)

	// Decode validates token and restores the session it carries.
	Decode(token string) (*entity.Session, error)
}
