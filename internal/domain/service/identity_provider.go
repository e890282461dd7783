package service

import (
	"context"
	"errors"

	"beerhaus/internal/domain/entity"
)

// ErrIdentityNotFound is returned when the identity provider has no account for a lookup.
var ErrIdentityNotFound = errors.New("identity not found")

// ErrIdentityExists is returned when an account with the same email already exists.
var ErrIdentityExists = errors.New("identity already exists")

// CreateAccountInput holds the credentials for a new account.
type CreateAccountInput struct {
	Email       string
	Password    string
	DisplayName string
}

// IdentityProvider abstracts the managed authentication service.
type IdentityProvider interface {
	// CreateAccount registers a new account and returns its user id.
	CreateAccount(ctx context.Context, input CreateAccountInput) (string, error)

	// LookupByEmail returns the account registered with email.
	LookupByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// VerifyIDToken validates a client-issued ID token and returns its account.
	VerifyIDToken(ctx context.Context, idToken string) (*entity.Identity, error)
}
