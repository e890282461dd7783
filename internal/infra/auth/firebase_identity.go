package auth

import (
	"context"
	"strings"

	"beerhaus/internal/domain/entity"
	"beerhaus/internal/domain/service"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// firebaseAuthClient is the subset of *auth.Client used by the identity provider.
type firebaseAuthClient interface {
	CreateUser(ctx context.Context, user *firebaseauth.UserToCreate) (*firebaseauth.UserRecord, error)
	GetUser(ctx context.Context, uid string) (*firebaseauth.UserRecord, error)
	GetUserByEmail(ctx context.Context, email string) (*firebaseauth.UserRecord, error)
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// firebaseIdentityProvider implements service.IdentityProvider on Firebase Authentication.
type firebaseIdentityProvider struct {
	client firebaseAuthClient
}

// NewFirebaseIdentityProvider wraps a Firebase auth client.
func NewFirebaseIdentityProvider(client *firebaseauth.Client) service.IdentityProvider {
	return newFirebaseIdentityProvider(client)
}

func newFirebaseIdentityProvider(client firebaseAuthClient) *firebaseIdentityProvider {
	return &firebaseIdentityProvider{client: client}
}

// CreateAccount registers email/password with the display name "first last".
func (p *firebaseIdentityProvider) CreateAccount(ctx context.Context, input service.CreateAccountInput) (string, error) {
	params := (&firebaseauth.UserToCreate{}).
		Email(input.Email).
		Password(input.Password)
	if name := strings.TrimSpace(input.DisplayName); name != "" {
		params = params.DisplayName(name)
	}

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if firebaseauth.IsEmailAlreadyExists(err) {
			return "", errors.Wrap(service.ErrIdentityExists, input.Email)
		}

		return "", errors.Wrap(err, "failed to create identity")
	}

	return record.UID, nil
}

// LookupByEmail returns the account registered with email.
func (p *firebaseIdentityProvider) LookupByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	record, err := p.client.GetUserByEmail(ctx, email)
	if err != nil {
		if firebaseauth.IsUserNotFound(err) {
			return nil, errors.Wrap(service.ErrIdentityNotFound, email)
		}

		return nil, errors.Wrap(err, "failed to look up identity by email")
	}

	return identityFromRecord(record), nil
}

// VerifyIDToken checks a client-issued ID token and loads the account it belongs to.
func (p *firebaseIdentityProvider) VerifyIDToken(ctx context.Context, idToken string) (*entity.Identity, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	record, err := p.client.GetUser(ctx, token.UID)
	if err != nil {
		if firebaseauth.IsUserNotFound(err) {
			return nil, errors.Wrap(service.ErrIdentityNotFound, token.UID)
		}

		return nil, errors.Wrap(err, "failed to load identity")
	}

	return identityFromRecord(record), nil
}

func identityFromRecord(record *firebaseauth.UserRecord) *entity.Identity {
	if record == nil || record.UserInfo == nil {
		return &entity.Identity{}
	}

	first, last := entity.SplitDisplayName(record.DisplayName)

	return &entity.Identity{
		UID:       record.UID,
		Email:     record.Email,
		FirstName: first,
		LastName:  last,
	}
}
