package auth

import (
	"testing"
	"time"

	"beerhaus/config"
	"beerhaus/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionConfig(secret string) *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			Secret: secret,
			TTL:    time.Hour,
		},
	}
}

func TestSessionTokenService_EncodeDecode(t *testing.T) {
	svc, err := NewSessionTokenService(newTestSessionConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	session := &entity.Session{
		Page: entity.PageMembers,
		User: &entity.Identity{UID: "uid-1", Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"},
	}

	token, err := svc.Encode(session)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	decoded, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, entity.PageMembers, decoded.Page)
	require.NotNil(t, decoded.User)
	assert.Equal(t, *session.User, *decoded.User)
}

func TestSessionTokenService_AnonymousSession(t *testing.T) {
	svc, err := NewSessionTokenService(newTestSessionConfig("secret"))
	require.NoError(t, err)

	token, err := svc.Encode(&entity.Session{Page: entity.PageSignUp})
	require.NoError(t, err)

	decoded, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Nil(t, decoded.User)
	assert.Equal(t, entity.PageSignUp, decoded.Page)
}

func TestSessionTokenService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewSessionTokenService(newTestSessionConfig("secret-a"))
	require.NoError(t, err)
	verifier, err := NewSessionTokenService(newTestSessionConfig("secret-b"))
	require.NoError(t, err)

	token, err := issuer.Encode(&entity.Session{Page: entity.PageLogin})
	require.NoError(t, err)

	_, err = verifier.Decode(token)
	assert.Error(t, err)
}

func TestSessionTokenService_Expired(t *testing.T) {
	svc, err := NewSessionTokenService(newTestSessionConfig("secret"))
	require.NoError(t, err)

	impl := svc.(*sessionTokenService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := impl.Encode(&entity.Session{Page: entity.PageLogin})
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.Decode(token)
	assert.Error(t, err)
}

func TestNewSessionTokenService_RequiresSecret(t *testing.T) {
	_, err := NewSessionTokenService(newTestSessionConfig(""))
	assert.Error(t, err)
}
