// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"beerhaus/config"
	"beerhaus/internal/domain/entity"
	"beerhaus/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// sessionTokenService signs navigation sessions into HS256 tokens.
type sessionTokenService struct {
	secret []byte        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
	now    func() time.Time
}

// NewSessionTokenService is the constructor for sessionTokenService.
func NewSessionTokenService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.Session == nil || cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &sessionTokenService{
		secret: []byte(cfg.Session.Secret),
		ttl:    cfg.Session.TTL,
		now:    time.Now,
	}, nil
}

// Encode signs the session. Anonymous sessions carry an empty subject.
func (s *sessionTokenService) Encode(session *entity.Session) (string, error) {
	now := s.now()
	claims := &service.SessionClaims{
		Page: session.Page.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	if session.User != nil {
		claims.Subject = session.User.UID
		claims.Email = session.User.Email
		claims.FirstName = session.User.FirstName
		claims.LastName = session.User.LastName
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Decode validates the token and restores the session, normalizing its page.
func (s *sessionTokenService) Decode(tokenString string) (*entity.Session, error) {
	claims := &service.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	session := &entity.Session{Page: entity.ParsePage(claims.Page)}
	if claims.Subject != "" {
		session.User = &entity.Identity{
			UID:       claims.Subject,
			Email:     claims.Email,
			FirstName: claims.FirstName,
			LastName:  claims.LastName,
		}
	}
	session.Normalize()

	return session, nil
}
