package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"beerhaus/config"
	deliverycontext "beerhaus/internal/delivery/context"
	"beerhaus/internal/domain/entity"
	domainerrors "beerhaus/internal/domain/errors"
	"beerhaus/internal/domain/service"
	"beerhaus/internal/errors"

	"github.com/labstack/echo/v4"
)

const contextKeySession = "session"

// SessionMiddleware restores the navigation session from its signed cookie and
// writes it back after changes.
type SessionMiddleware struct {
	tokens     service.SessionTokenService
	cookieName string
	ttl        time.Duration
	secure     bool
	logger     *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(tokens service.SessionTokenService, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		tokens:     tokens,
		cookieName: cfg.Session.CookieName,
		ttl:        cfg.Session.TTL,
		secure:     cfg.Session.Secure,
		logger:     logger,
	}
}

// Load attaches the request's session to the echo context. A missing, expired
// or tampered cookie yields a fresh anonymous session.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := entity.NewSession()

		if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
			decoded, err := m.tokens.Decode(cookie.Value)
			if err != nil {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
					Debug("Discarding invalid session cookie", slog.Any("error", err))
				m.clear(c)
			} else {
				session = decoded
			}
		}

		c.Set(contextKeySession, session)
		if session.IsAuthenticated() {
			ctx := deliverycontext.WithUserID(c.Request().Context(), session.User.UID, m.logger)
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequireUser rejects anonymous sessions. It must be used after Load.
func (m *SessionMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := GetIdentity(c); !ok {
			return errors.Wrap(domainerrors.ErrUnauthorized, c.Path())
		}

		return next(c)
	}
}

// Save encodes session into the response cookie.
func (m *SessionMiddleware) Save(c echo.Context, session *entity.Session) error {
	token, err := m.tokens.Encode(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	c.Set(contextKeySession, session)
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (m *SessionMiddleware) clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetSession returns the session loaded for this request, or a fresh one.
func GetSession(c echo.Context) *entity.Session {
	if session, ok := c.Get(contextKeySession).(*entity.Session); ok && session != nil {
		return session
	}

	return entity.NewSession()
}

// GetIdentity returns the logged-in account for this request.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	session := GetSession(c)
	if !session.IsAuthenticated() {
		return nil, false
	}

	return session.User, true
}
