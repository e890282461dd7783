package handler

import (
	"log/slog"
	"net/http"

	"beerhaus/internal/delivery/api/middleware"
	"beerhaus/internal/delivery/api/response"
	"beerhaus/internal/domain/entity"
	"beerhaus/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	NavigationUC      usecase.NavigationUsecase
	SessionMiddleware *middleware.SessionMiddleware
	Logger            *slog.Logger
}

// SessionHandler exposes the navigation state.
type SessionHandler struct {
	navigationUC usecase.NavigationUsecase
	sessions     *middleware.SessionMiddleware
	logger       *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		navigationUC: params.NavigationUC,
		sessions:     params.SessionMiddleware,
		logger:       params.Logger,
	}
}

// NavigateRequest represents the request body for changing pages
type NavigateRequest struct {
	Page string `json:"page" form:"page" validate:"required"`
}

func newSessionResponse(session *entity.Session) *SessionResponse {
	return &SessionResponse{
		Page:          session.Page.String(),
		Authenticated: session.IsAuthenticated(),
		User:          usecase.NewIdentityView(session.User),
	}
}

// GetSession returns the current page and user.
func (h *SessionHandler) GetSession(c echo.Context) error {
	session := middleware.GetSession(c)
	session.Normalize()

	return response.Success(c, http.StatusOK, newSessionResponse(session))
}

// Navigate moves the session to another page. Pages the session may not see
// fall back to home or login.
func (h *SessionHandler) Navigate(c echo.Context) error {
	var req NavigateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid navigation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "page is required")
	}

	session := middleware.GetSession(c)
	session.Navigate(entity.ParsePage(req.Page))
	if err := h.sessions.Save(c, session); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newSessionResponse(session))
}

// View returns the data for the session's current page.
func (h *SessionHandler) View(c echo.Context) error {
	session := middleware.GetSession(c)

	view, err := h.navigationUC.View(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.sessions.Save(c, session); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, view)
}
