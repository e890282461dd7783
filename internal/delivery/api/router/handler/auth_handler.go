package handler

import (
	"log/slog"
	"net/http"

	"beerhaus/config"
	"beerhaus/internal/delivery/api/middleware"
	"beerhaus/internal/delivery/api/response"
	"beerhaus/internal/delivery/api/validator"
	"beerhaus/internal/domain/entity"
	"beerhaus/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AccountUC         usecase.AccountUsecase
	SessionMiddleware *middleware.SessionMiddleware
	Config            *config.Config
	Logger            *slog.Logger
}

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	accountUC       usecase.AccountUsecase
	sessions        *middleware.SessionMiddleware
	maxPictureBytes int64
	logger          *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		accountUC:       params.AccountUC,
		sessions:        params.SessionMiddleware,
		maxPictureBytes: params.Config.Profile.MaxPictureBytes,
		logger:          params.Logger,
	}
}

// LoginRequest represents the request body for email login
type LoginRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

// TokenLoginRequest represents the request body for ID token login
type TokenLoginRequest struct {
	IDToken string `json:"id_token" form:"id_token" validate:"required"`
}

// SessionResponse is the navigation state returned to clients
type SessionResponse struct {
	Page          string                `json:"page"`
	Authenticated bool                  `json:"authenticated"`
	User          *usecase.IdentityView `json:"user,omitempty"`
}

// SignUp handles member registration. The session moves to the login page;
// signing up does not log the member in.
func (h *AuthHandler) SignUp(c echo.Context) error {
	input := &usecase.SignUpInput{
		Email:     c.FormValue("email"),
		Password:  c.FormValue("password"),
		FirstName: c.FormValue("first_name"),
		LastName:  c.FormValue("last_name"),
		Company:   c.FormValue("company"),
		Position:  c.FormValue("position"),
		Phone:     c.FormValue("phone"),
		Bio:       c.FormValue("bio"),
		Skills:    c.FormValue("skills"),
		Address: entity.Address{
			Street:  c.FormValue("street"),
			City:    c.FormValue("city"),
			State:   c.FormValue("state"),
			ZipCode: c.FormValue("zip_code"),
			Country: c.FormValue("country"),
		},
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.Describe(err))
	}

	picture, err := readPicture(c, profilePictureField, h.maxPictureBytes)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	input.Picture = picture

	user, err := h.accountUC.SignUp(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session := middleware.GetSession(c)
	session.Logout()
	if err := h.sessions.Save(c, session); err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"id":      user.ID,
		"email":   user.Email,
		"message": "Account created. Please log in.",
		"session": newSessionResponse(session),
	})
}

// Login resolves the account by email and marks the session as logged in.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.Describe(err))
	}

	identity, err := h.accountUC.Login(c.Request().Context(), req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session := middleware.GetSession(c)
	session.Login(identity)
	if err := h.sessions.Save(c, session); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newSessionResponse(session))
}

// LoginWithToken logs in with an ID token issued to a client SDK.
func (h *AuthHandler) LoginWithToken(c echo.Context) error {
	var req TokenLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.Describe(err))
	}

	identity, err := h.accountUC.LoginWithIDToken(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	session := middleware.GetSession(c)
	session.Login(identity)
	if err := h.sessions.Save(c, session); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newSessionResponse(session))
}

// Logout clears the user from the session.
func (h *AuthHandler) Logout(c echo.Context) error {
	session := middleware.GetSession(c)
	session.Logout()
	if err := h.sessions.Save(c, session); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newSessionResponse(session))
}
