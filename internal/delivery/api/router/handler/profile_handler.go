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

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ProfileHandler serves the logged-in member's own profile.
type ProfileHandler struct {
	profileUC          usecase.ProfileUsecase
	maxPictureBytes    int64
	placeholderBaseURL string
	logger             *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC:          params.ProfileUC,
		maxPictureBytes:    params.Config.Profile.MaxPictureBytes,
		placeholderBaseURL: params.Config.Avatar.PlaceholderBaseURL,
		logger:             params.Logger,
	}
}

// GetProfile returns the profile with display defaults applied.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Please log in first")
	}

	result, err := h.profileUC.GetProfile(c.Request().Context(), identity.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usecase.NewProfileView(result, identity, h.placeholderBaseURL))
}

// SaveProfile merges the submitted form fields and an optional new picture.
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Please log in first")
	}

	input := &usecase.SaveProfileInput{
		FirstName: optionalFormValue(c, "first_name"),
		LastName:  optionalFormValue(c, "last_name"),
		Company:   optionalFormValue(c, "company"),
		Position:  optionalFormValue(c, "position"),
		Phone:     optionalFormValue(c, "phone"),
		Bio:       optionalFormValue(c, "bio"),
		Skills:    optionalFormValue(c, "skills"),
		Address:   readAddress(c),
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.Describe(err))
	}

	picture, err := readPicture(c, profilePictureField, h.maxPictureBytes)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	input.Picture = picture

	user, err := h.profileUC.SaveProfile(c.Request().Context(), identity, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := &usecase.ProfileResult{Exists: true, User: user}

	return response.Success(c, http.StatusOK, usecase.NewProfileView(result, identity, h.placeholderBaseURL))
}

// readAddress returns nil unless at least one address field was submitted.
// Lines that were not submitted stay nil so the stored ones survive.
func readAddress(c echo.Context) *entity.AddressPatch {
	address := &entity.AddressPatch{
		Street:  optionalFormValue(c, "street"),
		City:    optionalFormValue(c, "city"),
		State:   optionalFormValue(c, "state"),
		ZipCode: optionalFormValue(c, "zip_code"),
		Country: optionalFormValue(c, "country"),
	}
	if address.IsEmpty() {
		return nil
	}

	return address
}
