package handler

import (
	"log/slog"
	"net/http"

	"beerhaus/internal/delivery/api/response"
	"beerhaus/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MemberHandlerParams holds dependencies for MemberHandler, injected by Fx.
type MemberHandlerParams struct {
	fx.In

	MemberUC usecase.MemberUsecase
	Logger   *slog.Logger
}

// MemberHandler serves the member directory
type MemberHandler struct {
	memberUC usecase.MemberUsecase
	logger   *slog.Logger
}

// NewMemberHandler is the constructor for MemberHandler
func NewMemberHandler(params MemberHandlerParams) *MemberHandler {
	return &MemberHandler{
		memberUC: params.MemberUC,
		logger:   params.Logger,
	}
}

// ListMembers returns every member card.
func (h *MemberHandler) ListMembers(c echo.Context) error {
	members, err := h.memberUC.ListMembers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, members)
}

// ContactQRCode returns a PNG QR code of the member's contact card.
func (h *MemberHandler) ContactQRCode(c echo.Context) error {
	memberID := c.Param("id")
	if memberID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Member ID is required")
	}

	png, err := h.memberUC.ContactQRCode(c.Request().Context(), memberID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
