package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"beerhaus/internal/delivery/api/middleware"
	"beerhaus/internal/delivery/api/response"
	"beerhaus/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnnouncementHandlerParams holds dependencies for AnnouncementHandler, injected by Fx.
type AnnouncementHandlerParams struct {
	fx.In

	AnnouncementUC usecase.AnnouncementUsecase
	Logger         *slog.Logger
}

// AnnouncementHandler serves the announcement feed and comments.
type AnnouncementHandler struct {
	announcementUC usecase.AnnouncementUsecase
	logger         *slog.Logger
}

// NewAnnouncementHandler is the constructor for AnnouncementHandler
func NewAnnouncementHandler(params AnnouncementHandlerParams) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementUC: params.AnnouncementUC,
		logger:         params.Logger,
	}
}

// ListAnnouncements returns the newest announcements. ?limit= caps the count.
func (h *AnnouncementHandler) ListAnnouncements(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be a non-negative integer")
		}
		limit = parsed
	}

	announcements, err := h.announcementUC.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usecase.NewAnnouncementViews(announcements))
}

// CreateAnnouncement posts a new announcement as the logged-in member.
func (h *AnnouncementHandler) CreateAnnouncement(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Please log in first")
	}

	var input usecase.CreateAnnouncementInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid announcement input")
	}

	id, err := h.announcementUC.CreateAnnouncement(c.Request().Context(), &input, identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id})
}

// AddComment appends a comment to the announcement in the path.
func (h *AnnouncementHandler) AddComment(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Please log in first")
	}

	var input usecase.AddCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	comment, err := h.announcementUC.AddComment(c.Request().Context(), c.Param("id"), &input, identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, usecase.NewCommentView(comment))
}
