package handler

import (
	"log/slog"
	"net/http"

	"beerhaus/internal/delivery/api/response"
	"beerhaus/internal/domain/service"
	"beerhaus/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FileHandlerParams holds dependencies for FileHandler, injected by Fx.
type FileHandlerParams struct {
	fx.In

	Reader service.SignedObjectReader `optional:"true"`
	Logger *slog.Logger
}

// FileHandler serves objects of the local file store through signed URLs.
type FileHandler struct {
	reader service.SignedObjectReader
	logger *slog.Logger
}

// NewFileHandler is the constructor for FileHandler
func NewFileHandler(params FileHandlerParams) *FileHandler {
	return &FileHandler{
		reader: params.Reader,
		logger: params.Logger,
	}
}

// Enabled reports whether the object store hands out URLs served here.
func (h *FileHandler) Enabled() bool {
	return h.reader != nil
}

// ServeSigned streams the object named by a valid signed URL.
func (h *FileHandler) ServeSigned(c echo.Context) error {
	if h.reader == nil {
		return response.NotFound(c, "NOT_FOUND", "Resource not found")
	}

	body, contentType, err := h.reader.OpenSigned(c.Request().Context(), c.Request().URL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSignedURL):
			return response.Forbidden(c, "INVALID_SIGNATURE", "Link is invalid or has expired")
		case errors.Is(err, service.ErrObjectNotFound):
			return response.NotFound(c, "NOT_FOUND", "Resource not found")
		default:
			return errors.Wrap(err, "failed to open signed object")
		}
	}
	defer body.Close()

	c.Response().Header().Set("Cache-Control", "private, max-age=3600")

	return c.Stream(http.StatusOK, contentType, body)
}
