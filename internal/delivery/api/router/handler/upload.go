package handler

import (
	"io"
	"net/http"
	"strings"

	domainerrors "beerhaus/internal/domain/errors"
	"beerhaus/internal/errors"
	"beerhaus/internal/usecase"

	"github.com/labstack/echo/v4"
)

const profilePictureField = "profile_pic"

// readPicture reads an optional image from the multipart field. It returns nil
// when the field is absent. The content type is sniffed when the client did not
// send a specific one.
func readPicture(c echo.Context, field string, maxBytes int64) (*usecase.PictureUpload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("invalid multipart form"), err.Error())
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded picture")
	}
	defer file.Close()

	// One extra byte lets the usecase detect an oversized upload.
	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded picture")
	}

	contentType := strings.ToLower(strings.TrimSpace(fileHeader.Header.Get(echo.HeaderContentType)))
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}

	return &usecase.PictureUpload{Data: data, ContentType: contentType}, nil
}

// optionalFormValue returns a pointer to the form value, or nil when the field
// was not submitted.
func optionalFormValue(c echo.Context, name string) *string {
	form, err := c.FormParams()
	if err != nil {
		return nil
	}
	values, ok := form[name]
	if !ok || len(values) == 0 {
		return nil
	}
	value := values[0]

	return &value
}
