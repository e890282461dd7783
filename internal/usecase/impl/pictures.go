// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"beerhaus/config"
	"beerhaus/internal/domain/constants"
	domainerrors "beerhaus/internal/domain/errors"
	"beerhaus/internal/domain/service"
	"beerhaus/internal/errors"
	"beerhaus/internal/usecase"
	"beerhaus/internal/util"

	"github.com/google/uuid"
)

//nolint:gochecknoglobals
var allowedPictureTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// pictureStore uploads profile pictures and removes superseded ones.
type pictureStore struct {
	store    service.ObjectStore
	metrics  service.MetricsRecorder
	ttl      time.Duration
	maxBytes int64
}

func newPictureStore(store service.ObjectStore, metrics service.MetricsRecorder, cfg *config.Config) *pictureStore {
	return &pictureStore{
		store:    store,
		metrics:  metrics,
		ttl:      cfg.Storage.SignedURLTTL,
		maxBytes: cfg.Profile.MaxPictureBytes,
	}
}

// validate rejects unsupported or oversized uploads before anything is written.
func (p *pictureStore) validate(upload *usecase.PictureUpload) error {
	if upload == nil {
		return nil
	}
	if len(upload.Data) == 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("picture is empty"), "empty picture")
	}
	if !allowedPictureTypes[strings.ToLower(upload.ContentType)] {
		return errors.Wrapf(domainerrors.ErrUnsupportedMedia, "content type %q", upload.ContentType)
	}
	if p.maxBytes > 0 && int64(len(upload.Data)) > p.maxBytes {
		return errors.Wrapf(
			domainerrors.ErrPayloadTooLarge.WithDetails("picture must be at most "+util.FormatBytes(p.maxBytes)),
			"%d bytes", len(upload.Data),
		)
	}

	return nil
}

// upload stores the picture under a fresh key and returns the key and its signed URL.
func (p *pictureStore) upload(ctx context.Context, uid string, upload *usecase.PictureUpload, logger *slog.Logger) (key, signedURL string, err error) {
	key = fmt.Sprintf("%s%s_%s", constants.ProfilePicturePrefix, uid, uuid.NewString())

	if err := p.store.Upload(ctx, key, upload.Data, upload.ContentType); err != nil {
		return "", "", errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	signedURL, err = p.store.SignedURL(ctx, key, p.ttl)
	if err != nil {
		p.remove(ctx, key, "orphan_picture", logger)

		return "", "", errors.Wrap(err, "failed to sign picture URL")
	}

	return key, signedURL, nil
}

// removeSuperseded deletes the object behind a previous picture URL. URLs that
// do not point at a profile picture in this store are ignored.
func (p *pictureStore) removeSuperseded(ctx context.Context, previousURL, currentKey string, logger *slog.Logger) {
	if previousURL == "" {
		return
	}

	key, ok := p.store.KeyFromURL(previousURL)
	if !ok || key == currentKey || !strings.HasPrefix(key, constants.ProfilePicturePrefix) {
		return
	}

	exists, err := p.store.Exists(ctx, key)
	if err != nil {
		logger.Warn("Failed to check previous profile picture", slog.String("key", key), slog.Any("error", err))
		p.metrics.RecordCleanupFailure("old_picture")

		return
	}
	if !exists {
		return
	}

	p.remove(ctx, key, "old_picture", logger)
}

// remove deletes key, logging failures instead of returning them.
func (p *pictureStore) remove(ctx context.Context, key, operation string, logger *slog.Logger) {
	err := errors.Ignore(p.store.Delete(ctx, key), service.ErrObjectNotFound)
	if err == nil {
		return
	}

	logger.Warn("Failed to delete profile picture", slog.String("key", key), slog.String("operation", operation), slog.Any("error", err))
	p.metrics.RecordCleanupFailure(operation)
}
