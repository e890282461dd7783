// Package storage provides object store implementations for profile pictures.
package storage

import (
	"context"
	"log/slog"

	"beerhaus/config"
	"beerhaus/internal/domain/constants"
	"beerhaus/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the object store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App
}

// Result exposes the object store and, for file-backed stores, the reader
// that serves its signed URLs.
type Result struct {
	fx.Out

	Store  service.ObjectStore
	Reader service.SignedObjectReader
}

// NewObjectStore creates an ObjectStore based on configuration
func NewObjectStore(params Params) (Result, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	switch cfg.Provider {
	case constants.StorageProviderFirebase:
		logger.Info("Using Firebase storage bucket",
			slog.String("bucket", params.Config.Firebase.StorageBucket),
		)

		store, err := NewFirebaseStore(params.Ctx, params.App)
		if err != nil {
			return Result{}, err
		}

		return Result{Store: store}, nil

	case constants.StorageProviderBlob:
		var (
			store *BlobStore
			err   error
		)
		if cfg.BucketURL != "" {
			logger.Info("Using gocloud bucket", slog.String("bucket_url", cfg.BucketURL))
			store, err = OpenBucketStore(params.Ctx, cfg.BucketURL)
		} else {
			logger.Info("Using local file bucket",
				slog.String("dir", cfg.LocalDir),
				slog.String("base_url", cfg.LocalBaseURL),
			)
			store, err = OpenFileStore(cfg.LocalDir, cfg.LocalBaseURL, cfg.LocalSecret)
		}
		if err != nil {
			return Result{}, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing object store bucket")

				return store.Close()
			},
		})

		result := Result{Store: store}
		if store.signer != nil {
			result.Reader = store
		}

		return result, nil

	default:
		return Result{}, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewObjectStore),
)
