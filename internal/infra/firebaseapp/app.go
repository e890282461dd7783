// Package firebaseapp initializes the Firebase Admin SDK and exposes its
// service clients to the container.
package firebaseapp

import (
	"context"
	"log/slog"

	"beerhaus/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params holds dependencies for the Firebase clients, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase app. Without a credentials path the SDK
// falls back to Application Default Credentials, which is also what the
// emulators expect.
func NewApp(params Params) (*firebase.App, error) {
	cfg := params.Config.Firebase

	appConfig := &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.Bool("explicit_credentials", cfg.CredentialsPath != ""),
	)

	return app, nil
}

// NewAuthClient returns the Firebase Authentication client
func NewAuthClient(ctx context.Context, app *firebase.App) (*firebaseauth.Client, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return client, nil
}

// NewFirestoreClient returns the Firestore client and closes it on shutdown
func NewFirestoreClient(params Params, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// Module provides the Firebase FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewApp,
		NewAuthClient,
		NewFirestoreClient,
	),
)
