package main

import (
	"context"
	"log/slog"
	"os"

	"beerhaus/config"
	"beerhaus/internal/delivery"
	"beerhaus/internal/delivery/api"
	"beerhaus/internal/delivery/api/middleware"
	"beerhaus/internal/delivery/api/router/handler"
	"beerhaus/internal/domain/service"
	"beerhaus/internal/infra/auth"
	"beerhaus/internal/infra/cache"
	"beerhaus/internal/infra/firebaseapp"
	logs "beerhaus/internal/infra/log"
	"beerhaus/internal/infra/metrics"
	"beerhaus/internal/infra/persistence/firestoredb"
	"beerhaus/internal/infra/pubsub"
	"beerhaus/internal/infra/qrcode"
	"beerhaus/internal/infra/security"
	"beerhaus/internal/infra/storage"
	"beerhaus/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		firebaseapp.Module,
		storage.Module,
		pubsub.Module,
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestoredb.NewUserRepository,
			firestoredb.NewAnnouncementRepository,
		),
		// Profile reads go through the process-local cache
		fx.Decorate(cache.DecorateUserRepository),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewFirebaseIdentityProvider,
			auth.NewSessionTokenService,
			security.NewContentSanitizer,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewProfileService,
			impl.NewAnnouncementService,
			impl.NewMemberService,
			impl.NewNavigationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSessionHandler,
			handler.NewProfileHandler,
			handler.NewAnnouncementHandler,
			handler.NewMemberHandler,
			handler.NewFileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
