package impl

import (
	"io"
	"log/slog"
	"time"

	"beerhaus/config"
)

const testPlaceholderBaseURL = "https://avatars.example.com/api/"

//nolint:gochecknoglobals
var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Storage: &config.StorageConfig{
			SignedURLTTL: 365 * 24 * time.Hour,
		},
		Profile: &config.ProfileConfig{
			MaxPictureBytes: 1 << 10,
		},
		Feed: &config.FeedConfig{
			DefaultLimit: 10,
			MaxLimit:     50,
		},
		Avatar: &config.AvatarConfig{
			PlaceholderBaseURL: testPlaceholderBaseURL,
		},
	}
}

func stringPtr(s string) *string {
	return &s
}
