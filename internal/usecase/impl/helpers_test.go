package impl

import (
	"io"
	"log/slog"
	"time"

	"gatekeeper/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			Secret:        "test_secret",
			SessionTTL:    time.Hour,
			ValidationTTL: 24 * time.Hour,
			BcryptCost:    10,
		},
	}
	cfg.Frontend.BaseURL = "https://app.example.com"

	return cfg
}
