package impl

import (
	"io"
	"log/slog"

	"backoffice/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(codeAttempts int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			MinPasswordLength: 8,
		},
		Managers: &config.ManagersConfig{
			CodeAllocationAttempts: codeAttempts,
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
