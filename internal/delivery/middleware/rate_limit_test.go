package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice/config"
	domainerrors "backoffice/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRateLimiter(burst int) *RateLimiter {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{RequestsPerSecond: 1, Burst: burst}}
	rl := NewRateLimiter(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	frozen := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }

	return rl
}

func serveFrom(t *testing.T, handler echo.HandlerFunc, remoteAddr string) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = remoteAddr
	c := e.NewContext(req, httptest.NewRecorder())

	return handler(c)
}

func TestRateLimiter_RejectsAfterBurst(t *testing.T) {
	rl := newTestRateLimiter(2)
	handler := rl.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	require.NoError(t, serveFrom(t, handler, "10.0.0.1:1234"))
	require.NoError(t, serveFrom(t, handler, "10.0.0.1:1234"))

	err := serveFrom(t, handler, "10.0.0.1:1234")
	assert.ErrorIs(t, err, domainerrors.ErrRateLimited)

	// Other clients keep their own budget.
	assert.NoError(t, serveFrom(t, handler, "10.0.0.2:1234"))
}

func TestRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, defaultBurst, rl.burst)
	assert.InDelta(t, defaultRequestsPerSecond, float64(rl.rate), 1e-9)
}
