package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/config"
	"backoffice/internal/delivery/api/binder"
	"backoffice/internal/delivery/api/middleware"
	"backoffice/internal/delivery/api/router/handler"
	"backoffice/internal/delivery/api/validator"
	deliverymiddleware "backoffice/internal/delivery/middleware"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	"backoffice/internal/infra/metrics"
	mockSvc "backoffice/internal/mocks/service"
	mockUC "backoffice/internal/mocks/usecase"
	"backoffice/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixtures struct {
	tokenService *mockSvc.MockTokenService
	managerUC    *mockUC.MockManagerUsecase
	areaUC       *mockUC.MockAreaUsecase
}

func newRoutedEcho(t *testing.T) (*echo.Echo, routerFixtures) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := routerFixtures{
		tokenService: mockSvc.NewMockTokenService(t),
		managerUC:    mockUC.NewMockManagerUsecase(t),
		areaUC:       mockUC.NewMockAreaUsecase(t),
	}
	authUC := mockUC.NewMockAuthUsecase(t)

	e := echo.New()
	e.Binder = binder.New()
	e.Validator = validator.New(validation.New())
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC}),
		ManagerHandler:  handler.NewManagerHandler(handler.ManagerHandlerParams{ManagerUC: f.managerUC, AuthUC: authUC, Logger: logger}),
		AreaHandler:     handler.NewAreaHandler(handler.AreaHandlerParams{AreaUC: f.areaUC}),
		OfferingHandler: handler.NewOfferingHandler(handler.OfferingHandlerParams{OfferingUC: mockUC.NewMockOfferingUsecase(t)}),
		StatsHandler:    handler.NewStatsHandler(mockUC.NewMockStatsUsecase(t)),
		SettingsHandler: handler.NewSettingsHandler(mockUC.NewMockSettingsUsecase(t)),
		AuthMiddleware:  middleware.NewAuthMiddleware(f.tokenService),
		RateLimiter:     deliverymiddleware.NewRateLimiter(&config.Config{}, logger),
		Metrics:         metrics.New(),
	}).RegisterRoutes(e)

	return e, f
}

func (f routerFixtures) expectToken(token string, id uuid.UUID, role entity.Role) {
	f.tokenService.EXPECT().Verify(token).Return(&service.Claims{
		Role:             role,
		RegisteredClaims: jwt.RegisteredClaims{Subject: id.String()},
	}, nil).Once()
}

func get(e *echo.Echo, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRouter_PublicRoutes(t *testing.T) {
	e, _ := newRoutedEcho(t)

	rec := get(e, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(e, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "backoffice_managers_codes_allocated_total")
}

func TestRouter_OperatorRoutesRequireToken(t *testing.T) {
	e, _ := newRoutedEcho(t)

	for _, target := range []string{"/managers", "/areas", "/services", "/stats/dashboard", "/settings"} {
		rec := get(e, target, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestRouter_ManagerTokenCannotAdminister(t *testing.T) {
	e, f := newRoutedEcho(t)
	f.expectToken("manager-token", uuid.New(), entity.RoleManager)

	rec := get(e, "/areas", "manager-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_OperatorListsAreas(t *testing.T) {
	e, f := newRoutedEcho(t)
	f.expectToken("admin-token", uuid.New(), entity.RoleSuperAdmin)
	f.areaUC.EXPECT().ListAreas(mock.Anything, mock.Anything).Return([]*entity.Area{}, nil).Once()

	rec := get(e, "/areas", "admin-token")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ManagerMe(t *testing.T) {
	e, f := newRoutedEcho(t)
	managerID := uuid.New()
	f.expectToken("manager-token", managerID, entity.RoleManager)
	f.managerUC.EXPECT().GetManager(mock.Anything, managerID).Return(&entity.Manager{ID: managerID, Status: entity.ManagerStatusActive}, nil).Once()

	rec := get(e, "/managers/me", "manager-token")
	require.Equal(t, http.StatusOK, rec.Code)

	f.expectToken("admin-token", uuid.New(), entity.RoleAdmin)
	rec = get(e, "/managers/me", "admin-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
