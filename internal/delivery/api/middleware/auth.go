package middleware

import (
	"slices"
	"strings"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for access token authentication and authorization.
type AuthMiddleware struct {
	tokenService service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenService service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate validates the bearer token and stores the subject on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WithDetails("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrTokenInvalid.WithDetails("authorization header must be a bearer token")
		}

		claims, err := m.tokenService.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			return err
		}

		subjectID, err := claims.SubjectID()
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		deliverycontext.SetActor(c, subjectID, claims.Role)

		return next(c)
	}
}

// RequireRole only lets subjects holding one of the roles through.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := deliverycontext.GetActorRole(c)
			if !ok || !slices.Contains(roles, role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// RequireOperator admits admins and superadmins.
func (m *AuthMiddleware) RequireOperator(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin)(next)
}
