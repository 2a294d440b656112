package handler

import (
	"net/http"

	"backoffice/internal/delivery/api/response"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthHandler holds dependencies for admin authentication handlers
type AuthHandler struct {
	authUC usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{authUC: params.AuthUC}
}

// Register creates an admin account and returns its first session
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterAdminInput
	if err := c.Bind(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.authUC.Register(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session)
}

// Login authenticates an admin
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.authUC.Login(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// Me returns the signed-in admin
func (h *AuthHandler) Me(c echo.Context) error {
	adminID, err := actorID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	admin, err := h.authUC.Me(c.Request().Context(), adminID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, admin)
}

// Logout is a client-side token discard; the server keeps no session state.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
