package handler

import (
	"net/http"

	"backoffice/internal/delivery/api/response"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SettingsHandler lets the signed-in admin maintain their account
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(settingsUC usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{settingsUC: settingsUC}
}

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	adminID, err := actorID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	admin, err := h.settingsUC.GetSettings(c.Request().Context(), adminID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, admin)
}

func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	adminID, err := actorID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateSettingsInput
	if err := c.Bind(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	admin, err := h.settingsUC.UpdateSettings(c.Request().Context(), adminID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, admin)
}

func (h *SettingsHandler) ChangePassword(c echo.Context) error {
	adminID, err := actorID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.settingsUC.ChangePassword(c.Request().Context(), adminID, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Password updated successfully")
}
