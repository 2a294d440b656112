package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/api/response"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ManagerHandlerParams holds dependencies for ManagerHandler, injected by Fx.
type ManagerHandlerParams struct {
	fx.In

	ManagerUC usecase.ManagerUsecase
	AuthUC    usecase.AuthUsecase
	Logger    *slog.Logger
}

// ManagerHandler holds dependencies for manager handlers
type ManagerHandler struct {
	managerUC usecase.ManagerUsecase
	authUC    usecase.AuthUsecase
	logger    *slog.Logger
}

// NewManagerHandler is the constructor for ManagerHandler
func NewManagerHandler(params ManagerHandlerParams) *ManagerHandler {
	return &ManagerHandler{
		managerUC: params.ManagerUC,
		authUC:    params.AuthUC,
		logger:    params.Logger,
	}
}

type listManagersQuery struct {
	AreaID string `query:"areaId" validate:"omitempty,uuid"`
	Status string `query:"status" validate:"omitempty,oneof=active inactive suspended"`
	Limit  int    `query:"limit" validate:"gte=0,lte=500"`
	Offset int    `query:"offset" validate:"gte=0"`
}

// CreateManager handles manager creation
func (h *ManagerHandler) CreateManager(c echo.Context) error {
	var input usecase.CreateManagerInput
	if err := c.Bind(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	manager, err := h.managerUC.CreateManager(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, manager)
}

// ListManagers handles manager listing, optionally by area and status
func (h *ManagerHandler) ListManagers(c echo.Context) error {
	var query listManagersQuery
	if err := bindQuery(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	input := usecase.ManagerListInput{
		AreaID: optionalUUID(query.AreaID),
		Limit:  query.Limit,
		Offset: query.Offset,
	}
	if query.Status != "" {
		status := entity.ManagerStatus(query.Status)
		input.Status = &status
	}

	managers, err := h.managerUC.ListManagers(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, managers)
}

// GetManager handles retrieving a single manager
func (h *ManagerHandler) GetManager(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	manager, err := h.managerUC.GetManager(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, manager)
}

// UpdateManager handles partial manager updates
func (h *ManagerHandler) UpdateManager(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateManagerInput
	if err := c.Bind(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	manager, err := h.managerUC.UpdateManager(c.Request().Context(), id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, manager)
}

// DeleteManager handles manager removal
func (h *ManagerHandler) DeleteManager(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.managerUC.DeleteManager(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Manager deleted successfully")
}

// Badge renders the manager's badge QR code as a PNG
func (h *ManagerHandler) Badge(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.managerUC.ManagerBadge(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Debug("Manager badge rendered",
		slog.String("manager_id", id.String()),
		slog.Int("bytes", len(png)),
	)

	return c.Blob(http.StatusOK, "image/png", png)
}

// VerifyBadge looks up the manager behind scanned badge data
func (h *ManagerHandler) VerifyBadge(c echo.Context) error {
	var input usecase.VerifyBadgeInput
	if err := c.Bind(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	manager, err := h.managerUC.VerifyBadge(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, manager)
}

// Login authenticates a manager and issues a manager-role token
func (h *ManagerHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.authUC.LoginManager(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// Me returns the signed-in manager's own record. A token issued before the
// manager was suspended or deactivated is refused.
func (h *ManagerHandler) Me(c echo.Context) error {
	managerID, err := actorID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	manager, err := h.managerUC.GetManager(c.Request().Context(), managerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if manager.Status != entity.ManagerStatusActive {
		return response.HandleAppError(c, domainerrors.ErrAccountDisabled)
	}

	return response.Success(c, http.StatusOK, manager)
}
