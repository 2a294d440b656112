package handler

import (
	"net/http"

	"backoffice/internal/delivery/api/response"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AreaHandlerParams holds dependencies for AreaHandler, injected by Fx.
type AreaHandlerParams struct {
	fx.In

	AreaUC usecase.AreaUsecase
}

// AreaHandler holds dependencies for area handlers
type AreaHandler struct {
	areaUC usecase.AreaUsecase
}

// NewAreaHandler is the constructor for AreaHandler
func NewAreaHandler(params AreaHandlerParams) *AreaHandler {
	return &AreaHandler{areaUC: params.AreaUC}
}

type listAreasQuery struct {
	Active   string  `query:"active" validate:"omitempty,boolean"`
	Near     string  `query:"near"`
	RadiusKm float64 `query:"radiusKm" validate:"gte=0,lte=1000"`
	Limit    int     `query:"limit" validate:"gte=0,lte=500"`
	Offset   int     `query:"offset" validate:"gte=0"`
}

func (h *AreaHandler) CreateArea(c echo.Context) error {
	var input usecase.CreateAreaInput
	if err := c.Bind(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	area, err := h.areaUC.CreateArea(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, area)
}

// ListAreas supports ?active=, ?near=lon,lat and ?radiusKm=
func (h *AreaHandler) ListAreas(c echo.Context) error {
	var query listAreasQuery
	if err := bindQuery(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	near, err := parseNear(query.Near)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	areas, err := h.areaUC.ListAreas(c.Request().Context(), usecase.AreaListInput{
		Active:   optionalBool(query.Active),
		Near:     near,
		RadiusKm: query.RadiusKm,
		Limit:    query.Limit,
		Offset:   query.Offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, areas)
}

func (h *AreaHandler) GetArea(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	area, err := h.areaUC.GetArea(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, area)
}

func (h *AreaHandler) UpdateArea(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateAreaInput
	if err := c.Bind(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	area, err := h.areaUC.UpdateArea(c.Request().Context(), id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, area)
}

// DeleteArea refuses while managers or services still reference the area
func (h *AreaHandler) DeleteArea(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.areaUC.DeleteArea(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Area deleted successfully")
}
