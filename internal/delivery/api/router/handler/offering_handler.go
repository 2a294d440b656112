package handler

import (
	"net/http"

	"backoffice/internal/delivery/api/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OfferingHandlerParams holds dependencies for OfferingHandler, injected by Fx.
type OfferingHandlerParams struct {
	fx.In

	OfferingUC usecase.OfferingUsecase
}

// OfferingHandler serves the /services routes
type OfferingHandler struct {
	offeringUC usecase.OfferingUsecase
}

// NewOfferingHandler is the constructor for OfferingHandler
func NewOfferingHandler(params OfferingHandlerParams) *OfferingHandler {
	return &OfferingHandler{offeringUC: params.OfferingUC}
}

type listOfferingsQuery struct {
	AreaID   string `query:"areaId" validate:"omitempty,uuid"`
	Category string `query:"category" validate:"omitempty,oneof=farm_maintenance home_cleaning house_painting blight_removal tree_services other"`
	Active   string `query:"active" validate:"omitempty,boolean"`
	Limit    int    `query:"limit" validate:"gte=0,lte=500"`
	Offset   int    `query:"offset" validate:"gte=0"`
}

func (h *OfferingHandler) CreateOffering(c echo.Context) error {
	var input usecase.CreateOfferingInput
	if err := c.Bind(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	offering, err := h.offeringUC.CreateOffering(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, offering)
}

func (h *OfferingHandler) ListOfferings(c echo.Context) error {
	var query listOfferingsQuery
	if err := bindQuery(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	input := usecase.OfferingListInput{
		AreaID: optionalUUID(query.AreaID),
		Active: optionalBool(query.Active),
		Limit:  query.Limit,
		Offset: query.Offset,
	}
	if query.Category != "" {
		category := entity.Category(query.Category)
		input.Category = &category
	}

	offerings, err := h.offeringUC.ListOfferings(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offerings)
}

func (h *OfferingHandler) GetOffering(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offering, err := h.offeringUC.GetOffering(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offering)
}

func (h *OfferingHandler) UpdateOffering(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateOfferingInput
	if err := c.Bind(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	offering, err := h.offeringUC.UpdateOffering(c.Request().Context(), id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offering)
}

func (h *OfferingHandler) DeleteOffering(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.offeringUC.DeleteOffering(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Service deleted successfully")
}
