package handler

import (
	"net/http"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	mockUC "backoffice/internal/mocks/usecase"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOfferingTestEcho(t *testing.T) (*echo.Echo, *mockUC.MockOfferingUsecase) {
	offeringUC := mockUC.NewMockOfferingUsecase(t)
	h := NewOfferingHandler(OfferingHandlerParams{OfferingUC: offeringUC})

	e := newTestEcho()
	e.POST("/services", h.CreateOffering)
	e.GET("/services", h.ListOfferings)
	e.GET("/services/:id", h.GetOffering)
	e.PUT("/services/:id", h.UpdateOffering)
	e.DELETE("/services/:id", h.DeleteOffering)

	return e, offeringUC
}

func TestOfferingHandler_ListOfferings(t *testing.T) {
	e, offeringUC := newOfferingTestEcho(t)
	areaID := uuid.New()
	category := entity.CategoryTreeServices
	active := false

	offeringUC.EXPECT().ListOfferings(mock.Anything, usecase.OfferingListInput{
		AreaID:   &areaID,
		Category: &category,
		Active:   &active,
	}).Return([]*entity.Offering{}, nil).Once()

	rec := doRequest(e, http.MethodGet, "/services?areaId="+areaID.String()+"&category=tree_services&active=false", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestOfferingHandler_ListOfferings_InvalidCategory(t *testing.T) {
	e, _ := newOfferingTestEcho(t)

	rec := doRequest(e, http.MethodGet, "/services?category=plumbing", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "category must be one of: farm_maintenance")
}

func TestOfferingHandler_CreateOffering_UnknownArea(t *testing.T) {
	e, offeringUC := newOfferingTestEcho(t)

	offeringUC.EXPECT().CreateOffering(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidReference.WithDetails("assignedArea does not exist")).Once()

	rec := doRequest(e, http.MethodPost, "/services", `{"name":"Trim"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INVALID_REFERENCE", body.Error)
	assert.Equal(t, "assignedArea does not exist", body.Details)
}

func TestOfferingHandler_DeleteOffering(t *testing.T) {
	e, offeringUC := newOfferingTestEcho(t)
	id := uuid.New()
	offeringUC.EXPECT().DeleteOffering(mock.Anything, id).Return(domainerrors.ErrServiceNotFound).Once()

	rec := doRequest(e, http.MethodDelete, "/services/"+id.String(), "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SERVICE_NOT_FOUND", decodeError(t, rec).Error)
}
