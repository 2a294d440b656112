package handler

import (
	"encoding/json"
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

type managerHandlerFixtures struct {
	managerUC *mockUC.MockManagerUsecase
	authUC    *mockUC.MockAuthUsecase
}

func newManagerTestEcho(t *testing.T) (*echo.Echo, managerHandlerFixtures) {
	mocks := managerHandlerFixtures{
		managerUC: mockUC.NewMockManagerUsecase(t),
		authUC:    mockUC.NewMockAuthUsecase(t),
	}
	h := NewManagerHandler(ManagerHandlerParams{
		ManagerUC: mocks.managerUC,
		AuthUC:    mocks.authUC,
		Logger:    newDiscardLogger(),
	})

	e := newTestEcho()
	e.POST("/managers", h.CreateManager)
	e.GET("/managers", h.ListManagers)
	e.GET("/managers/:id", h.GetManager)
	e.PATCH("/managers/:id", h.UpdateManager)
	e.DELETE("/managers/:id", h.DeleteManager)
	e.GET("/managers/:id/badge", h.Badge)
	e.POST("/managers/badge/verify", h.VerifyBadge)
	e.POST("/managers/auth/login", h.Login)

	return e, mocks
}

func TestManagerHandler_CreateManager(t *testing.T) {
	e, mocks := newManagerTestEcho(t)
	areaID := uuid.New()
	created := &entity.Manager{
		ID:             uuid.New(),
		ManagerCode:    "AWM1001",
		FirstName:      "John",
		LastName:       "Doe",
		Email:          "john@x.com",
		PasswordHash:   "digest",
		Phone:          "5551234567",
		AssignedAreaID: areaID,
		Status:         entity.ManagerStatusActive,
	}

	mocks.managerUC.EXPECT().CreateManager(mock.Anything, &usecase.CreateManagerInput{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "John@X.com",
		Password:     "secret123",
		Phone:        "5551234567",
		AssignedArea: areaID,
	}).Return(created, nil).Once()

	body := `{"firstName":"John","lastName":"Doe","email":"John@X.com","password":"secret123",` +
		`"phone":"5551234567","assignedArea":"` + areaID.String() + `"}`
	rec := doRequest(e, http.MethodPost, "/managers", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "AWM1001", got["managerCode"])
	assert.Equal(t, areaID.String(), got["assignedArea"])
	assert.NotContains(t, got, "passwordHash")
	assert.NotContains(t, rec.Body.String(), "digest")
}

func TestManagerHandler_CreateManager_UsecaseError(t *testing.T) {
	e, mocks := newManagerTestEcho(t)

	mocks.managerUC.EXPECT().CreateManager(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("phone must be exactly 10 digits")).Once()

	rec := doRequest(e, http.MethodPost, "/managers", `{"phone":"12345"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error)
	assert.Equal(t, "phone must be exactly 10 digits", body.Details)
}

func TestManagerHandler_CreateManager_RejectsMalformedBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		details string
	}{
		{name: "empty body", body: "", details: "request body is required"},
		{name: "unknown field", body: `{"nickname":"JD"}`, details: `unknown field "nickname"`},
		{name: "wrong type", body: `{"phone":5551234567}`, details: "phone must be of type string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newManagerTestEcho(t)

			rec := doRequest(e, http.MethodPost, "/managers", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, "VALIDATION_FAILED", body.Error)
			assert.Equal(t, tt.details, body.Details)
		})
	}
}

func TestManagerHandler_ListManagers(t *testing.T) {
	e, mocks := newManagerTestEcho(t)
	areaID := uuid.New()
	status := entity.ManagerStatusSuspended

	mocks.managerUC.EXPECT().ListManagers(mock.Anything, usecase.ManagerListInput{
		AreaID: &areaID,
		Status: &status,
		Limit:  20,
		Offset: 40,
	}).Return([]*entity.Manager{{ManagerCode: "AWM1004"}}, nil).Once()

	rec := doRequest(e, http.MethodGet, "/managers?areaId="+areaID.String()+"&status=suspended&limit=20&offset=40", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "AWM1004")
}

func TestManagerHandler_ListManagers_InvalidQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		details string
	}{
		{name: "area id", query: "areaId=nope", details: "areaId must be a valid UUID"},
		{name: "status", query: "status=retired", details: "status must be one of: active, inactive, suspended"},
		{name: "limit", query: "limit=900", details: "limit must be less than or equal to 500"},
		{name: "malformed", query: "offset=ten", details: "query parameters are malformed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newManagerTestEcho(t)

			rec := doRequest(e, http.MethodGet, "/managers?"+tt.query, "")

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.details, decodeError(t, rec).Details)
		})
	}
}

func TestManagerHandler_GetManager(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		e, _ := newManagerTestEcho(t)

		rec := doRequest(e, http.MethodGet, "/managers/not-a-uuid", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "id must be a valid UUID", decodeError(t, rec).Details)
	})

	t.Run("not found", func(t *testing.T) {
		e, mocks := newManagerTestEcho(t)
		id := uuid.New()
		mocks.managerUC.EXPECT().GetManager(mock.Anything, id).Return(nil, domainerrors.ErrManagerNotFound).Once()

		rec := doRequest(e, http.MethodGet, "/managers/"+id.String(), "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "MANAGER_NOT_FOUND", decodeError(t, rec).Error)
	})
}

func TestManagerHandler_UpdateManager(t *testing.T) {
	e, mocks := newManagerTestEcho(t)
	id := uuid.New()
	phone := "5550000000"

	mocks.managerUC.EXPECT().UpdateManager(mock.Anything, id, &usecase.UpdateManagerInput{Phone: &phone}).
		Return(&entity.Manager{ID: id, Phone: phone}, nil).Once()

	rec := doRequest(e, http.MethodPatch, "/managers/"+id.String(), `{"phone":"5550000000"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), phone)
}

func TestManagerHandler_DeleteManager(t *testing.T) {
	e, mocks := newManagerTestEcho(t)
	id := uuid.New()
	mocks.managerUC.EXPECT().DeleteManager(mock.Anything, id).Return(nil).Once()

	rec := doRequest(e, http.MethodDelete, "/managers/"+id.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Manager deleted successfully"}`, rec.Body.String())
}

func TestManagerHandler_Badge(t *testing.T) {
	e, mocks := newManagerTestEcho(t)
	id := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	mocks.managerUC.EXPECT().ManagerBadge(mock.Anything, id).Return(png, nil).Once()

	rec := doRequest(e, http.MethodGet, "/managers/"+id.String()+"/badge", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestManagerHandler_Login(t *testing.T) {
	e, mocks := newManagerTestEcho(t)

	mocks.authUC.EXPECT().LoginManager(mock.Anything, &usecase.LoginInput{Email: "m@x.com", Password: "pw"}).
		Return(nil, domainerrors.ErrAccountDisabled).Once()

	rec := doRequest(e, http.MethodPost, "/managers/auth/login", `{"email":"m@x.com","password":"pw"}`)

	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "ACCOUNT_DISABLED", body.Error)
	assert.Empty(t, body.Details)
}

func TestManagerHandler_Me(t *testing.T) {
	managerUC := mockUC.NewMockManagerUsecase(t)
	h := NewManagerHandler(ManagerHandlerParams{ManagerUC: managerUC, Logger: newDiscardLogger()})
	managerID := uuid.New()

	e := newTestEcho()
	e.GET("/managers/me", h.Me, withActor(managerID, entity.RoleManager))

	managerUC.EXPECT().GetManager(mock.Anything, managerID).
		Return(&entity.Manager{ID: managerID, ManagerCode: "AWM1010", Status: entity.ManagerStatusActive}, nil).Once()

	rec := doRequest(e, http.MethodGet, "/managers/me", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "AWM1010")
}

func TestManagerHandler_Me_NotActive(t *testing.T) {
	for _, status := range []entity.ManagerStatus{entity.ManagerStatusSuspended, entity.ManagerStatusInactive} {
		t.Run(string(status), func(t *testing.T) {
			managerUC := mockUC.NewMockManagerUsecase(t)
			h := NewManagerHandler(ManagerHandlerParams{ManagerUC: managerUC, Logger: newDiscardLogger()})
			managerID := uuid.New()

			e := newTestEcho()
			e.GET("/managers/me", h.Me, withActor(managerID, entity.RoleManager))

			managerUC.EXPECT().GetManager(mock.Anything, managerID).
				Return(&entity.Manager{ID: managerID, ManagerCode: "AWM1011", Status: status}, nil).Once()

			rec := doRequest(e, http.MethodGet, "/managers/me", "")

			require.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "ACCOUNT_DISABLED", decodeError(t, rec).Error)
			assert.NotContains(t, rec.Body.String(), "AWM1011")
		})
	}
}

func TestManagerHandler_VerifyBadge(t *testing.T) {
	e, mocks := newManagerTestEcho(t)
	id := uuid.New()
	data := `{"type":"manager_badge"}`

	mocks.managerUC.EXPECT().VerifyBadge(mock.Anything, &usecase.VerifyBadgeInput{Data: data}).
		Return(&entity.Manager{ID: id, ManagerCode: "AWM1007"}, nil).Once()

	rec := doRequest(e, http.MethodPost, "/managers/badge/verify", `{"data":"{\"type\":\"manager_badge\"}"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "AWM1007")
}
