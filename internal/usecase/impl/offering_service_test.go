package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	mockRepo "backoffice/internal/mocks/repository"
	mockSvc "backoffice/internal/mocks/service"
	"backoffice/internal/usecase"
	"backoffice/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type offeringFixtures struct {
	offeringRepo *mockRepo.MockOfferingRepository
	areaRepo     *mockRepo.MockAreaRepository
	publisher    *mockSvc.MockEventPublisher
	metrics      *mockSvc.MockMetricsRecorder
}

func createTestOfferingService(t *testing.T) (usecase.OfferingUsecase, offeringFixtures) {
	fx := offeringFixtures{
		offeringRepo: mockRepo.NewMockOfferingRepository(t),
		areaRepo:     mockRepo.NewMockAreaRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		metrics:      mockSvc.NewMockMetricsRecorder(t),
	}

	srv := NewOfferingService(OfferingServiceParams{
		OfferingRepo: fx.offeringRepo,
		AreaRepo:     fx.areaRepo,
		Validator:    validation.New(),
		Publisher:    fx.publisher,
		Metrics:      fx.metrics,
		Logger:       newDiscardLogger(),
	})

	return srv, fx
}

func validOfferingInput(areaID uuid.UUID) *usecase.CreateOfferingInput {
	return &usecase.CreateOfferingInput{
		Name:              " Deep Clean ",
		AreaID:            areaID,
		Category:          entity.CategoryHomeCleaning,
		BasePrice:         ptr(45.0),
		PriceUnit:         entity.PriceUnitPerHour,
		EstimatedDuration: ptr(2.5),
	}
}

func TestOfferingService_CreateOffering(t *testing.T) {
	srv, fx := createTestOfferingService(t)
	areaID := uuid.New()

	fx.areaRepo.EXPECT().Exists(mock.Anything, areaID).Return(true, nil).Once()
	fx.offeringRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Offering")).Return(nil).Once()
	expectEvent(fx.publisher, service.EventServiceCreated)

	offering, err := srv.CreateOffering(context.Background(), validOfferingInput(areaID))
	require.NoError(t, err)
	assert.Equal(t, "Deep Clean", offering.Name)
	assert.Equal(t, areaID, offering.AreaID)
	assert.InDelta(t, 45.0, offering.BasePrice, 1e-9)
	assert.True(t, offering.Active)
	assert.Equal(t, []string{}, offering.RequiredSkills)
}

func TestOfferingService_CreateOffering_UnknownArea(t *testing.T) {
	srv, fx := createTestOfferingService(t)
	areaID := uuid.New()

	fx.areaRepo.EXPECT().Exists(mock.Anything, areaID).Return(false, nil).Once()

	_, err := srv.CreateOffering(context.Background(), validOfferingInput(areaID))
	require.ErrorIs(t, err, domainerrors.ErrInvalidReference)
	assert.Contains(t, err.Error(), "areaId")
}

func TestOfferingService_CreateOffering_ValidationFailures(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(input *usecase.CreateOfferingInput)
		wantDetails string
	}{
		{
			name:        "negative price",
			mutate:      func(input *usecase.CreateOfferingInput) { input.BasePrice = ptr(-1.0) },
			wantDetails: "basePrice must be greater than or equal to 0",
		},
		{
			name:        "zero duration",
			mutate:      func(input *usecase.CreateOfferingInput) { input.EstimatedDuration = ptr(0.0) },
			wantDetails: "estimatedDuration must be greater than 0",
		},
		{
			name:        "price beyond column precision",
			mutate:      func(input *usecase.CreateOfferingInput) { input.BasePrice = ptr(1e12) },
			wantDetails: "basePrice must be less than or equal to 9999999999.99",
		},
		{
			name:        "duration beyond column precision",
			mutate:      func(input *usecase.CreateOfferingInput) { input.EstimatedDuration = ptr(1e6) },
			wantDetails: "estimatedDuration must be less than or equal to 999999.99",
		},
		{
			name:        "missing price",
			mutate:      func(input *usecase.CreateOfferingInput) { input.BasePrice = nil },
			wantDetails: "basePrice is required",
		},
		{
			name:        "unknown category",
			mutate:      func(input *usecase.CreateOfferingInput) { input.Category = "plumbing" },
			wantDetails: "category must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := createTestOfferingService(t)
			input := validOfferingInput(uuid.New())
			tt.mutate(input)

			_, err := srv.CreateOffering(context.Background(), input)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Contains(t, appErr.Details(), tt.wantDetails)
		})
	}
}

func TestOfferingService_UpdateOffering_PriceTooLarge(t *testing.T) {
	srv, _ := createTestOfferingService(t)

	_, err := srv.UpdateOffering(context.Background(), uuid.New(), &usecase.UpdateOfferingInput{BasePrice: ptr(1e10)})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.ErrorContains(t, err, "basePrice must be less than or equal to 9999999999.99")
}

func TestOfferingService_UpdateOffering_AreaChange(t *testing.T) {
	srv, fx := createTestOfferingService(t)
	stored := &entity.Offering{ID: uuid.New(), Name: "Deep Clean", AreaID: uuid.New(), Active: true}
	newAreaID := uuid.New()

	fx.offeringRepo.EXPECT().FindByID(mock.Anything, stored.ID).Return(stored, nil).Once()
	fx.areaRepo.EXPECT().Exists(mock.Anything, newAreaID).Return(false, nil).Once()

	_, err := srv.UpdateOffering(context.Background(), stored.ID, &usecase.UpdateOfferingInput{AreaID: &newAreaID})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)
}

func TestOfferingService_UpdateOffering_SameAreaSkipsCheck(t *testing.T) {
	srv, fx := createTestOfferingService(t)
	stored := &entity.Offering{ID: uuid.New(), Name: "Deep Clean", AreaID: uuid.New(), Active: true}
	sameArea := stored.AreaID

	fx.offeringRepo.EXPECT().FindByID(mock.Anything, stored.ID).Return(stored, nil).Once()
	fx.offeringRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
	expectEvent(fx.publisher, service.EventServiceUpdated)

	updated, err := srv.UpdateOffering(context.Background(), stored.ID, &usecase.UpdateOfferingInput{
		AreaID: &sameArea,
		Active: ptr(false),
	})
	require.NoError(t, err)
	assert.False(t, updated.Active)
}

func TestOfferingService_NotFound(t *testing.T) {
	srv, fx := createTestOfferingService(t)
	id := uuid.New()

	fx.offeringRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrOfferingNotFound).Once()
	fx.offeringRepo.EXPECT().Delete(mock.Anything, id).Return(repository.ErrOfferingNotFound).Once()

	_, err := srv.GetOffering(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
	assert.ErrorIs(t, srv.DeleteOffering(context.Background(), id), domainerrors.ErrServiceNotFound)
}

func TestOfferingService_ListOfferings(t *testing.T) {
	srv, fx := createTestOfferingService(t)
	areaID := uuid.New()
	offerings := []*entity.Offering{{Name: "Deep Clean"}}

	fx.offeringRepo.EXPECT().Find(mock.Anything, repository.OfferingFilter{AreaID: &areaID, Limit: 50}).Return(offerings, nil).Once()

	got, err := srv.ListOfferings(context.Background(), usecase.OfferingListInput{AreaID: &areaID, Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, offerings, got)
}
