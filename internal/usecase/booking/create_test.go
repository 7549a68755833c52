package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/marketplace-api/internal/domain/booking"
	"github.com/BruksfildServices01/marketplace-api/internal/httperr"
	"github.com/BruksfildServices01/marketplace-api/internal/models"
	"github.com/BruksfildServices01/marketplace-api/internal/realtime"
)

func activeService(providerID uuid.UUID) *models.Service {
	return &models.Service{
		ID:         uuid.New(),
		ProviderID: providerID,
		Provider: models.Profile{
			ID:       providerID,
			FullName: "Paula Provider",
			Email:    "paula@example.com",
		},
		Title:  "Deep cleaning",
		Price:  120,
		Active: true,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := new(MockRepository)
	notifier := &MockNotifier{}
	events := &MockPublisher{}

	userID := uuid.New()
	providerID := uuid.New()
	svc := activeService(providerID)

	repo.On("GetActiveService", mock.Anything, svc.ID).Return(svc, nil)
	repo.On("CreateBooking", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateBooking(repo, nil, notifier, events)

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:        userID,
		ServiceID:     svc.ID,
		ScheduledDate: time.Now().Add(48 * time.Hour),
		Notes:         "ring the bell twice",
		Address:       "Rua das Flores 12",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), b.Status)
	assert.Equal(t, userID, b.UserID)
	assert.Equal(t, providerID, b.ProviderID)
	assert.NotEqual(t, uuid.Nil, b.ID)

	// the provider is told about the new request
	require.Len(t, notifier.events, 1)
	assert.Equal(t, providerID, notifier.events[0].RecipientID)
	assert.Equal(t, models.NotificationNewBooking, notifier.events[0].Type)
	assert.Equal(t, "paula@example.com", notifier.events[0].RecipientEmail)

	// both parties' channels see the insert
	require.Len(t, events.events, 1)
	assert.Equal(t, realtime.KindInsert, events.events[0].Kind)
	assert.Equal(t, []string{
		realtime.UserBookingsChannel(userID),
		realtime.ProviderBookingsChannel(providerID),
	}, events.channels[0])

	repo.AssertExpectations(t)
}

func TestCreateBooking_ServiceNotFound(t *testing.T) {
	repo := new(MockRepository)

	serviceID := uuid.New()
	repo.On("GetActiveService", mock.Anything, serviceID).
		Return(nil, assert.AnError)

	uc := NewCreateBooking(repo, nil, nil, nil)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:        uuid.New(),
		ServiceID:     serviceID,
		ScheduledDate: time.Now().Add(time.Hour),
	})

	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBooking_PastDateWritesNothing(t *testing.T) {
	repo := new(MockRepository)
	notifier := &MockNotifier{}

	svc := activeService(uuid.New())
	repo.On("GetActiveService", mock.Anything, svc.ID).Return(svc, nil)

	uc := NewCreateBooking(repo, nil, notifier, nil)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:        uuid.New(),
		ServiceID:     svc.ID,
		ScheduledDate: time.Now().Add(-time.Hour),
	})

	assert.True(t, httperr.IsBusiness(err, "past_scheduled_date"))
	assert.Empty(t, notifier.events)
	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBooking_OwnService(t *testing.T) {
	repo := new(MockRepository)

	providerID := uuid.New()
	svc := activeService(providerID)
	repo.On("GetActiveService", mock.Anything, svc.ID).Return(svc, nil)

	uc := NewCreateBooking(repo, nil, nil, nil)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:        providerID,
		ServiceID:     svc.ID,
		ScheduledDate: time.Now().Add(time.Hour),
	})

	assert.True(t, httperr.IsBusiness(err, "same_party"))
	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}
