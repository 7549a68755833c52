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

func pendingBooking(userID, providerID uuid.UUID) *models.Booking {
	return &models.Booking{
		ID:            uuid.New(),
		UserID:        userID,
		ProviderID:    providerID,
		ServiceID:     uuid.New(),
		ScheduledDate: time.Now().Add(24 * time.Hour),
		Status:        string(domain.StatusPending),
		User: models.Profile{
			ID:       userID,
			FullName: "Carlos Customer",
			Email:    "carlos@example.com",
		},
		Service: models.Service{
			Title: "Deep cleaning",
		},
	}
}

func TestAcceptBooking_Success(t *testing.T) {
	repo := new(MockRepository)
	notifier := &MockNotifier{}
	events := &MockPublisher{}

	userID := uuid.New()
	providerID := uuid.New()
	b := pendingBooking(userID, providerID)

	repo.On("GetBookingForProvider", mock.Anything, b.ID, providerID).Return(b, nil)
	repo.On("UpdateBookingStatus", mock.Anything, b, domain.StatusPending).Return(nil)

	uc := NewAcceptBooking(repo, nil, notifier, events)

	got, err := uc.Execute(context.Background(), providerID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusAccepted), got.Status)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, userID, notifier.events[0].RecipientID)
	assert.Equal(t, models.NotificationStatusChange, notifier.events[0].Type)
	assert.Equal(t, "carlos@example.com", notifier.events[0].RecipientEmail)

	require.Len(t, events.events, 1)
	assert.Equal(t, realtime.KindUpdate, events.events[0].Kind)

	repo.AssertExpectations(t)
}

func TestAcceptBooking_NotFound(t *testing.T) {
	repo := new(MockRepository)

	providerID := uuid.New()
	bookingID := uuid.New()
	repo.On("GetBookingForProvider", mock.Anything, bookingID, providerID).
		Return(nil, assert.AnError)

	uc := NewAcceptBooking(repo, nil, nil, nil)

	_, err := uc.Execute(context.Background(), providerID, bookingID)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestAcceptBooking_AlreadyCancelled(t *testing.T) {
	repo := new(MockRepository)
	notifier := &MockNotifier{}

	providerID := uuid.New()
	b := pendingBooking(uuid.New(), providerID)
	b.Status = string(domain.StatusCancelled)

	repo.On("GetBookingForProvider", mock.Anything, b.ID, providerID).Return(b, nil)

	uc := NewAcceptBooking(repo, nil, notifier, nil)

	_, err := uc.Execute(context.Background(), providerID, b.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Empty(t, notifier.events)
	repo.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcceptBooking_LosesRace(t *testing.T) {
	repo := new(MockRepository)
	notifier := &MockNotifier{}
	events := &MockPublisher{}

	providerID := uuid.New()
	b := pendingBooking(uuid.New(), providerID)

	repo.On("GetBookingForProvider", mock.Anything, b.ID, providerID).Return(b, nil)
	repo.On("UpdateBookingStatus", mock.Anything, b, domain.StatusPending).
		Return(httperr.ErrBusiness("state_conflict"))

	uc := NewAcceptBooking(repo, nil, notifier, events)

	_, err := uc.Execute(context.Background(), providerID, b.ID)
	assert.True(t, httperr.IsBusiness(err, "state_conflict"))

	// a lost race must leave no trace downstream
	assert.Empty(t, notifier.events)
	assert.Empty(t, events.events)
}

func TestRejectBooking_Success(t *testing.T) {
	repo := new(MockRepository)
	notifier := &MockNotifier{}
	events := &MockPublisher{}

	userID := uuid.New()
	providerID := uuid.New()
	b := pendingBooking(userID, providerID)

	repo.On("GetBookingForProvider", mock.Anything, b.ID, providerID).Return(b, nil)
	repo.On("UpdateBookingStatus", mock.Anything, b, domain.StatusPending).Return(nil)

	uc := NewRejectBooking(repo, nil, notifier, events)

	got, err := uc.Execute(context.Background(), providerID, b.ID)
	require.NoError(t, err)

	// a reject lands as a cancellation, stamped with the moment
	assert.Equal(t, string(domain.StatusCancelled), got.Status)
	require.NotNil(t, got.CancelledAt)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, userID, notifier.events[0].RecipientID)

	repo.AssertExpectations(t)
}

func TestCancelBooking_Success(t *testing.T) {
	repo := new(MockRepository)
	events := &MockPublisher{}

	userID := uuid.New()
	b := pendingBooking(userID, uuid.New())

	repo.On("GetBookingForUser", mock.Anything, b.ID, userID).Return(b, nil)
	repo.On("UpdateBookingStatus", mock.Anything, b, domain.StatusPending).Return(nil)

	uc := NewCancelBooking(repo, nil, events)

	got, err := uc.Execute(context.Background(), userID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)
	require.NotNil(t, got.CancelledAt)

	require.Len(t, events.events, 1)
	assert.Equal(t, realtime.KindUpdate, events.events[0].Kind)

	repo.AssertExpectations(t)
}

func TestCancelBooking_OnlyOwnBooking(t *testing.T) {
	repo := new(MockRepository)

	userID := uuid.New()
	bookingID := uuid.New()
	repo.On("GetBookingForUser", mock.Anything, bookingID, userID).
		Return(nil, assert.AnError)

	uc := NewCancelBooking(repo, nil, nil)

	_, err := uc.Execute(context.Background(), userID, bookingID)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestCompleteBooking_Success(t *testing.T) {
	repo := new(MockRepository)
	events := &MockPublisher{}

	providerID := uuid.New()
	b := pendingBooking(uuid.New(), providerID)
	b.Status = string(domain.StatusAccepted)

	repo.On("GetBookingForProvider", mock.Anything, b.ID, providerID).Return(b, nil)
	repo.On("UpdateBookingStatus", mock.Anything, b, domain.StatusAccepted).Return(nil)

	uc := NewCompleteBooking(repo, nil, events)

	got, err := uc.Execute(context.Background(), providerID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), got.Status)
	require.NotNil(t, got.CompletedAt)

	repo.AssertExpectations(t)
}

func TestCompleteBooking_PendingRejected(t *testing.T) {
	repo := new(MockRepository)

	providerID := uuid.New()
	b := pendingBooking(uuid.New(), providerID)

	repo.On("GetBookingForProvider", mock.Anything, b.ID, providerID).Return(b, nil)

	uc := NewCompleteBooking(repo, nil, nil)

	_, err := uc.Execute(context.Background(), providerID, b.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	repo.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything)
}
