package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/marketplace-api/internal/httperr"
	"github.com/BruksfildServices01/marketplace-api/internal/models"
)

func pendingBooking() *models.Booking {
	return &models.Booking{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		ProviderID: uuid.New(),
		ServiceID:  uuid.New(),
		Status:     string(StatusPending),
	}
}

func TestValidateNew(t *testing.T) {
	now := time.Now()

	b := pendingBooking()
	b.ScheduledDate = now.Add(24 * time.Hour)
	assert.NoError(t, ValidateNew(b, now))

	t.Run("same party", func(t *testing.T) {
		b := pendingBooking()
		b.ProviderID = b.UserID
		b.ScheduledDate = now.Add(24 * time.Hour)

		err := ValidateNew(b, now)
		assert.True(t, httperr.IsBusiness(err, "same_party"))
	})

	t.Run("scheduled in the past", func(t *testing.T) {
		b := pendingBooking()
		b.ScheduledDate = now.Add(-time.Hour)

		err := ValidateNew(b, now)
		assert.True(t, httperr.IsBusiness(err, "past_scheduled_date"))
	})
}

func TestAccept(t *testing.T) {
	b := pendingBooking()

	assert.NoError(t, Accept(b))
	assert.Equal(t, string(StatusAccepted), b.Status)

	// a second accept must fail, not silently pass
	err := Accept(b)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestReject(t *testing.T) {
	now := time.Now()
	b := pendingBooking()

	assert.NoError(t, Reject(b, now))
	assert.Equal(t, string(StatusCancelled), b.Status)
	assert.NotNil(t, b.CancelledAt)
}

func TestCancel_OnlyWhilePending(t *testing.T) {
	now := time.Now()

	b := pendingBooking()
	assert.NoError(t, Cancel(b, now))
	assert.Equal(t, string(StatusCancelled), b.Status)

	accepted := pendingBooking()
	accepted.Status = string(StatusAccepted)
	err := Cancel(accepted, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestComplete(t *testing.T) {
	now := time.Now()

	b := pendingBooking()
	err := Complete(b, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	b.Status = string(StatusAccepted)
	assert.NoError(t, Complete(b, now))
	assert.Equal(t, string(StatusCompleted), b.Status)
	assert.NotNil(t, b.CompletedAt)
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	now := time.Now()

	for _, terminal := range []Status{StatusCancelled, StatusCompleted} {
		b := pendingBooking()
		b.Status = string(terminal)

		assert.Error(t, Accept(b))
		assert.Error(t, Reject(b, now))
		assert.Error(t, Cancel(b, now))
		assert.Error(t, Complete(b, now))
		assert.Equal(t, string(terminal), b.Status)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusAccepted))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.True(t, IsTerminal(StatusCompleted))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(StatusPending))
	assert.True(t, IsValid(StatusCompleted))
	assert.False(t, IsValid(Status("rejected")))
	assert.False(t, IsValid(Status("")))
}
