package booking

import (
	"time"

	"github.com/BruksfildServices01/marketplace-api/internal/httperr"
	"github.com/BruksfildServices01/marketplace-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ValidateNew checks the invariants a booking must satisfy at creation.
func ValidateNew(b *models.Booking, now time.Time) error {
	if b.UserID == b.ProviderID {
		return httperr.ErrBusiness("same_party")
	}
	if b.ScheduledDate.Before(now) {
		return httperr.ErrBusiness("past_scheduled_date")
	}
	return nil
}

func Accept(b *models.Booking) error {
	if err := CanAccept(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusAccepted)
	return nil
}

// Reject is the provider-side refusal of a pending booking. It lands in
// the same terminal status as a user cancellation.
func Reject(b *models.Booking, now time.Time) error {
	if err := CanReject(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}
