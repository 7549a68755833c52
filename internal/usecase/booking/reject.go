package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/marketplace-api/internal/audit"
	domain "github.com/BruksfildServices01/marketplace-api/internal/domain/booking"
	"github.com/BruksfildServices01/marketplace-api/internal/httperr"
	"github.com/BruksfildServices01/marketplace-api/internal/models"
	"github.com/BruksfildServices01/marketplace-api/internal/notify"
	"github.com/BruksfildServices01/marketplace-api/internal/realtime"
)

type RejectBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier Notifier
	events   EventPublisher
}

func NewRejectBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier Notifier,
	events EventPublisher,
) *RejectBooking {
	return &RejectBooking{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
		events:   events,
	}
}

func (uc *RejectBooking) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	bookingID uuid.UUID,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForProvider(ctx, bookingID, providerID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := time.Now()
	if err := domain.Reject(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBookingStatus(ctx, b, domain.StatusPending); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &providerID,
		Action:   "booking_rejected",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	broadcastBooking(ctx, uc.events, realtime.KindUpdate, b)

	if uc.notifier != nil {
		uc.notifier.Dispatch(notify.Event{
			RecipientID:    b.UserID,
			Type:           models.NotificationStatusChange,
			BookingID:      b.ID,
			Message:        fmt.Sprintf("Your booking for %q was rejected by the provider.", b.Service.Title),
			RecipientEmail: b.User.Email,
			RecipientName:  b.User.FullName,
			EmailSubject:   "Booking rejected",
		})
	}

	return b, nil
}
