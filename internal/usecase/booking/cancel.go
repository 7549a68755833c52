package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/marketplace-api/internal/audit"
	domain "github.com/BruksfildServices01/marketplace-api/internal/domain/booking"
	"github.com/BruksfildServices01/marketplace-api/internal/httperr"
	"github.com/BruksfildServices01/marketplace-api/internal/models"
	"github.com/BruksfildServices01/marketplace-api/internal/realtime"
)

type CancelBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events EventPublisher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events EventPublisher,
) *CancelBooking {
	return &CancelBooking{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID uuid.UUID,
	bookingID uuid.UUID,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := time.Now()
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBookingStatus(ctx, b, domain.StatusPending); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	broadcastBooking(ctx, uc.events, realtime.KindUpdate, b)

	return b, nil
}
