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

type CompleteBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events EventPublisher
}

func NewCompleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events EventPublisher,
) *CompleteBooking {
	return &CompleteBooking{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	bookingID uuid.UUID,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForProvider(ctx, bookingID, providerID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := time.Now()
	if err := domain.Complete(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBookingStatus(ctx, b, domain.StatusAccepted); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &providerID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	broadcastBooking(ctx, uc.events, realtime.KindUpdate, b)

	return b, nil
}
