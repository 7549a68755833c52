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

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID uuid.UUID

	ServiceID     uuid.UUID
	ScheduledDate time.Time

	Notes   string
	Address string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier Notifier
	events   EventPublisher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier Notifier,
	events EventPublisher,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
		events:   events,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// the service must resolve to an existing, active row at
	// submission time; otherwise nothing is written
	svc, err := uc.repo.GetActiveService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	b := &models.Booking{
		ID:            uuid.New(),
		UserID:        in.UserID,
		ProviderID:    svc.ProviderID,
		ServiceID:     svc.ID,
		ScheduledDate: in.ScheduledDate,
		Status:        string(domain.InitialStatus()),
		Notes:         in.Notes,
		Address:       in.Address,
	}

	if err := domain.ValidateNew(b, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	broadcastBooking(ctx, uc.events, realtime.KindInsert, b)

	if uc.notifier != nil {
		uc.notifier.Dispatch(notify.Event{
			RecipientID:    svc.ProviderID,
			Type:           models.NotificationNewBooking,
			BookingID:      b.ID,
			Message:        fmt.Sprintf("New booking request for %q.", svc.Title),
			RecipientEmail: svc.Provider.Email,
			RecipientName:  svc.Provider.FullName,
			EmailSubject:   "New booking request",
		})
	}

	return b, nil
}
