package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/marketplace-api/internal/models"
)

type Repository interface {
	// -------- Service resolution --------
	GetActiveService(
		ctx context.Context,
		serviceID uuid.UUID,
	) (*models.Service, error)

	// -------- Booking (create) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBookingForProvider(
		ctx context.Context,
		bookingID uuid.UUID,
		providerID uuid.UUID,
	) (*models.Booking, error)

	GetBookingForUser(
		ctx context.Context,
		bookingID uuid.UUID,
		userID uuid.UUID,
	) (*models.Booking, error)

	// UpdateBookingStatus persists b only if the row is still in the
	// given status. Losing the race returns a state_conflict business
	// error; callers must re-fetch, not reapply their stale transition.
	UpdateBookingStatus(
		ctx context.Context,
		b *models.Booking,
		from Status,
	) error

	// -------- Listings --------
	ListBookingsForUser(
		ctx context.Context,
		userID uuid.UUID,
	) ([]models.Booking, error)

	ListBookingsForProvider(
		ctx context.Context,
		providerID uuid.UUID,
	) ([]models.Booking, error)
}
