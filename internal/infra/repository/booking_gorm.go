package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/marketplace-api/internal/domain/booking"
	"github.com/BruksfildServices01/marketplace-api/internal/httperr"
	"github.com/BruksfildServices01/marketplace-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service resolution
// --------------------------------------------------

func (r *BookingGormRepository) GetActiveService(
	ctx context.Context,
	serviceID uuid.UUID,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("Category").
		Where("id = ? AND active = ?", serviceID, true).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Booking (create)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingForProvider(
	ctx context.Context,
	bookingID uuid.UUID,
	providerID uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Where("id = ? AND provider_id = ?", bookingID, providerID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) GetBookingForUser(
	ctx context.Context,
	bookingID uuid.UUID,
	userID uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("Service").
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

// UpdateBookingStatus is the serialization point for racing transitions:
// the UPDATE is guarded by the expected current status, so of two
// concurrent accepts exactly one sees an affected row.
func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	b *models.Booking,
	from domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", b.ID, string(from)).
		Updates(map[string]any{
			"status":       b.Status,
			"cancelled_at": b.CancelledAt,
			"completed_at": b.CompletedAt,
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("state_conflict")
	}

	return nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]models.Booking, error) {

	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Provider").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForProvider(
	ctx context.Context,
	providerID uuid.UUID,
) ([]models.Booking, error) {

	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("User").
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
