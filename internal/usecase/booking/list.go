package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/marketplace-api/internal/domain/booking"
	"github.com/BruksfildServices01/marketplace-api/internal/dto"
	"github.com/BruksfildServices01/marketplace-api/internal/models"
)

// ======================================================
// USER LISTING
// ======================================================

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID uuid.UUID,
) ([]dto.UserBookingDTO, error) {

	rows, err := uc.repo.ListBookingsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserBookingDTO, 0, len(rows))
	for _, b := range rows {
		out = append(out, toUserBookingDTO(b))
	}
	return out, nil
}

func toUserBookingDTO(b models.Booking) dto.UserBookingDTO {
	d := dto.UserBookingDTO{
		ID:            b.ID,
		Status:        b.Status,
		ScheduledDate: b.ScheduledDate,
		Notes:         b.Notes,
		Address:       b.Address,
		CreatedAt:     b.CreatedAt,
		ServiceTitle:  b.Service.Title,
		ServicePrice:  b.Service.Price,
		ProviderName:  b.Provider.FullName,
	}

	// contact details stay hidden until the provider has committed
	if contactVisible(domain.Status(b.Status)) {
		d.ProviderPhone = b.Provider.Phone
		d.ProviderEmail = b.Provider.Email
		d.ProviderWhatsapp = b.Provider.WhatsappNumber
	}

	return d
}

func contactVisible(s domain.Status) bool {
	return s == domain.StatusAccepted || s == domain.StatusCompleted
}

// ======================================================
// PROVIDER LISTING
// ======================================================

type ListProviderBookings struct {
	repo domain.Repository
}

func NewListProviderBookings(repo domain.Repository) *ListProviderBookings {
	return &ListProviderBookings{repo: repo}
}

func (uc *ListProviderBookings) Execute(
	ctx context.Context,
	providerID uuid.UUID,
) ([]dto.ProviderBookingDTO, error) {

	rows, err := uc.repo.ListBookingsForProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProviderBookingDTO, 0, len(rows))
	for _, b := range rows {
		out = append(out, dto.ProviderBookingDTO{
			ID:            b.ID,
			Status:        b.Status,
			ScheduledDate: b.ScheduledDate,
			Notes:         b.Notes,
			Address:       b.Address,
			CreatedAt:     b.CreatedAt,
			ServiceTitle:  b.Service.Title,
			UserName:      b.User.FullName,
			UserEmail:     b.User.Email,
		})
	}
	return out, nil
}
