package booking

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	domain "github.com/BruksfildServices01/marketplace-api/internal/domain/booking"
	"github.com/BruksfildServices01/marketplace-api/internal/models"
	"github.com/BruksfildServices01/marketplace-api/internal/notify"
	"github.com/BruksfildServices01/marketplace-api/internal/realtime"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetActiveService(ctx context.Context, serviceID uuid.UUID) (*models.Service, error) {
	args := m.Called(ctx, serviceID)
	svc, _ := args.Get(0).(*models.Service)
	return svc, args.Error(1)
}

func (m *MockRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) GetBookingForProvider(ctx context.Context, bookingID, providerID uuid.UUID) (*models.Booking, error) {
	args := m.Called(ctx, bookingID, providerID)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *MockRepository) GetBookingForUser(ctx context.Context, bookingID, userID uuid.UUID) (*models.Booking, error) {
	args := m.Called(ctx, bookingID, userID)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *MockRepository) UpdateBookingStatus(ctx context.Context, b *models.Booking, from domain.Status) error {
	args := m.Called(ctx, b, from)
	return args.Error(0)
}

func (m *MockRepository) ListBookingsForUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]models.Booking)
	return rows, args.Error(1)
}

func (m *MockRepository) ListBookingsForProvider(ctx context.Context, providerID uuid.UUID) ([]models.Booking, error) {
	args := m.Called(ctx, providerID)
	rows, _ := args.Get(0).([]models.Booking)
	return rows, args.Error(1)
}

// MockNotifier records dispatched notification events synchronously.
type MockNotifier struct {
	events []notify.Event
}

func (m *MockNotifier) Dispatch(ev notify.Event) {
	m.events = append(m.events, ev)
}

// MockPublisher records broadcast change events and their channels.
type MockPublisher struct {
	events   []realtime.ChangeEvent
	channels [][]string
}

func (m *MockPublisher) Broadcast(ctx context.Context, ev realtime.ChangeEvent, channels ...string) {
	m.events = append(m.events, ev)
	m.channels = append(m.channels, channels)
}
