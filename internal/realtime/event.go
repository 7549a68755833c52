package realtime

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/marketplace-api/internal/models"
)

type Kind string

const (
	KindInsert Kind = "insert"
	KindUpdate Kind = "update"
	KindDelete Kind = "delete"
)

// ChangeEvent is one row change pushed to subscribed clients. Row is the
// full snapshot after the change; empty for deletes.
type ChangeEvent struct {
	Kind  Kind            `json:"kind"`
	Table string          `json:"table"`
	ID    uuid.UUID       `json:"id"`
	Row   json.RawMessage `json:"row,omitempty"`
}

const (
	TableBookings      = "bookings"
	TableNotifications = "notifications"
)

func BookingEvent(kind Kind, b *models.Booking) (ChangeEvent, error) {
	row, err := json.Marshal(b)
	if err != nil {
		return ChangeEvent{}, err
	}
	return ChangeEvent{Kind: kind, Table: TableBookings, ID: b.ID, Row: row}, nil
}

func NotificationEvent(kind Kind, n *models.Notification) (ChangeEvent, error) {
	row, err := json.Marshal(n)
	if err != nil {
		return ChangeEvent{}, err
	}
	return ChangeEvent{Kind: kind, Table: TableNotifications, ID: n.ID, Row: row}, nil
}

// ===============================
// Channels
// ===============================

// Each party sees booking changes only on its own channel; the two sides
// of one booking are delivered independently.

func UserBookingsChannel(userID uuid.UUID) string {
	return fmt.Sprintf("bookings:user:%s", userID)
}

func ProviderBookingsChannel(providerID uuid.UUID) string {
	return fmt.Sprintf("bookings:provider:%s", providerID)
}

func NotificationsChannel(recipientID uuid.UUID) string {
	return fmt.Sprintf("notifications:%s", recipientID)
}

func BookingChannels(b *models.Booking) []string {
	return []string{
		UserBookingsChannel(b.UserID),
		ProviderBookingsChannel(b.ProviderID),
	}
}
