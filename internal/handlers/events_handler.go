package handlers

import (
	"context"
	"io"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/marketplace-api/internal/domain/booking"
	"github.com/BruksfildServices01/marketplace-api/internal/httperr"
	"github.com/BruksfildServices01/marketplace-api/internal/middleware"
	"github.com/BruksfildServices01/marketplace-api/internal/models"
	"github.com/BruksfildServices01/marketplace-api/internal/realtime"
	"github.com/BruksfildServices01/marketplace-api/internal/retry"
)

// ======================================================
// HANDLER
// ======================================================

// EventsHandler streams booking and notification changes to the client
// over SSE. Subscription happens before the snapshot fetch, so a change
// committed in between arrives as an event and is reconciled instead of
// being lost.
type EventsHandler struct {
	repo  domain.Repository
	hub   *realtime.Hub
	retry retry.Policy
}

func NewEventsHandler(repo domain.Repository, hub *realtime.Hub) *EventsHandler {
	return &EventsHandler{
		repo:  repo,
		hub:   hub,
		retry: retry.DefaultPolicy(),
	}
}

// ======================================================
// STREAM
// ======================================================

func (h *EventsHandler) Stream(c *gin.Context) {
	userID := middleware.UserID(c)
	role := c.GetString(middleware.ContextUserRole)

	ctx := c.Request.Context()

	bookingChannel := realtime.UserBookingsChannel(userID)
	if role == models.RoleProvider {
		bookingChannel = realtime.ProviderBookingsChannel(userID)
	}

	var sub *realtime.Subscription
	err := h.retry.Do(ctx, func() error {
		var err error
		sub, err = h.hub.Subscribe(ctx,
			bookingChannel,
			realtime.NotificationsChannel(userID),
		)
		return err
	})
	if err != nil {
		httperr.Internal(c, "subscribe_failed", "Erro ao abrir o canal de eventos.")
		return
	}
	defer sub.Close()

	snapshot, err := h.fetchSnapshot(ctx, userID, role)
	if err != nil {
		httperr.Internal(c, "snapshot_failed", "Erro ao carregar agendamentos.")
		return
	}

	feed := realtime.NewFeed(snapshot)

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.SSEvent("bookings", feed.Rows())
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false

		case ev, ok := <-sub.Events():
			if !ok {
				return false
			}

			switch ev.Table {
			case realtime.TableBookings:
				changed, err := feed.Apply(ev)
				if err != nil {
					log.Println("events: dropping undecodable booking event:", err)
					return true
				}
				if changed {
					c.SSEvent("bookings", feed.Rows())
				}

			case realtime.TableNotifications:
				c.SSEvent("notification", ev)
			}

			return true
		}
	})
}

func (h *EventsHandler) fetchSnapshot(
	ctx context.Context,
	userID uuid.UUID,
	role string,
) ([]models.Booking, error) {

	var snapshot []models.Booking
	err := h.retry.Do(ctx, func() error {
		var err error
		if role == models.RoleProvider {
			snapshot, err = h.repo.ListBookingsForProvider(ctx, userID)
		} else {
			snapshot, err = h.repo.ListBookingsForUser(ctx, userID)
		}
		return err
	})
	return snapshot, err
}
