package booking

import (
	"context"
	"log"

	"github.com/BruksfildServices01/marketplace-api/internal/models"
	"github.com/BruksfildServices01/marketplace-api/internal/notify"
	"github.com/BruksfildServices01/marketplace-api/internal/realtime"
)

// Notifier delivers the best-effort counterpart notification for a
// booking action; implemented by notify.Dispatcher.
type Notifier interface {
	Dispatch(ev notify.Event)
}

// EventPublisher pushes committed row changes onto the realtime
// channels; implemented by realtime.Hub.
type EventPublisher interface {
	Broadcast(ctx context.Context, ev realtime.ChangeEvent, channels ...string)
}

// broadcastBooking publishes the post-commit row to both parties.
// Best-effort, like every realtime side effect.
func broadcastBooking(
	ctx context.Context,
	events EventPublisher,
	kind realtime.Kind,
	b *models.Booking,
) {
	if events == nil {
		return
	}

	ev, err := realtime.BookingEvent(kind, b)
	if err != nil {
		log.Println("booking event encode failed:", err)
		return
	}

	events.Broadcast(ctx, ev, realtime.BookingChannels(b)...)
}
