package notify

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/marketplace-api/internal/models"
	"github.com/BruksfildServices01/marketplace-api/internal/realtime"
)

// Event is one fire-and-forget message for the counterpart of a booking
// action. The actor is never its own recipient.
type Event struct {
	RecipientID uuid.UUID
	Type        string
	BookingID   uuid.UUID
	Message     string

	// optional email delivery alongside the stored notification
	RecipientEmail string
	RecipientName  string
	EmailSubject   string
}

type Publisher interface {
	Broadcast(ctx context.Context, ev realtime.ChangeEvent, channels ...string)
}

type Mailer interface {
	SendBookingUpdate(ctx context.Context, toEmail, fullName, subject, message string) error
}

// Dispatcher delivers notifications off the request path. Everything in
// here is best-effort: a failure is logged and swallowed, and the
// booking mutation that triggered it is never rolled back or blocked.
type Dispatcher struct {
	store  Store
	hub    Publisher
	mailer Mailer
	queue  chan Event
}

func NewDispatcher(store Store, hub Publisher, mailer Mailer) *Dispatcher {
	d := &Dispatcher{
		store:  store,
		hub:    hub,
		mailer: mailer,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev Event) {
	ctx := context.Background()

	n := &models.Notification{
		ID:          uuid.New(),
		RecipientID: ev.RecipientID,
		Type:        ev.Type,
		BookingID:   ev.BookingID,
		Message:     ev.Message,
	}

	if err := d.store.SaveNotification(ctx, n); err != nil {
		log.Println("notify: save failed:", err)
		return
	}

	if d.hub != nil {
		change, err := realtime.NotificationEvent(realtime.KindInsert, n)
		if err != nil {
			log.Println("notify: event encode failed:", err)
		} else {
			d.hub.Broadcast(ctx, change, realtime.NotificationsChannel(ev.RecipientID))
		}
	}

	if d.mailer != nil && ev.RecipientEmail != "" {
		subject := ev.EmailSubject
		if subject == "" {
			subject = "Booking update"
		}
		if err := d.mailer.SendBookingUpdate(ctx, ev.RecipientEmail, ev.RecipientName, subject, ev.Message); err != nil {
			log.Println("notify: email failed:", err)
		}
	}
}

// Dispatch never blocks the request path; when the queue is full the
// notification is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("notify queue full, dropping notification")
	}
}
