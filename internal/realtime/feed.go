package realtime

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/marketplace-api/internal/models"
)

// Feed reconciles booking change events into an ordered in-memory list,
// newest first. The snapshot fetch is the source of truth; events are
// applied in arrival order and duplicates are tolerated:
//
//	insert: prepend if absent, ignore replays
//	update: replace by id; a missed insert is treated as an insert
//	delete: remove by id (bookings are never hard-deleted, handled
//	        defensively anyway)
//
// A Feed belongs to a single subscriber and is not goroutine-safe.
type Feed struct {
	rows []models.Booking
}

func NewFeed(snapshot []models.Booking) *Feed {
	rows := make([]models.Booking, len(snapshot))
	copy(rows, snapshot)
	return &Feed{rows: rows}
}

// Apply reconciles one event and reports whether the list changed.
func (f *Feed) Apply(ev ChangeEvent) (bool, error) {
	if ev.Table != TableBookings {
		return false, nil
	}

	switch ev.Kind {
	case KindInsert:
		if f.indexOf(ev.ID) >= 0 {
			return false, nil
		}
		b, err := decodeBooking(ev.Row)
		if err != nil {
			return false, err
		}
		f.prepend(b)
		return true, nil

	case KindUpdate:
		b, err := decodeBooking(ev.Row)
		if err != nil {
			return false, err
		}
		if i := f.indexOf(ev.ID); i >= 0 {
			f.rows[i] = b
			return true, nil
		}
		f.prepend(b)
		return true, nil

	case KindDelete:
		if i := f.indexOf(ev.ID); i >= 0 {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return true, nil
		}
		return false, nil
	}

	return false, nil
}

func (f *Feed) Len() int {
	return len(f.rows)
}

func (f *Feed) Rows() []models.Booking {
	out := make([]models.Booking, len(f.rows))
	copy(out, f.rows)
	return out
}

func (f *Feed) indexOf(id uuid.UUID) int {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return i
		}
	}
	return -1
}

func (f *Feed) prepend(b models.Booking) {
	f.rows = append([]models.Booking{b}, f.rows...)
}

func decodeBooking(row json.RawMessage) (models.Booking, error) {
	var b models.Booking
	err := json.Unmarshal(row, &b)
	return b, err
}
