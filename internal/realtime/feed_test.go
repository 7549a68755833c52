package realtime

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/marketplace-api/internal/models"
)

func makeBooking(status string) models.Booking {
	return models.Booking{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		ProviderID: uuid.New(),
		ServiceID:  uuid.New(),
		Status:     status,
		CreatedAt:  time.Now(),
	}
}

func mustBookingEvent(t *testing.T, kind Kind, b *models.Booking) ChangeEvent {
	t.Helper()
	ev, err := BookingEvent(kind, b)
	require.NoError(t, err)
	return ev
}

func TestFeed_InsertPrepends(t *testing.T) {
	older := makeBooking("pending")
	feed := NewFeed([]models.Booking{older})

	newer := makeBooking("pending")
	changed, err := feed.Apply(mustBookingEvent(t, KindInsert, &newer))

	require.NoError(t, err)
	assert.True(t, changed)

	rows := feed.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, newer.ID, rows[0].ID)
	assert.Equal(t, older.ID, rows[1].ID)
}

func TestFeed_InsertReplayIgnored(t *testing.T) {
	b := makeBooking("pending")
	feed := NewFeed(nil)

	ev := mustBookingEvent(t, KindInsert, &b)

	changed, err := feed.Apply(ev)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = feed.Apply(ev)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, feed.Len())
}

func TestFeed_UpdateReplacesByID(t *testing.T) {
	b := makeBooking("pending")
	feed := NewFeed([]models.Booking{b})

	b.Status = "accepted"
	changed, err := feed.Apply(mustBookingEvent(t, KindUpdate, &b))

	require.NoError(t, err)
	assert.True(t, changed)

	rows := feed.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "accepted", rows[0].Status)
}

func TestFeed_UpdateIsIdempotent(t *testing.T) {
	b := makeBooking("pending")
	feed := NewFeed([]models.Booking{b})

	b.Status = "completed"
	ev := mustBookingEvent(t, KindUpdate, &b)

	_, err := feed.Apply(ev)
	require.NoError(t, err)
	once := feed.Rows()

	_, err = feed.Apply(ev)
	require.NoError(t, err)
	twice := feed.Rows()

	assert.Equal(t, once, twice)
}

func TestFeed_UpdateForMissedInsertTreatedAsInsert(t *testing.T) {
	feed := NewFeed(nil)

	b := makeBooking("accepted")
	changed, err := feed.Apply(mustBookingEvent(t, KindUpdate, &b))

	require.NoError(t, err)
	assert.True(t, changed)

	rows := feed.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, b.ID, rows[0].ID)
	assert.Equal(t, "accepted", rows[0].Status)
}

func TestFeed_DeleteRemovesByID(t *testing.T) {
	a := makeBooking("pending")
	b := makeBooking("pending")
	feed := NewFeed([]models.Booking{a, b})

	changed, err := feed.Apply(ChangeEvent{Kind: KindDelete, Table: TableBookings, ID: a.ID})
	require.NoError(t, err)
	assert.True(t, changed)

	rows := feed.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, b.ID, rows[0].ID)

	// deleting an unknown id is a no-op
	changed, err = feed.Apply(ChangeEvent{Kind: KindDelete, Table: TableBookings, ID: uuid.New()})
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestFeed_IgnoresOtherTables(t *testing.T) {
	feed := NewFeed(nil)

	n := models.Notification{ID: uuid.New(), RecipientID: uuid.New(), Type: models.NotificationNewBooking}
	ev, err := NotificationEvent(KindInsert, &n)
	require.NoError(t, err)

	changed, err := feed.Apply(ev)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 0, feed.Len())
}
