package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/marketplace-api/internal/domain/booking"
	"github.com/BruksfildServices01/marketplace-api/internal/models"
)

// flakySnapshotRepo fails the first N snapshot fetches, then succeeds.
type flakySnapshotRepo struct {
	domain.Repository
	failures int
	calls    int
	rows     []models.Booking
}

func (r *flakySnapshotRepo) ListBookingsForUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	r.calls++
	if r.calls <= r.failures {
		return nil, errors.New("transient fetch failure")
	}
	return r.rows, nil
}

func (r *flakySnapshotRepo) ListBookingsForProvider(ctx context.Context, providerID uuid.UUID) ([]models.Booking, error) {
	return r.ListBookingsForUser(ctx, providerID)
}

func TestFetchSnapshot_RetriesTransientFailures(t *testing.T) {
	repo := &flakySnapshotRepo{
		failures: 2,
		rows:     []models.Booking{{ID: uuid.New()}},
	}

	h := NewEventsHandler(repo, nil)
	h.retry.BaseDelay = time.Millisecond

	snapshot, err := h.fetchSnapshot(context.Background(), uuid.New(), models.RoleUser)
	require.NoError(t, err)
	assert.Len(t, snapshot, 1)
	assert.Equal(t, 3, repo.calls)
}

func TestFetchSnapshot_GivesUpAfterPolicy(t *testing.T) {
	repo := &flakySnapshotRepo{failures: 10}

	h := NewEventsHandler(repo, nil)
	h.retry.BaseDelay = time.Millisecond

	_, err := h.fetchSnapshot(context.Background(), uuid.New(), models.RoleProvider)
	require.Error(t, err)
	assert.Equal(t, h.retry.MaxAttempts, repo.calls)
}
