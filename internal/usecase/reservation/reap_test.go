package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/infra/memory"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

type fakeLock struct {
	held     bool
	err      error
	released int
}

func (l *fakeLock) TryLock(context.Context, string) (func(), bool, error) {
	if l.err != nil {
		return nil, false, l.err
	}
	if l.held {
		return nil, false, nil
	}
	l.held = true
	return func() { l.held = false; l.released++ }, true, nil
}

type fakeArchiver struct {
	rows []models.Reservation
	err  error
}

func (a *fakeArchiver) Archive(_ context.Context, runID string, _ time.Time, rows []models.Reservation) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.rows = append(a.rows, rows...)
	return "reaped/" + runID + ".json", nil
}

type brokenStaleStore struct{}

func (brokenStaleStore) ListStale(context.Context, time.Time) ([]models.Reservation, error) {
	return nil, nil
}

func (brokenStaleStore) DeleteStale(context.Context, time.Time) (int64, error) {
	return 3, errors.New("connection refused")
}

func seedReservations(t *testing.T, store *memory.Store, dates ...string) {
	t.Helper()
	for i, d := range dates {
		status := domain.StatusReserved
		if i%2 == 1 {
			status = domain.StatusCancelled
		}
		require.NoError(t, store.CreateReservation(context.Background(), &models.Reservation{
			BarbershopID: 1, ClientID: 2, SlotNumber: i + 1, Date: date(d), Status: string(status),
		}))
	}
}

func TestReapIsIdempotent(t *testing.T) {
	store := memory.New()
	seedReservations(t, store, "2026-10-10", "2026-10-12", "2026-10-13", "2026-10-14", "2026-10-20")
	uc := NewReap(store, nil, nil, nil, nil)
	asOf := time.Date(2026, 10, 14, 15, 0, 0, 0, time.UTC)

	first, err := uc.Execute(context.Background(), asOf)
	require.NoError(t, err)
	assert.Equal(t, int64(3), first.Deleted)
	assert.Equal(t, "2026-10-14", first.AsOf)
	assert.NotEmpty(t, first.RunID)

	second, err := uc.Execute(context.Background(), asOf)
	require.NoError(t, err)
	assert.Zero(t, second.Deleted)

	left, _ := store.ListReservations(context.Background(), domain.ListFilter{})
	assert.Len(t, left, 2)
}

func TestReapArchivesBeforeDeleting(t *testing.T) {
	store := memory.New()
	seedReservations(t, store, "2026-10-01", "2026-10-02", "2026-11-01")
	archiver := &fakeArchiver{}

	res, err := NewReap(store, nil, archiver, nil, nil).Execute(context.Background(), date("2026-10-18"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Deleted)
	assert.Len(t, archiver.rows, 2)
	assert.Contains(t, res.ArchiveKey, res.RunID)
}

func TestReapArchiveFailureDeletesNothing(t *testing.T) {
	store := memory.New()
	seedReservations(t, store, "2026-10-01")

	res, err := NewReap(store, nil, &fakeArchiver{err: errors.New("s3 down")}, nil, nil).
		Execute(context.Background(), date("2026-10-18"))
	require.Error(t, err)
	assert.Zero(t, res.Deleted)

	left, _ := store.ListStale(context.Background(), date("2026-10-18"))
	assert.Len(t, left, 1)
}

func TestReapSkipsWhenLocked(t *testing.T) {
	store := memory.New()
	seedReservations(t, store, "2026-10-01")
	lock := &fakeLock{held: true}

	res, err := NewReap(store, lock, nil, nil, nil).Execute(context.Background(), date("2026-10-18"))
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Zero(t, res.Deleted)

	lock.held = false
	res, err = NewReap(store, lock, nil, nil, nil).Execute(context.Background(), date("2026-10-18"))
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, int64(1), res.Deleted)
	assert.Equal(t, 1, lock.released)
	assert.False(t, lock.held)
}

func TestReapLockErrorFailsRun(t *testing.T) {
	_, err := NewReap(memory.New(), &fakeLock{err: errors.New("redis down")}, nil, nil, nil).
		Execute(context.Background(), date("2026-10-18"))
	assert.Error(t, err)
}

func TestReapStoreFailureReportsZero(t *testing.T) {
	res, err := NewReap(brokenStaleStore{}, nil, nil, nil, nil).Execute(context.Background(), date("2026-10-18"))
	require.Error(t, err)
	assert.Zero(t, res.Deleted)
}
