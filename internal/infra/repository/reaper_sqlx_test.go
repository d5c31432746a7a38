package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaleQueries(t *testing.T) {
	asOf := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	query, args, err := staleDelete(asOf)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM reservations WHERE date < $1", query)
	assert.Equal(t, []any{"2026-10-18"}, args)

	query, args, err = staleSelect(asOf)
	require.NoError(t, err)
	assert.Contains(t, query, "FROM reservations WHERE date < $1 ORDER BY id ASC")
	assert.Equal(t, []any{"2026-10-18"}, args)
}

func TestReservationRowModel(t *testing.T) {
	cancelled := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	row := reservationRow{
		ID:          4,
		SlotNumber:  2,
		Date:        time.Date(2026, 10, 2, 0, 0, 0, 0, time.FixedZone("ART", -3*3600)),
		Status:      "cancelled",
		CancelledAt: sql.NullTime{Time: cancelled, Valid: true},
	}

	m := row.model()
	assert.Equal(t, uint(4), m.ID)
	require.NotNil(t, m.CancelledAt)
	assert.Equal(t, cancelled, *m.CancelledAt)
	assert.Equal(t, time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC), m.Date)

	row.CancelledAt = sql.NullTime{}
	assert.Nil(t, row.model().CancelledAt)
}
