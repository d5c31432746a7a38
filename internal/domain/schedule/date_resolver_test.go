package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-turnos/internal/timezone"
)

// 2026-10-14 é uma quarta-feira.
var wednesday = time.Date(2026, 10, 14, 21, 0, 0, 0, time.UTC)

func TestNextDateSameDayIsToday(t *testing.T) {
	got := NextDate(Wednesday, wednesday)
	assert.Equal(t, time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestNextDateWrapsWeek(t *testing.T) {
	cases := map[Weekday]string{
		Thursday:  "2026-10-15",
		Sunday:    "2026-10-18",
		Monday:    "2026-10-19",
		Tuesday:   "2026-10-20",
		Wednesday: "2026-10-14",
	}
	for w, want := range cases {
		t.Run(w.String(), func(t *testing.T) {
			assert.Equal(t, want, NextDate(w, wednesday).Format("2006-01-02"))
		})
	}
}

func TestResolverUsesShopLocation(t *testing.T) {
	// 02:00 UTC de quinta ainda é quarta em Buenos Aires (UTC-3)
	instant := time.Date(2026, 10, 15, 2, 0, 0, 0, time.UTC)
	loc := timezone.Location("America/Argentina/Buenos_Aires")
	r := NewResolver(timezone.FixedClock{T: instant}, loc)

	date, w, err := r.NextDateForWeekday("wednesday")
	require.NoError(t, err)
	assert.Equal(t, Wednesday, w)
	assert.Equal(t, "2026-10-14", date.Format("2006-01-02"))
}

func TestResolverRejectsUnknownWeekday(t *testing.T) {
	r := NewResolver(timezone.FixedClock{T: wednesday}, time.UTC)
	_, _, err := r.NextDateForWeekday("miercoles")
	assert.True(t, errors.Is(err, ErrInvalidWeekday))
}

func TestFromTime(t *testing.T) {
	assert.Equal(t, Monday, FromTime(time.Monday))
	assert.Equal(t, Sunday, FromTime(time.Sunday))
	assert.Equal(t, Saturday, FromTime(time.Saturday))
}

func TestParseWeekday(t *testing.T) {
	w, err := ParseWeekday("  Friday ")
	require.NoError(t, err)
	assert.Equal(t, Friday, w)

	_, err = ParseWeekday("")
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-18")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, d.Location())

	_, err = ParseDate("18/10/2026")
	assert.Error(t, err)
}
