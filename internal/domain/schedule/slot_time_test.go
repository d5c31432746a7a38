package schedule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tod(h, m int) TimeOfDay { return TimeOfDay{Hour: h, Minute: m} }

func TestComputeSlotRangeHourlySlots(t *testing.T) {
	first, err := ComputeSlotRange(tod(8, 0), tod(20, 0), 12, 1)
	require.NoError(t, err)
	assert.Equal(t, "08:00 - 09:00", first.Label())

	last, err := ComputeSlotRange(tod(8, 0), tod(20, 0), 12, 12)
	require.NoError(t, err)
	assert.Equal(t, "19:00", last.Start.String())
	assert.Equal(t, "20:00", last.End.String())
}

func TestComputeSlotRangeCrossesMidnight(t *testing.T) {
	r, err := ComputeSlotRange(tod(22, 0), tod(2, 0), 4, 3)
	require.NoError(t, err)
	assert.Equal(t, "00:00 - 01:00", r.Label())

	r, err = ComputeSlotRange(tod(22, 0), tod(2, 0), 4, 4)
	require.NoError(t, err)
	assert.Equal(t, "01:00 - 02:00", r.Label())
	assert.Greater(t, r.EndOffset, r.StartOffset)
}

func TestComputeSlotRangeFractionalDuration(t *testing.T) {
	// 09:00-10:00 em 7 turnos: ~8.57 minutos cada
	r, err := ComputeSlotRange(tod(9, 0), tod(10, 0), 7, 2)
	require.NoError(t, err)
	assert.Equal(t, "09:08 - 09:17", r.Label())

	last, err := ComputeSlotRange(tod(9, 0), tod(10, 0), 7, 7)
	require.NoError(t, err)
	assert.Equal(t, "10:00", last.End.String())
}

func TestComputeSlotRangeRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name     string
		maxSlots int
		slot     int
	}{
		{"zero", 5, 0},
		{"negative", 5, -1},
		{"above max", 5, 6},
		{"no capacity", 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeSlotRange(tod(8, 0), tod(18, 0), tc.maxSlots, tc.slot)
			assert.True(t, errors.Is(err, ErrSlotOutOfRange))
		})
	}
}

func TestComputeSlotRangeTilesOpenInterval(t *testing.T) {
	hours := []TimeOfDay{tod(0, 0), tod(7, 30), tod(8, 0), tod(12, 15), tod(19, 45), tod(23, 59)}
	for _, opening := range hours {
		for _, closing := range hours {
			if opening.Equal(closing) {
				continue
			}
			for maxSlots := 1; maxSlots <= 37; maxSlots++ {
				var prev SlotRange
				for n := 1; n <= maxSlots; n++ {
					r, err := ComputeSlotRange(opening, closing, maxSlots, n)
					require.NoError(t, err)
					require.Less(t, r.StartOffset, r.EndOffset)

					if n == 1 {
						require.Equal(t, opening, r.Start)
					} else {
						require.Equal(t, prev.EndOffset, r.StartOffset)
						require.Equal(t, prev.End, r.Start)
					}
					prev = r
				}
				require.Equal(t, closing, prev.End,
					"opening=%s closing=%s max=%d", opening, closing, maxSlots)
			}
		}
	}
}

func TestComputeSlotRangeDeterministic(t *testing.T) {
	a, _ := ComputeSlotRange(tod(10, 0), tod(19, 0), 11, 5)
	b, _ := ComputeSlotRange(tod(10, 0), tod(19, 0), 11, 5)
	assert.Equal(t, a, b)
}
