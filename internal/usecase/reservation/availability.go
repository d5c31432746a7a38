package reservation

import (
	"context"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-turnos/internal/timezone"
)

type FreeSlot struct {
	SlotNumber int    `json:"slot_number"`
	TimeRange  string `json:"time_range"`
}

type DayAvailability struct {
	Date    string     `json:"date"`
	Weekday string     `json:"weekday"`
	Slots   []FreeSlot `json:"slots"`
}

type ListAvailability struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListAvailability(repo domain.Repository, clock timezone.Clock) *ListAvailability {
	return &ListAvailability{repo: repo, clock: clock}
}

// Execute lista os turnos livres de cada dia de funcionamento, começando
// por hoje quando hoje é dia de funcionamento.
func (uc *ListAvailability) Execute(ctx context.Context, barbershopID uint) ([]DayAvailability, error) {
	sc, err := loadShop(ctx, uc.repo, uc.clock, barbershopID)
	if err != nil {
		return nil, err
	}

	today := sc.resolver.Today()
	days := sc.cfg.RotateFrom(schedule.FromTime(today.Weekday()))

	out := make([]DayAvailability, 0, len(days))
	for _, d := range days {
		date := schedule.NextDate(d, today)

		reserved, err := uc.repo.ReservedSlots(ctx, barbershopID, date)
		if err != nil {
			return nil, err
		}
		taken := make(map[int]bool, len(reserved))
		for _, n := range reserved {
			taken[n] = true
		}

		day := DayAvailability{
			Date:    date.Format("2006-01-02"),
			Weekday: d.String(),
			Slots:   []FreeSlot{},
		}
		for n := 1; n <= sc.cfg.MaxSlotsPerDay(); n++ {
			if taken[n] {
				continue
			}
			rng, err := sc.cfg.SlotRange(n)
			if err != nil {
				return nil, err
			}
			day.Slots = append(day.Slots, FreeSlot{SlotNumber: n, TimeRange: rng.Label()})
		}
		out = append(out, day)
	}

	return out, nil
}
