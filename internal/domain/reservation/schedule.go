package reservation

import (
	"fmt"
	"sort"

	"github.com/BruksfildServices01/barber-turnos/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

// ScheduleFromShop monta a configuração de funcionamento gravada na barbearia.
func ScheduleFromShop(shop *models.Barbershop) (schedule.Config, error) {
	opening, err := schedule.ParseTimeOfDay(shop.OpeningTime)
	if err != nil {
		return schedule.Config{}, fmt.Errorf("barbershop %d opening time: %w", shop.ID, err)
	}
	closing, err := schedule.ParseTimeOfDay(shop.ClosingTime)
	if err != nil {
		return schedule.Config{}, fmt.Errorf("barbershop %d closing time: %w", shop.ID, err)
	}

	rows := make([]models.WorkingDay, len(shop.WorkingDays))
	copy(rows, shop.WorkingDays)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })

	days := make([]schedule.Weekday, 0, len(rows))
	for _, wd := range rows {
		d, err := schedule.ParseWeekday(wd.Weekday)
		if err != nil {
			return schedule.Config{}, fmt.Errorf("barbershop %d working day %q: %w", shop.ID, wd.Weekday, err)
		}
		days = append(days, d)
	}

	return schedule.NewConfig(days, opening, closing, shop.MaxSlotsPerDay)
}

// ApplySchedule grava cfg nos campos da barbearia, substituindo os dias.
func ApplySchedule(shop *models.Barbershop, cfg schedule.Config) {
	shop.OpeningTime = cfg.Opening().String()
	shop.ClosingTime = cfg.Closing().String()
	shop.MaxSlotsPerDay = cfg.MaxSlotsPerDay()

	days := cfg.WorkingDays()
	shop.WorkingDays = make([]models.WorkingDay, len(days))
	for i, d := range days {
		shop.WorkingDays[i] = models.WorkingDay{
			BarbershopID: shop.ID,
			Weekday:      d.String(),
			Position:     i,
		}
	}
}
