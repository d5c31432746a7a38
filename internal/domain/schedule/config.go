package schedule

import (
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

// MaxSlotsLimit é o teto de turnos por dia aceito na configuração.
const MaxSlotsLimit = 100

var ErrInvalidSchedule = httperr.ErrBusinessField(
	"invalid_schedule",
	"schedule",
	"Horário de funcionamento inválido.",
)

// Config descreve o funcionamento de uma barbearia. Imutável depois de criada.
type Config struct {
	workingDays    []Weekday
	opening        TimeOfDay
	closing        TimeOfDay
	maxSlotsPerDay int
}

func NewConfig(days []Weekday, opening, closing TimeOfDay, maxSlots int) (Config, error) {
	if len(days) == 0 {
		return Config{}, ErrInvalidSchedule.WithMessage("Informe ao menos um dia de funcionamento.")
	}

	seen := make(map[Weekday]bool, len(days))
	for _, d := range days {
		if !d.Valid() {
			return Config{}, ErrInvalidWeekday
		}
		if seen[d] {
			return Config{}, ErrInvalidSchedule.WithMessage("Dia de funcionamento repetido: " + d.String() + ".")
		}
		seen[d] = true
	}

	if opening.Equal(closing) {
		return Config{}, httperr.ErrBusinessField(
			ErrInvalidSchedule.Code,
			"opening_time",
			"O horário de abertura não pode ser igual ao de fechamento.",
		)
	}

	if maxSlots < 1 || maxSlots > MaxSlotsLimit {
		return Config{}, httperr.ErrBusinessField(
			ErrInvalidSchedule.Code,
			"max_slots_per_day",
			"O número máximo de turnos deve estar entre 1 e 100.",
		)
	}

	wd := make([]Weekday, len(days))
	copy(wd, days)

	return Config{
		workingDays:    wd,
		opening:        opening,
		closing:        closing,
		maxSlotsPerDay: maxSlots,
	}, nil
}

// WorkingDays devolve os dias na ordem configurada.
func (c Config) WorkingDays() []Weekday {
	out := make([]Weekday, len(c.workingDays))
	copy(out, c.workingDays)
	return out
}

func (c Config) Opening() TimeOfDay  { return c.opening }
func (c Config) Closing() TimeOfDay  { return c.closing }
func (c Config) MaxSlotsPerDay() int { return c.maxSlotsPerDay }

func (c Config) WorksOn(d Weekday) bool {
	for _, w := range c.workingDays {
		if w == d {
			return true
		}
	}
	return false
}

// SlotRange calcula o horário do turno n com os parâmetros desta configuração.
func (c Config) SlotRange(slotNumber int) (SlotRange, error) {
	return ComputeSlotRange(c.opening, c.closing, c.maxSlotsPerDay, slotNumber)
}

// RotateFrom devolve os dias de trabalho começando em today,
// quando today é dia de trabalho; senão a ordem configurada.
func (c Config) RotateFrom(today Weekday) []Weekday {
	days := c.WorkingDays()
	for i, d := range days {
		if d == today {
			out := make([]Weekday, 0, len(days))
			out = append(out, days[i:]...)
			return append(out, days[:i]...)
		}
	}
	return days
}
