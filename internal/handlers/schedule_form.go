package handlers

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/barber-turnos/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

// ScheduleRequest é o horário completo enviado pelo dono. Substitui o anterior.
type ScheduleRequest struct {
	WorkingDays    []string `json:"working_days"`
	OpeningTime    string   `json:"opening_time"`
	ClosingTime    string   `json:"closing_time"`
	MaxSlotsPerDay int      `json:"max_slots_per_day"`
}

// Chaves indexadas do formulário, p.ex. horario[0][days][1]=martes.
var (
	horarioKey = regexp.MustCompile(`^horario\[(\d+)\]\[(days|turnos_max)\](?:\[(\d+)\])?$`)
	daysKey    = regexp.MustCompile(`^working_days\[(\d+)\]$`)
)

type indexedDay struct {
	index int
	order int
	name  string
}

// parseScheduleForm converte um formulário (multipart ou urlencoded) com
// chaves indexadas em ScheduleRequest. Os dias seguem o índice numérico,
// não a ordem de chegada dos campos.
func parseScheduleForm(form url.Values) (ScheduleRequest, error) {
	var req ScheduleRequest
	var days []indexedDay
	horarios := map[int]bool{}

	// ordem estável entre execuções
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		values := form[key]

		switch key {
		case "opening_time", "openingTime":
			req.OpeningTime = first(values)
			continue
		case "closing_time", "closingTime":
			req.ClosingTime = first(values)
			continue
		case "max_slots_per_day":
			n, err := atoiField(first(values))
			if err != nil {
				return req, err
			}
			req.MaxSlotsPerDay = n
			continue
		case "working_days":
			for i, v := range values {
				days = append(days, indexedDay{index: 0, order: i, name: v})
			}
			continue
		}

		if m := daysKey.FindStringSubmatch(key); m != nil {
			j, _ := strconv.Atoi(m[1])
			days = append(days, indexedDay{order: j, name: first(values)})
			continue
		}

		m := horarioKey.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		i, _ := strconv.Atoi(m[1])
		horarios[i] = true

		switch m[2] {
		case "turnos_max":
			n, err := atoiField(first(values))
			if err != nil {
				return req, err
			}
			req.MaxSlotsPerDay = n
		case "days":
			if m[3] != "" {
				j, _ := strconv.Atoi(m[3])
				days = append(days, indexedDay{index: i, order: j, name: first(values)})
				continue
			}
			for j, v := range values {
				days = append(days, indexedDay{index: i, order: j, name: v})
			}
		}
	}

	if len(horarios) > 1 {
		return req, schedule.ErrInvalidSchedule.WithMessage(
			"O horário deve ter um único objeto com todos os dias.",
		)
	}

	sort.SliceStable(days, func(a, b int) bool {
		if days[a].index != days[b].index {
			return days[a].index < days[b].index
		}
		return days[a].order < days[b].order
	})
	for _, d := range days {
		if name := strings.TrimSpace(d.name); name != "" {
			req.WorkingDays = append(req.WorkingDays, name)
		}
	}

	return req, nil
}

// toConfig valida o pedido e monta a configuração do domínio.
func (req ScheduleRequest) toConfig() (schedule.Config, error) {
	days := make([]schedule.Weekday, 0, len(req.WorkingDays))
	for _, name := range req.WorkingDays {
		d, err := schedule.ParseWeekday(canonicalWeekday(name))
		if err != nil {
			return schedule.Config{}, err
		}
		days = append(days, d)
	}

	opening, err := schedule.ParseTimeOfDay(req.OpeningTime)
	if err != nil {
		return schedule.Config{}, invalidTime("opening_time")
	}
	closing, err := schedule.ParseTimeOfDay(req.ClosingTime)
	if err != nil {
		return schedule.Config{}, invalidTime("closing_time")
	}

	return schedule.NewConfig(days, opening, closing, req.MaxSlotsPerDay)
}

func invalidTime(field string) error {
	return httperr.ErrBusinessField(
		schedule.ErrInvalidSchedule.Code,
		field,
		"Formato de hora inválido. Use HH:MM ou HH:MM:SS.",
	)
}

func atoiField(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, httperr.ErrBusinessField(
			schedule.ErrInvalidSchedule.Code,
			"max_slots_per_day",
			"O número máximo de turnos deve ser um inteiro.",
		)
	}
	return n, nil
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
