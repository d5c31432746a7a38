package schedule

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

// Weekday é o dia da semana no vocabulário do domínio (monday..sunday).
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

var ErrInvalidWeekday = httperr.ErrBusinessField(
	"invalid_weekday",
	"weekday",
	"Dia da semana inválido.",
)

func (w Weekday) String() string {
	if !w.Valid() {
		return ""
	}
	return weekdayNames[w]
}

func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

// ParseWeekday aceita apenas os nomes canônicos.
// Apelidos de outros idiomas são resolvidos na borda HTTP.
func ParseWeekday(name string) (Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, wn := range weekdayNames {
		if wn == n {
			return Weekday(i), nil
		}
	}
	return 0, ErrInvalidWeekday
}

// FromTime converte time.Weekday (domingo = 0) para Weekday (segunda = 0).
func FromTime(d time.Weekday) Weekday {
	return Weekday((int(d) + 6) % 7)
}

func (w Weekday) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

func (w *Weekday) UnmarshalText(b []byte) error {
	parsed, err := ParseWeekday(string(b))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
