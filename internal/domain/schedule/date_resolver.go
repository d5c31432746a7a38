package schedule

import (
	"time"

	"github.com/BruksfildServices01/barber-turnos/internal/timezone"
)

// DateOf devolve a data de calendário de t (no fuso de t) como 00:00 UTC.
// É a representação de datas de reserva em todo o sistema.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate lê "YYYY-MM-DD" como data de calendário.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// NextDate devolve a primeira data >= today que cai em weekday.
// Se today já é weekday, devolve today.
func NextDate(weekday Weekday, today time.Time) time.Time {
	today = DateOf(today)
	offset := (int(weekday) - int(FromTime(today.Weekday())) + 7) % 7
	return today.AddDate(0, 0, offset)
}

// Resolver resolve nomes de dia para datas a partir do "hoje" do relógio,
// no fuso informado.
type Resolver struct {
	Clock    timezone.Clock
	Location *time.Location
}

func NewResolver(clock timezone.Clock, loc *time.Location) Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return Resolver{Clock: clock, Location: loc}
}

func (r Resolver) Now() time.Time {
	return r.Clock.Now().In(r.Location)
}

func (r Resolver) Today() time.Time {
	return DateOf(r.Now())
}

// NextDateForWeekday falha com ErrInvalidWeekday se o nome não for reconhecido.
func (r Resolver) NextDateForWeekday(name string) (time.Time, Weekday, error) {
	w, err := ParseWeekday(name)
	if err != nil {
		return time.Time{}, 0, err
	}
	return NextDate(w, r.Today()), w, nil
}
