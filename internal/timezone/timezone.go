package timezone

import (
	"sync"
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Argentina/Buenos_Aires"

var (
	defaultMu sync.RWMutex
	defaultTZ = DefaultTimezone
)

// SetDefault troca o timezone usado quando a barbearia não tem um válido.
// Valores inválidos são ignorados.
func SetDefault(tz string) {
	if !IsValid(tz) {
		return
	}
	defaultMu.Lock()
	defaultTZ = tz
	defaultMu.Unlock()
}

func Default() string {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultTZ
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(Default()); err == nil {
		return loc
	}
	return time.UTC
}

// ======================================================
// CLOCK
// ======================================================

// Clock é a única fonte de "agora" do domínio.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock devolve sempre o mesmo instante. Usado em testes.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

func Now(clock Clock) time.Time {
	return clock.Now().In(Location(Default()))
}

func NowIn(clock Clock, tz string) time.Time {
	return clock.Now().In(Location(tz))
}
