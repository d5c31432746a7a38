package reservation

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/infra/memory"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
	"github.com/BruksfildServices01/barber-turnos/internal/timezone"
)

// quarta-feira, 14/10/2026, 21:00 UTC
var wednesdayNight = time.Date(2026, 10, 14, 21, 0, 0, 0, time.UTC)

var (
	client      = domain.Principal{UserID: 10, Kind: domain.KindClient}
	otherClient = domain.Principal{UserID: 11, Kind: domain.KindClient}
	admin       = domain.Principal{UserID: 1, Kind: domain.KindAdmin}
)

func newShop(store *memory.Store, days ...string) models.Barbershop {
	wd := make([]models.WorkingDay, len(days))
	for i, d := range days {
		wd[i] = models.WorkingDay{Weekday: d, Position: i}
	}
	return store.PutBarbershop(models.Barbershop{
		UserID:         50,
		Name:           "Barbería Centro",
		Timezone:       "UTC",
		OpeningTime:    "08:00",
		ClosingTime:    "20:00",
		MaxSlotsPerDay: 12,
		WorkingDays:    wd,
		Active:         true,
	})
}

func ownerOf(shop models.Barbershop) domain.Principal {
	return domain.Principal{UserID: shop.UserID, Kind: domain.KindBarbershop, BarbershopID: shop.ID}
}

func at(t time.Time) timezone.Clock { return timezone.FixedClock{T: t} }

// racingRepo simula a corrida perdida: a checagem prévia sempre diz livre.
type racingRepo struct {
	*memory.Store
}

func (racingRepo) IsSlotReserved(context.Context, uint, time.Time, int, uint) (bool, error) {
	return false, nil
}

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}
