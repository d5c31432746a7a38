package reservation

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
	"github.com/BruksfildServices01/barber-turnos/internal/timezone"
)

// shopContext é a barbearia relida do store junto com o que deriva dela.
type shopContext struct {
	shop     *models.Barbershop
	cfg      schedule.Config
	resolver schedule.Resolver
}

func loadShop(
	ctx context.Context,
	repo domain.Repository,
	clock timezone.Clock,
	barbershopID uint,
) (*shopContext, error) {

	shop, err := repo.GetBarbershop(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	cfg, err := domain.ScheduleFromShop(shop)
	if err != nil {
		return nil, err
	}

	return &shopContext{
		shop:     shop,
		cfg:      cfg,
		resolver: schedule.NewResolver(clock, timezone.Location(shop.Timezone)),
	}, nil
}

// pastClosingToday: date é hoje e o relógio local já passou do horário
// de fechamento. Vale também para quem fecha depois da meia-noite: às
// 10:00 uma barbearia que fecha às 02:00 já encerrou o dia.
func (s *shopContext) pastClosingToday(date time.Time) bool {
	if !date.Equal(s.resolver.Today()) {
		return false
	}
	return s.cfg.Closing().IsPassedBy(s.resolver.Now())
}

// outcome é o rótulo de métrica de um resultado.
func outcome(err error) string {
	if err == nil {
		return "created"
	}
	if be, ok := httperr.AsBusiness(err); ok {
		return be.Code
	}
	return "error"
}
