package reservation

import (
	"context"
	"errors"
	"sort"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-turnos/internal/dto"
	"github.com/BruksfildServices01/barber-turnos/internal/timezone"
)

type ListMine struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListMine(repo domain.Repository, clock timezone.Clock) *ListMine {
	return &ListMine{repo: repo, clock: clock}
}

// Execute: admin vê tudo, barbearia vê as suas, cliente vê as próprias.
// Ordenado por data e turno.
func (uc *ListMine) Execute(ctx context.Context, principal domain.Principal) ([]dto.ReservationListDTO, error) {
	var filter domain.ListFilter
	switch principal.Kind {
	case domain.KindAdmin:
	case domain.KindBarbershop:
		id := principal.BarbershopID
		filter.BarbershopID = &id
	case domain.KindClient:
		id := principal.UserID
		filter.ClientID = &id
	default:
		return nil, domain.ErrForbidden
	}

	rows, err := uc.repo.ListReservations(ctx, filter)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		return rows[i].SlotNumber < rows[j].SlotNumber
	})

	configs := make(map[uint]*schedule.Config)
	out := make([]dto.ReservationListDTO, 0, len(rows))
	for _, r := range rows {
		cfg, ok := configs[r.BarbershopID]
		if !ok {
			cfg, err = uc.scheduleFor(ctx, r.BarbershopID)
			if err != nil {
				return nil, err
			}
			configs[r.BarbershopID] = cfg
		}

		view := dto.ReservationListDTO{
			ID:           r.ID,
			BarbershopID: r.BarbershopID,
			ClientID:     r.ClientID,
			Date:         r.Date.Format("2006-01-02"),
			Weekday:      schedule.FromTime(r.Date.Weekday()).String(),
			SlotNumber:   r.SlotNumber,
			Status:       r.Status,
		}
		if cfg != nil {
			if rng, err := cfg.SlotRange(r.SlotNumber); err == nil {
				view.TimeRange = rng.Label()
			}
		}
		out = append(out, view)
	}

	return out, nil
}

// scheduleFor devolve nil quando a barbearia sumiu ou foi desativada;
// a reserva ainda é listada, só que sem horário.
func (uc *ListMine) scheduleFor(ctx context.Context, barbershopID uint) (*schedule.Config, error) {
	sc, err := loadShop(ctx, uc.repo, uc.clock, barbershopID)
	if errors.Is(err, domain.ErrBarbershopNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sc.cfg, nil
}
