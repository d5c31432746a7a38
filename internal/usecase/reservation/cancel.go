package reservation

import (
	"context"

	"github.com/BruksfildServices01/barber-turnos/internal/audit"
	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
	"github.com/BruksfildServices01/barber-turnos/internal/timezone"
)

type Cancel struct {
	repo  domain.Repository
	clock timezone.Clock
	audit *audit.Dispatcher
}

func NewCancel(
	repo domain.Repository,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *Cancel {
	return &Cancel{
		repo:  repo,
		clock: clock,
		audit: audit,
	}
}

// Execute marca a reserva como cancelada. A linha continua no store
// e o turno fica livre para outra reserva.
func (uc *Cancel) Execute(
	ctx context.Context,
	principal domain.Principal,
	reservationID uint,
) (*models.Reservation, error) {

	r, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if !principal.CanManage(r) {
		return nil, domain.ErrForbidden
	}

	if err := domain.Cancel(r, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: r.BarbershopID,
		UserID:       &principal.UserID,
		Action:       "reservation_cancelled",
		Entity:       "reservation",
		EntityID:     &r.ID,
	})

	return r, nil
}
