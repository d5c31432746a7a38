package reservation

import (
	"context"

	"github.com/BruksfildServices01/barber-turnos/internal/audit"
	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
)

type Delete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDelete(repo domain.Repository, audit *audit.Dispatcher) *Delete {
	return &Delete{repo: repo, audit: audit}
}

func (uc *Delete) Execute(
	ctx context.Context,
	principal domain.Principal,
	reservationID uint,
) error {

	r, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return err
	}

	if !principal.CanManage(r) {
		return domain.ErrForbidden
	}

	if err := uc.repo.DeleteReservation(ctx, r.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: r.BarbershopID,
		UserID:       &principal.UserID,
		Action:       "reservation_deleted",
		Entity:       "reservation",
		EntityID:     &r.ID,
	})

	return nil
}
