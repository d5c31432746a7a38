package reservation

import (
	"context"
	"errors"
	"log"

	"github.com/BruksfildServices01/barber-turnos/internal/audit"
	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
	"github.com/BruksfildServices01/barber-turnos/internal/timezone"
)

// UpdateInput: campos nil não são alterados.
type UpdateInput struct {
	Principal     domain.Principal
	ReservationID uint

	BarbershopID *uint
	ClientID     *uint
	SlotNumber   *int
	Weekday      *string
	Status       *string
}

type Update struct {
	repo  domain.Repository
	clock timezone.Clock
	audit *audit.Dispatcher
}

func NewUpdate(
	repo domain.Repository,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *Update {
	return &Update{
		repo:  repo,
		clock: clock,
		audit: audit,
	}
}

func (uc *Update) Execute(ctx context.Context, in UpdateInput) (*models.Reservation, error) {
	current, err := uc.repo.GetReservation(ctx, in.ReservationID)
	if err != nil {
		return nil, err
	}

	if !in.Principal.CanManage(current) {
		return nil, domain.ErrForbidden
	}

	if in.BarbershopID != nil && *in.BarbershopID != current.BarbershopID {
		return nil, httperr.ErrBusinessField(
			domain.ErrImmutableField.Code,
			"barbershop_id",
			"A barbearia de uma reserva não pode ser alterada.",
		)
	}
	if in.ClientID != nil && *in.ClientID != current.ClientID {
		return nil, httperr.ErrBusinessField(
			domain.ErrImmutableField.Code,
			"client_id",
			"O cliente de uma reserva não pode ser alterado.",
		)
	}

	sc, err := loadShop(ctx, uc.repo, uc.clock, current.BarbershopID)
	if err != nil {
		return nil, err
	}

	// Trabalha numa cópia: em caso de erro a reserva original fica intacta.
	next := *current
	moved := false

	if in.SlotNumber != nil {
		if _, err := sc.cfg.SlotRange(*in.SlotNumber); err != nil {
			return nil, err
		}
		moved = moved || *in.SlotNumber != current.SlotNumber
		next.SlotNumber = *in.SlotNumber
	}

	if in.Weekday != nil {
		date, weekday, err := sc.resolver.NextDateForWeekday(*in.Weekday)
		if err != nil {
			return nil, err
		}
		if !sc.cfg.WorksOn(weekday) {
			return nil, domain.ErrNotWorkingDay
		}
		moved = moved || !date.Equal(current.Date)
		next.Date = date
	}

	if in.Status != nil {
		to, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		if err := domain.CanTransition(domain.Status(current.Status), to); err != nil {
			return nil, err
		}
		if to == domain.StatusCancelled && current.Status != string(domain.StatusCancelled) {
			now := uc.clock.Now()
			next.CancelledAt = &now
		}
		next.Status = string(to)
	}

	if moved && next.Status == string(domain.StatusReserved) {
		taken, err := uc.repo.IsSlotReserved(ctx, next.BarbershopID, next.Date, next.SlotNumber, next.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrSlotTaken
		}
	}

	if in.Weekday != nil && sc.pastClosingToday(next.Date) {
		return nil, domain.ErrPastClosingToday
	}

	if err := uc.repo.UpdateReservation(ctx, &next); err != nil {
		if errors.Is(err, domain.ErrStoreConflict) {
			log.Printf("reservation %d update lost race: date=%s slot=%d",
				next.ID, next.Date.Format("2006-01-02"), next.SlotNumber)
			return nil, domain.ErrSlotTaken
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: next.BarbershopID,
		UserID:       &in.Principal.UserID,
		Action:       "reservation_updated",
		Entity:       "reservation",
		EntityID:     &next.ID,
		Metadata: map[string]any{
			"date":        next.Date.Format("2006-01-02"),
			"slot_number": next.SlotNumber,
			"status":      next.Status,
		},
	})

	return &next, nil
}
