package reservation

import (
	"context"
	"errors"
	"log"

	"github.com/BruksfildServices01/barber-turnos/internal/audit"
	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/metrics"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
	"github.com/BruksfildServices01/barber-turnos/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	Principal    domain.Principal
	BarbershopID uint
	Weekday      string
	SlotNumber   int
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo    domain.Repository
	clock   timezone.Clock
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
}

func NewBook(
	repo domain.Repository,
	clock timezone.Clock,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
) *Book {
	return &Book{
		repo:    repo,
		clock:   clock,
		audit:   audit,
		metrics: metrics,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(ctx context.Context, in BookInput) (*models.Reservation, error) {
	r, err := uc.execute(ctx, in)
	uc.metrics.Booking(outcome(err))
	return r, err
}

func (uc *Book) execute(ctx context.Context, in BookInput) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1. Barbearias não reservam
	// --------------------------------------------------
	if in.Principal.IsBarbershop() {
		return nil, domain.ErrBarbershopCannotBook
	}

	// --------------------------------------------------
	// Barbearia (sempre relida do store)
	// --------------------------------------------------
	sc, err := loadShop(ctx, uc.repo, uc.clock, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Dia -> data
	// --------------------------------------------------
	date, weekday, err := sc.resolver.NextDateForWeekday(in.Weekday)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Dia de funcionamento
	// --------------------------------------------------
	if !sc.cfg.WorksOn(weekday) {
		return nil, domain.ErrNotWorkingDay
	}

	// --------------------------------------------------
	// 4. Limite de turnos
	// --------------------------------------------------
	if _, err := sc.cfg.SlotRange(in.SlotNumber); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Turno livre
	// --------------------------------------------------
	taken, err := uc.repo.IsSlotReserved(ctx, in.BarbershopID, date, in.SlotNumber, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrSlotTaken
	}

	// --------------------------------------------------
	// 6. Expediente de hoje já encerrado
	// --------------------------------------------------
	if sc.pastClosingToday(date) {
		return nil, domain.ErrPastClosingToday
	}

	// --------------------------------------------------
	// 7. Criação
	// --------------------------------------------------
	r := &models.Reservation{
		BarbershopID: in.BarbershopID,
		ClientID:     in.Principal.UserID,
		SlotNumber:   in.SlotNumber,
		Date:         date,
		Status:       string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateReservation(ctx, r); err != nil {
		if errors.Is(err, domain.ErrStoreConflict) {
			log.Printf("booking lost race: barbershop=%d date=%s slot=%d",
				in.BarbershopID, date.Format("2006-01-02"), in.SlotNumber)
			return nil, domain.ErrSlotTaken
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: r.BarbershopID,
		UserID:       &in.Principal.UserID,
		Action:       "reservation_created",
		Entity:       "reservation",
		EntityID:     &r.ID,
		Metadata: map[string]any{
			"date":        r.Date.Format("2006-01-02"),
			"slot_number": r.SlotNumber,
		},
	})

	return r, nil
}
