package reservation

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

// ListFilter restringe a listagem. Campos nil não filtram.
type ListFilter struct {
	BarbershopID *uint
	ClientID     *uint
}

type Repository interface {
	// -------- Barbershop --------

	// GetBarbershop devolve ErrBarbershopNotFound para id inexistente ou inativo.
	// Sempre lê do store; perfis não são cacheados.
	GetBarbershop(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	// -------- Slots --------
	ReservedSlots(
		ctx context.Context,
		barbershopID uint,
		date time.Time,
	) ([]int, error)

	// IsSlotReserved ignora a reserva excludeID (0 = nenhuma).
	IsSlotReserved(
		ctx context.Context,
		barbershopID uint,
		date time.Time,
		slotNumber int,
		excludeID uint,
	) (bool, error)

	// -------- Reservation --------

	// CreateReservation devolve ErrStoreConflict se o turno já estiver reservado.
	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	// GetReservation devolve ErrReservationNotFound.
	GetReservation(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	// UpdateReservation devolve ErrStoreConflict como CreateReservation.
	UpdateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	DeleteReservation(
		ctx context.Context,
		id uint,
	) error

	ListReservations(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Reservation, error)
}

// StaleStore é o que o reaper precisa: listar e apagar tudo com data < asOf.
type StaleStore interface {
	ListStale(ctx context.Context, asOf time.Time) ([]models.Reservation, error)
	DeleteStale(ctx context.Context, asOf time.Time) (int64, error)
}
