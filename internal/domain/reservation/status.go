package reservation

import (
	"time"

	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusReserved  Status = "reserved"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusReserved, StatusCancelled:
		return Status(s), nil
	}
	return "", ErrInvalidState.WithMessage("Status desconhecido: " + s + ".")
}

func InitialStatus() Status {
	return StatusReserved
}

// ===============================
// Validations
// ===============================

// CanTransition aceita apenas reserved -> cancelled. Manter o status
// atual não é transição e é sempre permitido.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	if from == StatusReserved && to == StatusCancelled {
		return nil
	}
	return ErrInvalidState
}

func CanCancel(current Status) error {
	if current != StatusReserved {
		return ErrInvalidState.WithMessage("A reserva já está cancelada.")
	}
	return nil
}

// ===============================
// Domain Actions
// ===============================

func Cancel(r *models.Reservation, now time.Time) error {
	if err := CanCancel(Status(r.Status)); err != nil {
		return err
	}

	r.Status = string(StatusCancelled)
	r.CancelledAt = &now
	return nil
}
