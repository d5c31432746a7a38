package reservation

import (
	"errors"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

var (
	ErrNotWorkingDay = httperr.ErrBusinessField(
		"not_working_day",
		"weekday",
		"A barbearia não atende neste dia.",
	)
	ErrSlotTaken = httperr.ErrBusinessField(
		"slot_taken",
		"slot_number",
		"Este turno já está reservado.",
	)
	ErrPastClosingToday = httperr.ErrBusinessField(
		"past_closing_today",
		"weekday",
		"A barbearia já encerrou o expediente de hoje.",
	)
	ErrImmutableField = httperr.ErrBusinessField(
		"immutable_field",
		"",
		"Este campo não pode ser alterado.",
	)
	ErrForbidden = httperr.ErrBusinessField(
		"forbidden",
		"",
		"Você não tem permissão para esta reserva.",
	)
	ErrBarbershopCannotBook = httperr.ErrBusinessField(
		"barbershop_cannot_book",
		"",
		"Barbearias não podem reservar turnos.",
	)
	ErrBarbershopNotFound = httperr.ErrBusinessField(
		"barbershop_not_found",
		"barbershop_id",
		"Barbearia não encontrada.",
	)
	ErrReservationNotFound = httperr.ErrBusinessField(
		"reservation_not_found",
		"",
		"Reserva não encontrada.",
	)
	ErrInvalidState = httperr.ErrBusinessField(
		"invalid_state",
		"status",
		"Transição de status inválida.",
	)
)

// ErrStoreConflict é devolvido pelo repositório quando a escrita viola a
// unicidade de turno reservado. Não sai da camada de casos de uso.
var ErrStoreConflict = errors.New("reservation: store conflict")
