package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

var ErrSlotOutOfRange = httperr.ErrBusinessField(
	"slot_out_of_range",
	"slot_number",
	"Turno fora do limite permitido.",
)

const day = 24 * time.Hour

// SlotRange é o intervalo de um turno. StartOffset/EndOffset são medidos a
// partir da meia-noite do dia de abertura e podem passar de 24h.
type SlotRange struct {
	Start       TimeOfDay
	End         TimeOfDay
	StartOffset time.Duration
	EndOffset   time.Duration
}

// Label no formato "HH:MM - HH:MM".
func (r SlotRange) Label() string {
	return fmt.Sprintf("%s - %s", r.Start, r.End)
}

func (r SlotRange) String() string { return r.Label() }

// ComputeSlotRange divide o expediente em maxSlots turnos iguais e devolve o
// intervalo do turno slotNumber (1-based). Fechamento <= abertura significa
// que a barbearia fecha no dia seguinte.
func ComputeSlotRange(opening, closing TimeOfDay, maxSlots, slotNumber int) (SlotRange, error) {
	if maxSlots < 1 || slotNumber < 1 || slotNumber > maxSlots {
		return SlotRange{}, ErrSlotOutOfRange.WithMessage(
			fmt.Sprintf("O turno solicitado excede o máximo permitido (%d).", maxSlots),
		)
	}

	openAt := time.Duration(opening.Minutes()) * time.Minute
	closeAt := time.Duration(closing.Minutes()) * time.Minute
	if closeAt <= openAt {
		closeAt += day
	}

	totalMinutes := (closeAt - openAt).Minutes()
	slotMinutes := totalMinutes / float64(maxSlots)

	start := openAt + boundary(slotMinutes, slotNumber-1)
	end := openAt + boundary(slotMinutes, slotNumber)

	return SlotRange{
		Start:       wallClock(start),
		End:         wallClock(end),
		StartOffset: start,
		EndOffset:   end,
	}, nil
}

// boundary é o deslocamento do k-ésimo limite de turno, arredondado ao
// microssegundo para que turnos consecutivos se encostem exatamente.
func boundary(slotMinutes float64, k int) time.Duration {
	micros := math.Round(slotMinutes * float64(k) * 60 * 1e6)
	return time.Duration(micros) * time.Microsecond
}

func wallClock(d time.Duration) TimeOfDay {
	d = d % day
	minutes := int(d / time.Minute)
	return TimeOfDay{Hour: minutes / 60, Minute: minutes % 60}
}
