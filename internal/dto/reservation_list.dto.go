package dto

// ReservationListDTO é a linha de "minhas reservas", já com o horário do turno.
type ReservationListDTO struct {
	ID           uint   `json:"id"`
	BarbershopID uint   `json:"barbershop_id"`
	ClientID     uint   `json:"client_id"`
	Date         string `json:"date"`
	Weekday      string `json:"weekday"`
	SlotNumber   int    `json:"slot_number"`
	TimeRange    string `json:"time_range"`
	Status       string `json:"status"`
}
