package models

// WorkingDay é um dia de funcionamento. Position guarda a ordem em que o dono
// cadastrou os dias, que é a ordem do relatório de disponibilidade.
type WorkingDay struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	BarbershopID uint   `gorm:"index;not null" json:"-"`
	Weekday      string `gorm:"size:10;not null" json:"weekday"`
	Position     int    `gorm:"not null" json:"-"`
}
