package models

import "time"

type Barbershop struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex" json:"user_id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`
	Timezone string `gorm:"size:64" json:"timezone"`

	// Expediente. Horários em "HH:MM"; fechamento <= abertura vira o dia.
	OpeningTime    string       `gorm:"size:5;not null" json:"opening_time"`
	ClosingTime    string       `gorm:"size:5;not null" json:"closing_time"`
	MaxSlotsPerDay int          `gorm:"not null" json:"max_slots_per_day"`
	WorkingDays    []WorkingDay `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"working_days"`

	Rating float64 `gorm:"default:0" json:"rating"`
	Active bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
