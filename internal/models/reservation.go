package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint       `gorm:"not null;index" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientID uint `gorm:"not null;index" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	SlotNumber int       `gorm:"not null" json:"slot_number"`
	Date       time.Time `gorm:"type:date;not null;index" json:"date"`
	Status     string    `gorm:"size:20;default:'reserved';not null" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
