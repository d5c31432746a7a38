package models

import "time"

type Comment struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"not null;uniqueIndex:idx_comment_shop_client" json:"barbershop_id"`
	ClientID     uint `gorm:"not null;uniqueIndex:idx_comment_shop_client" json:"client_id"`

	Rating      int    `gorm:"not null" json:"rating"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
