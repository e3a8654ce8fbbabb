package models

import "time"

type CallService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CallID uint `json:"call_id"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Snapshot of Service.Price at attach time; may diverge from the
	// service's current price.
	Price    float64 `json:"price"`
	Quantity int     `gorm:"default:1" json:"quantity"`

	CreatedAt time.Time `json:"created_at"`
}
