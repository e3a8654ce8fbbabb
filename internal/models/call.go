package models

import "time"

type Call struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:150;not null" json:"title"`
	Description string `gorm:"size:255" json:"description"`

	Status string `gorm:"size:20;default:'ABERTO'" json:"status"`

	// Cached sum of the CallService price snapshots; written on create and
	// on service-set replacement, never recomputed on read.
	TotalValue float64 `json:"total_value"`

	ClientID uint `json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	TechnicianID uint `json:"technician_id"`
	Technician   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"technician"`

	Services []CallService `gorm:"constraint:OnDelete:CASCADE;" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
