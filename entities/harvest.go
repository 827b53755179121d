package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Harvest struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	PlantInstanceID string    `gorm:"index;size:36" json:"plant_instance_id"`
	HarvestDate     time.Time `json:"harvest_date"`
	WeightKg        float64   `json:"weight_kg"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

func (h *Harvest) BeforeCreate(*gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
