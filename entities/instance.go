package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlantInstance is one concrete planting of a plant in a plot. Growth fields
// (stage, days since planting, expected harvest) are derived on every read
// from the plant's growth cycle and are never persisted here.
type PlantInstance struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	PlotID    string    `gorm:"index;size:36" json:"plot_id"`
	PlantID   string    `gorm:"index;size:36" json:"plant_id"`
	PlantedOn time.Time `json:"planted_on"`
	Count     int       `json:"count"`
	Status    string    `json:"status"` // active|removed
	CreatedAt time.Time `json:"created_at"`
}

func (p *PlantInstance) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
