package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Farm struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `json:"name"`
	OwnerID     string    `gorm:"index;size:36" json:"owner_id"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (f *Farm) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

type Plot struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	FarmID    string    `gorm:"index;size:36" json:"farm_id"`
	Name      string    `json:"name"`
	AreaSqm   *float64  `json:"area_sqm"`
	SoilType  string    `json:"soil_type"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *Plot) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
