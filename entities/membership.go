package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FarmerAssignment struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	FarmerID   string    `gorm:"index;size:36" json:"farmer_id"`
	PlotID     string    `gorm:"index;size:36" json:"plot_id"`
	AssignedAt time.Time `gorm:"autoCreateTime" json:"assigned_at"`
}

func (a *FarmerAssignment) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type Subscription struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	SubscriberID string    `gorm:"index;size:36" json:"subscriber_id"`
	PlotID       string    `gorm:"index;size:36" json:"plot_id"`
	Status       string    `json:"status"` // active|cancelled
	CreatedAt    time.Time `json:"created_at"`
}

func (s *Subscription) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
