package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryItem struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `json:"name"`
	Unit         string    `gorm:"index" json:"unit"`
	Quantity     float64   `json:"quantity"`
	ReorderLevel float64   `json:"reorder_level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

func (i *InventoryItem) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// InventoryTransaction is append-only; one row per quantity mutation.
type InventoryTransaction struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	InventoryID string    `gorm:"index;size:36" json:"inventory_id"`
	Change      float64   `json:"change"` // signed delta
	Reason      string    `json:"reason"`
	ScheduleID  *string   `gorm:"size:36" json:"schedule_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (t *InventoryTransaction) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
