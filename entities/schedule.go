package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TaskPending   = "pending"
	TaskCompleted = "completed"
)

type ScheduleTask struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	PlantInstanceID  string    `gorm:"index;size:36" json:"plant_instance_id"`
	TaskType         string    `json:"task_type"` // water|fertilizer|spray
	ScheduledFor     time.Time `gorm:"index" json:"scheduled_for"`
	Status           string    `json:"status"` // pending|completed
	QuantityRequired *float64  `json:"quantity_required"`
	Unit             string    `json:"unit"`
	CompletionNotes  string    `json:"completion_notes,omitempty"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

func (t *ScheduleTask) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TaskChecklist is the audit trail of completed tasks.
type TaskChecklist struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ScheduleID  string    `gorm:"index;size:36" json:"schedule_id"`
	PerformedBy string    `gorm:"size:36" json:"performed_by"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *TaskChecklist) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
