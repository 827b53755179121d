package repository

import (
	"time"

	"fms/entities"
)

type ScheduleRepository interface {
	BulkInsert(tasks []entities.ScheduleTask) error
	FindByID(id string) (*entities.ScheduleTask, error)
	// List returns tasks, optionally narrowed to a farmer's assigned plots,
	// a status, or a single calendar day.
	List(farmerID, status string, on *time.Time) ([]entities.ScheduleTask, error)
	// FarmerAssigned reports whether the task's plot is assigned to the farmer.
	FarmerAssigned(farmerID, taskID string) (bool, error)
}
