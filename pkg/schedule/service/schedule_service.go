package service

import (
	"errors"

	"fms/entities"
)

// ErrAlreadyCompleted means the status-conditioned update matched no pending
// row: the task was completed before. Nothing is deducted twice.
var ErrAlreadyCompleted = errors.New("task already completed")

type ScheduleService interface {
	// GenerateForInstance derives the care task calendar for a freshly
	// planted instance from its plant's requirement profile. At-most-once
	// per instance is the caller's responsibility.
	GenerateForInstance(inst *entities.PlantInstance) error
	// Complete transitions a pending task to completed, deducting matching
	// inventory and recording an audit entry, all-or-nothing.
	Complete(taskID, performedBy, notes string) error
}
