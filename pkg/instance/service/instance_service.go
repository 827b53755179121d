package service

import (
	"time"

	"fms/entities"
)

// View is a plant instance with its growth status computed at read time.
// The derived fields are never persisted; a plant without a growth cycle
// leaves them null.
type View struct {
	entities.PlantInstance
	CurrentGrowthStage  *string    `json:"current_growth_stage"`
	DaysSincePlanting   *int       `json:"days_since_planting"`
	ExpectedHarvestDate *time.Time `json:"expected_harvest_date"`
}

type InstanceService interface {
	Create(plotID, plantID string, plantedOn time.Time, count int) (*View, error)
	Get(id string) (*View, error)
	List(plotID string) ([]View, error)
}
