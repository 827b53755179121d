package growth

import (
	"time"

	"fms/entities"
)

const (
	StageGermination = "germination"
	StageVegetative  = "vegetative"
	StageFlowering   = "flowering"
	StageFruiting    = "fruiting"
)

type Status struct {
	Stage           string    `json:"current_growth_stage"`
	DaysSince       int       `json:"days_since_planting"`
	ExpectedHarvest time.Time `json:"expected_harvest_date"`
}

// Compute derives the phenological status of a planting at a reference date.
// Stage boundaries are cumulative and inclusive at each threshold; fruiting
// is terminal, including past TotalGrowthDays. A nil cycle means the plant
// has no stage tracking and yields a nil status. plantedOn after today is
// tolerated (negative DaysSince, stage germination).
func Compute(cycle *entities.GrowthCycle, plantedOn, today time.Time) *Status {
	if cycle == nil {
		return nil
	}
	days := int(midnight(today).Sub(midnight(plantedOn)).Hours() / 24)

	var stage string
	switch {
	case days <= cycle.GerminationDays:
		stage = StageGermination
	case days <= cycle.GerminationDays+cycle.VegetativeDays:
		stage = StageVegetative
	case days <= cycle.GerminationDays+cycle.VegetativeDays+cycle.FloweringDays:
		stage = StageFlowering
	default:
		stage = StageFruiting
	}

	return &Status{
		Stage:           stage,
		DaysSince:       days,
		ExpectedHarvest: midnight(plantedOn).AddDate(0, 0, cycle.TotalGrowthDays),
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
