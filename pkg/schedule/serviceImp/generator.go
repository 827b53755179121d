package serviceImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"fms/entities"
)

// genWindowDays is the horizon the generator fills at planting time.
const genWindowDays = 30

// genRule maps one requirement field to a task series. Extending coverage to
// the remaining requirement fields is a new table entry, not new code.
// TODO: map the remaining amendments (dashagavya, jeevamrutha, vermicompost,
// cowpat, ...) once inventory units for them are settled.
type genRule struct {
	taskType string
	unit     string
	offsets  []int
	pick     func(*entities.PlantRequirement) *float64
}

var genRules = []genRule{
	{taskType: "water", unit: "ml", offsets: dailyOffsets(genWindowDays),
		pick: func(r *entities.PlantRequirement) *float64 { return r.WaterMinMl }},
	{taskType: "fertilizer", unit: "ml", offsets: []int{0, 7, 14, 21, 28},
		pick: func(r *entities.PlantRequirement) *float64 { return r.GoKrupaMlWeekly }},
	{taskType: "spray", unit: "l", offsets: []int{30},
		pick: func(r *entities.PlantRequirement) *float64 { return r.PanchagavyaLMonthly }},
}

func dailyOffsets(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// GenerateForInstance bulk-inserts the pending task calendar for a new
// planting. Plants without a requirement profile produce nothing.
func (s *SchedSvc) GenerateForInstance(inst *entities.PlantInstance) error {
	var plant entities.Plant
	if err := s.db.First(&plant, "id = ?", inst.PlantID).Error; err != nil {
		return err
	}
	if plant.RequirementID == nil {
		return nil
	}
	var req entities.PlantRequirement
	if err := s.db.First(&req, "id = ?", *plant.RequirementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	planted := midnight(inst.PlantedOn)
	var tasks []entities.ScheduleTask
	for _, rule := range genRules {
		qty := rule.pick(&req)
		if qty == nil {
			continue
		}
		for _, off := range rule.offsets {
			q := *qty
			tasks = append(tasks, entities.ScheduleTask{
				PlantInstanceID:  inst.ID,
				TaskType:         rule.taskType,
				ScheduledFor:     planted.AddDate(0, 0, off),
				Status:           entities.TaskPending,
				QuantityRequired: &q,
				Unit:             rule.unit,
			})
		}
	}
	return s.repo.BulkInsert(tasks)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
