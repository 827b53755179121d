package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GrowthCycle holds expected stage durations in days. TotalGrowthDays drives
// the expected harvest date on its own; it is not validated against the
// per-stage sum.
type GrowthCycle struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	GerminationDays int       `json:"germination_days"`
	VegetativeDays  int       `json:"vegetative_days"`
	FloweringDays   int       `json:"flowering_days"`
	FruitingDays    int       `json:"fruiting_days"`
	TotalGrowthDays int       `json:"total_growth_days"`
	CreatedAt       time.Time `json:"-"`
}

func (g *GrowthCycle) BeforeCreate(*gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// PlantRequirement is a sparse nutrient/care profile. A nil field means no
// requirement of that kind. Only a subset is wired to schedule generation.
type PlantRequirement struct {
	ID                  string    `gorm:"primaryKey;size:36" json:"id"`
	WaterMinMl          *float64  `json:"water_min_ml"`
	WaterMaxMl          *float64  `json:"water_max_ml"`
	PanchagavyaLMonthly *float64  `json:"panchagavya_l_per_month"`
	DashagavyaLMonthly  *float64  `json:"dashagavya_l_per_month"`
	JeevamruthaLMonthly *float64  `json:"jeevamrutha_l_per_month"`
	GoKrupaMlWeekly     *float64  `json:"go_krupa_ml_weekly"`
	VermicompostMlMonthly *float64 `json:"vermicompost_ml_monthly"`
	CowpatKgMonthly     *float64  `json:"cowpat_kg_monthly"`
	Spray3gGMonthly     *float64  `json:"spray_3g_g_monthly"`
	MustardGMonthly     *float64  `json:"mustard_g_monthly"`
	PulseLMonthly       *float64  `json:"pulse_l_monthly"`
	ButtermilkMlMonthly *float64  `json:"buttermilk_ml_monthly"`
	BoMlMonthly         *float64  `json:"bo_ml_monthly"`
	FaaMlMonthly        *float64  `json:"faa_ml_monthly"`
	EmMlMonthly         *float64  `json:"em_ml_monthly"`
	CreatedAt           time.Time `json:"-"`
}

func (r *PlantRequirement) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type Plant struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Name           string    `json:"name"`
	ScientificName string    `json:"scientific_name"`
	RequirementID  *string   `gorm:"size:36" json:"requirement_id"`
	GrowthCycleID  *string   `gorm:"size:36" json:"growth_cycle_id"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"-"`
}

func (p *Plant) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
