package serviceImp

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"fms/entities"
	"fms/pkg/growth"
	"fms/pkg/instance/repository"
	"fms/pkg/instance/service"
	schedsvc "fms/pkg/schedule/service"
)

type InstSvc struct {
	db    *gorm.DB
	repo  repository.InstanceRepository
	sched schedsvc.ScheduleService
}

func New(db *gorm.DB, repo repository.InstanceRepository, sched schedsvc.ScheduleService) *InstSvc {
	return &InstSvc{db: db, repo: repo, sched: sched}
}

// Create persists the planting and then generates its care schedule once.
// Generation failures are logged, never surfaced: a planting must not fail
// because its calendar could not be written.
func (s *InstSvc) Create(plotID, plantID string, plantedOn time.Time, count int) (*service.View, error) {
	var plot entities.Plot
	if err := s.db.First(&plot, "id = ?", plotID).Error; err != nil {
		return nil, err
	}
	var plant entities.Plant
	if err := s.db.First(&plant, "id = ?", plantID).Error; err != nil {
		return nil, err
	}

	inst := &entities.PlantInstance{
		PlotID:    plotID,
		PlantID:   plantID,
		PlantedOn: plantedOn,
		Count:     count,
		Status:    "active",
	}
	if err := s.repo.Create(inst); err != nil {
		return nil, err
	}

	if err := s.sched.GenerateForInstance(inst); err != nil {
		log.Printf("[instance] schedule generation failed for %s: %v", inst.ID, err)
	}

	return s.decorate(inst, &plant), nil
}

func (s *InstSvc) Get(id string) (*service.View, error) {
	inst, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.decorate(inst, nil), nil
}

func (s *InstSvc) List(plotID string) ([]service.View, error) {
	insts, err := s.repo.List(plotID)
	if err != nil {
		return nil, err
	}
	out := make([]service.View, 0, len(insts))
	for i := range insts {
		out = append(out, *s.decorate(&insts[i], nil))
	}
	return out, nil
}

// decorate recomputes the growth status from the plant's cycle. Stored
// snapshots are never trusted; this runs on every read.
func (s *InstSvc) decorate(inst *entities.PlantInstance, plant *entities.Plant) *service.View {
	v := &service.View{PlantInstance: *inst}

	if plant == nil {
		var p entities.Plant
		if err := s.db.First(&p, "id = ?", inst.PlantID).Error; err != nil {
			return v
		}
		plant = &p
	}
	if plant.GrowthCycleID == nil {
		return v
	}
	var cycle entities.GrowthCycle
	if err := s.db.First(&cycle, "id = ?", *plant.GrowthCycleID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[instance] load growth cycle %s: %v", *plant.GrowthCycleID, err)
		}
		return v
	}

	st := growth.Compute(&cycle, inst.PlantedOn, time.Now())
	if st != nil {
		v.CurrentGrowthStage = &st.Stage
		v.DaysSincePlanting = &st.DaysSince
		v.ExpectedHarvestDate = &st.ExpectedHarvest
	}
	return v
}
