package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"fms/entities"
	"fms/pkg/schedule/repository"
)

type schedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ScheduleRepository { return &schedRepo{db} }

func (r *schedRepo) BulkInsert(tasks []entities.ScheduleTask) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.Create(&tasks).Error
}

func (r *schedRepo) FindByID(id string) (*entities.ScheduleTask, error) {
	var t entities.ScheduleTask
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *schedRepo) FarmerAssigned(farmerID, taskID string) (bool, error) {
	var n int64
	err := r.db.Model(&entities.ScheduleTask{}).
		Joins("JOIN plant_instances ON plant_instances.id = schedule_tasks.plant_instance_id").
		Joins("JOIN farmer_assignments ON farmer_assignments.plot_id = plant_instances.plot_id").
		Where("schedule_tasks.id = ? AND farmer_assignments.farmer_id = ?", taskID, farmerID).
		Count(&n).Error
	return n > 0, err
}

func (r *schedRepo) List(farmerID, status string, on *time.Time) ([]entities.ScheduleTask, error) {
	q := r.db.Model(&entities.ScheduleTask{})
	if farmerID != "" {
		q = q.Joins("JOIN plant_instances ON plant_instances.id = schedule_tasks.plant_instance_id").
			Joins("JOIN farmer_assignments ON farmer_assignments.plot_id = plant_instances.plot_id").
			Where("farmer_assignments.farmer_id = ?", farmerID)
	}
	if status != "" {
		q = q.Where("schedule_tasks.status = ?", status)
	}
	if on != nil {
		day := time.Date(on.Year(), on.Month(), on.Day(), 0, 0, 0, 0, time.UTC)
		q = q.Where("schedule_tasks.scheduled_for >= ? AND schedule_tasks.scheduled_for < ?", day, day.AddDate(0, 0, 1))
	}
	var out []entities.ScheduleTask
	if err := q.Order("schedule_tasks.scheduled_for ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
