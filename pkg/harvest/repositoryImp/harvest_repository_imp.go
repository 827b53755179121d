package repositoryImp

import (
	"gorm.io/gorm"

	"fms/entities"
	"fms/pkg/harvest/repository"
)

type harvestRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.HarvestRepository { return &harvestRepo{db} }

func (r *harvestRepo) Create(h *entities.Harvest) error { return r.db.Create(h).Error }

func (r *harvestRepo) List(instanceID string) ([]entities.Harvest, error) {
	q := r.db.Order("harvest_date ASC")
	if instanceID != "" {
		q = q.Where("plant_instance_id = ?", instanceID)
	}
	var out []entities.Harvest
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
