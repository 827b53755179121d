package repositoryImp

import (
	"gorm.io/gorm"

	"fms/entities"
	"fms/pkg/instance/repository"
)

type instRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.InstanceRepository { return &instRepo{db} }

func (r *instRepo) Create(inst *entities.PlantInstance) error { return r.db.Create(inst).Error }

func (r *instRepo) FindByID(id string) (*entities.PlantInstance, error) {
	var inst entities.PlantInstance
	if err := r.db.First(&inst, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *instRepo) List(plotID string) ([]entities.PlantInstance, error) {
	q := r.db.Order("created_at ASC")
	if plotID != "" {
		q = q.Where("plot_id = ?", plotID)
	}
	var out []entities.PlantInstance
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
