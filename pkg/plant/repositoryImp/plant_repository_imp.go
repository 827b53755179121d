package repositoryImp

import (
	"gorm.io/gorm"

	"fms/entities"
	"fms/pkg/plant/repository"
)

type plantRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantRepository { return &plantRepo{db} }

func (r *plantRepo) CreatePlant(p *entities.Plant) error { return r.db.Create(p).Error }

func (r *plantRepo) ListPlants() ([]entities.Plant, error) {
	var out []entities.Plant
	if err := r.db.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *plantRepo) FindPlant(id string) (*entities.Plant, error) {
	var p entities.Plant
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plantRepo) CreateCycle(c *entities.GrowthCycle) error { return r.db.Create(c).Error }

func (r *plantRepo) ListCycles() ([]entities.GrowthCycle, error) {
	var out []entities.GrowthCycle
	if err := r.db.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *plantRepo) CreateRequirement(req *entities.PlantRequirement) error {
	return r.db.Create(req).Error
}

func (r *plantRepo) ListRequirements() ([]entities.PlantRequirement, error) {
	var out []entities.PlantRequirement
	if err := r.db.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
