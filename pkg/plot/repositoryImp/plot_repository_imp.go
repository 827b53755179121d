package repositoryImp

import (
	"gorm.io/gorm"

	"fms/entities"
	"fms/pkg/plot/repository"
)

type plotRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlotRepository { return &plotRepo{db} }

func (r *plotRepo) Create(p *entities.Plot) error { return r.db.Create(p).Error }

func (r *plotRepo) FindByID(id string) (*entities.Plot, error) {
	var p entities.Plot
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plotRepo) List(farmID string) ([]entities.Plot, error) {
	q := r.db.Order("created_at ASC")
	if farmID != "" {
		q = q.Where("farm_id = ?", farmID)
	}
	var out []entities.Plot
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *plotRepo) Delete(id string) error {
	return r.db.Delete(&entities.Plot{}, "id = ?", id).Error
}

func (r *plotRepo) OwnerOf(plotID string) (string, error) {
	var ownerID string
	err := r.db.Model(&entities.Plot{}).
		Select("farms.owner_id").
		Joins("JOIN farms ON farms.id = plots.farm_id").
		Where("plots.id = ?", plotID).
		Scan(&ownerID).Error
	if err != nil {
		return "", err
	}
	if ownerID == "" {
		return "", gorm.ErrRecordNotFound
	}
	return ownerID, nil
}
