package repositoryImp

import (
	"gorm.io/gorm"

	"fms/entities"
	"fms/pkg/farm/repository"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) Create(f *entities.Farm) error { return r.db.Create(f).Error }

func (r *farmRepo) FindByID(id string) (*entities.Farm, error) {
	var f entities.Farm
	if err := r.db.First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmRepo) ListByOwner(ownerID string) ([]entities.Farm, error) {
	var out []entities.Farm
	if err := r.db.Where("owner_id = ?", ownerID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *farmRepo) ListForFarmer(farmerID string) ([]entities.Farm, error) {
	var out []entities.Farm
	err := r.db.Distinct("farms.*").
		Joins("JOIN plots ON plots.farm_id = farms.id").
		Joins("JOIN farmer_assignments ON farmer_assignments.plot_id = plots.id").
		Where("farmer_assignments.farmer_id = ?", farmerID).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *farmRepo) ListForSubscriber(subscriberID string) ([]entities.Farm, error) {
	var out []entities.Farm
	err := r.db.Distinct("farms.*").
		Joins("JOIN plots ON plots.farm_id = farms.id").
		Joins("JOIN subscriptions ON subscriptions.plot_id = plots.id").
		Where("subscriptions.subscriber_id = ?", subscriberID).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *farmRepo) Delete(id string) error {
	return r.db.Delete(&entities.Farm{}, "id = ?", id).Error
}
