package repositoryImp

import (
	"fms/entities"
	"fms/pkg/inventory/repository"

	"gorm.io/gorm"
)

type invRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.InventoryRepository { return &invRepo{db} }

func (r *invRepo) Create(item *entities.InventoryItem) error { return r.db.Create(item).Error }

func (r *invRepo) List() ([]entities.InventoryItem, error) {
	var out []entities.InventoryItem
	if err := r.db.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *invRepo) FindByID(id string) (*entities.InventoryItem, error) {
	var item entities.InventoryItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// LowStock returns items at or below their reorder level (boundary inclusive).
func (r *invRepo) LowStock() ([]entities.InventoryItem, error) {
	var out []entities.InventoryItem
	if err := r.db.Where("quantity <= reorder_level").Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *invRepo) Transactions(itemID string) ([]entities.InventoryTransaction, error) {
	var out []entities.InventoryTransaction
	q := r.db.Order("created_at ASC")
	if itemID != "" {
		q = q.Where("inventory_id = ?", itemID)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
