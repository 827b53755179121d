package repository

import "fms/entities"

type InventoryRepository interface {
	Create(item *entities.InventoryItem) error
	List() ([]entities.InventoryItem, error)
	FindByID(id string) (*entities.InventoryItem, error)
	LowStock() ([]entities.InventoryItem, error)
	Transactions(itemID string) ([]entities.InventoryTransaction, error)
}
