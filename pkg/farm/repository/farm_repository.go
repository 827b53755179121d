package repository

import "fms/entities"

type FarmRepository interface {
	Create(f *entities.Farm) error
	FindByID(id string) (*entities.Farm, error)
	ListByOwner(ownerID string) ([]entities.Farm, error)
	// ListForFarmer resolves farms through plot assignments.
	ListForFarmer(farmerID string) ([]entities.Farm, error)
	// ListForSubscriber resolves farms through plot subscriptions.
	ListForSubscriber(subscriberID string) ([]entities.Farm, error)
	Delete(id string) error
}
