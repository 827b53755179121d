package repository

import "fms/entities"

type HarvestRepository interface {
	Create(h *entities.Harvest) error
	List(instanceID string) ([]entities.Harvest, error)
}
