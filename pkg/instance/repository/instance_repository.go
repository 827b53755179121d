package repository

import "fms/entities"

type InstanceRepository interface {
	Create(inst *entities.PlantInstance) error
	FindByID(id string) (*entities.PlantInstance, error)
	List(plotID string) ([]entities.PlantInstance, error)
}
