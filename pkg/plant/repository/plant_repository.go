package repository

import "fms/entities"

type PlantRepository interface {
	CreatePlant(p *entities.Plant) error
	ListPlants() ([]entities.Plant, error)
	FindPlant(id string) (*entities.Plant, error)
	CreateCycle(c *entities.GrowthCycle) error
	ListCycles() ([]entities.GrowthCycle, error)
	CreateRequirement(r *entities.PlantRequirement) error
	ListRequirements() ([]entities.PlantRequirement, error)
}
