package repository

import "fms/entities"

type PlotRepository interface {
	Create(p *entities.Plot) error
	FindByID(id string) (*entities.Plot, error)
	List(farmID string) ([]entities.Plot, error)
	Delete(id string) error
	// OwnerOf walks plot → farm → owner.
	OwnerOf(plotID string) (string, error)
}
