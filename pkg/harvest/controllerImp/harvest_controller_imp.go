package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fms/entities"
	"fms/pkg/harvest/repository"
	instrepo "fms/pkg/instance/repository"
)

type HarvestCtrl struct {
	repo      repository.HarvestRepository
	instances instrepo.InstanceRepository
}

func New(repo repository.HarvestRepository, instances instrepo.InstanceRepository) *HarvestCtrl {
	return &HarvestCtrl{repo: repo, instances: instances}
}

type createReq struct {
	PlantInstanceID string  `json:"plant_instance_id"`
	HarvestDate     string  `json:"harvest_date"`
	WeightKg        float64 `json:"weight_kg"`
	Notes           string  `json:"notes"`
}

func (h *HarvestCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	date, err := time.Parse("2006-01-02", req.HarvestDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "harvest_date must be YYYY-MM-DD"})
	}
	if req.WeightKg < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "weight cannot be negative"})
	}
	if _, err := h.instances.FindByID(req.PlantInstanceID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "plant instance not found"})
	}
	rec := &entities.Harvest{
		PlantInstanceID: req.PlantInstanceID,
		HarvestDate:     date,
		WeightKg:        req.WeightKg,
		Notes:           req.Notes,
	}
	if err := h.repo.Create(rec); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *HarvestCtrl) List(c echo.Context) error {
	out, err := h.repo.List(c.QueryParam("plant_instance_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
