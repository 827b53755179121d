package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fms/entities"
	"fms/pkg/plant/repository"
)

type PlantCtrl struct{ repo repository.PlantRepository }

func New(repo repository.PlantRepository) *PlantCtrl { return &PlantCtrl{repo} }

type plantReq struct {
	Name           string  `json:"name"`
	ScientificName string  `json:"scientific_name"`
	RequirementID  *string `json:"requirement_id"`
	GrowthCycleID  *string `json:"growth_cycle_id"`
	Notes          string  `json:"notes"`
}

func (h *PlantCtrl) CreatePlant(c echo.Context) error {
	var req plantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	p := &entities.Plant{
		Name:           req.Name,
		ScientificName: req.ScientificName,
		RequirementID:  req.RequirementID,
		GrowthCycleID:  req.GrowthCycleID,
		Notes:          req.Notes,
	}
	if err := h.repo.CreatePlant(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PlantCtrl) ListPlants(c echo.Context) error {
	out, err := h.repo.ListPlants()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlantCtrl) GetPlant(c echo.Context) error {
	p, err := h.repo.FindPlant(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "plant not found"})
	}
	return c.JSON(http.StatusOK, p)
}

type cycleReq struct {
	GerminationDays int `json:"germination_days"`
	VegetativeDays  int `json:"vegetative_days"`
	FloweringDays   int `json:"flowering_days"`
	FruitingDays    int `json:"fruiting_days"`
	TotalGrowthDays int `json:"total_growth_days"`
}

func (h *PlantCtrl) CreateCycle(c echo.Context) error {
	var req cycleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.GerminationDays < 0 || req.VegetativeDays < 0 || req.FloweringDays < 0 ||
		req.FruitingDays < 0 || req.TotalGrowthDays < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "durations cannot be negative"})
	}
	cycle := &entities.GrowthCycle{
		GerminationDays: req.GerminationDays,
		VegetativeDays:  req.VegetativeDays,
		FloweringDays:   req.FloweringDays,
		FruitingDays:    req.FruitingDays,
		TotalGrowthDays: req.TotalGrowthDays,
	}
	if err := h.repo.CreateCycle(cycle); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, cycle)
}

func (h *PlantCtrl) ListCycles(c echo.Context) error {
	out, err := h.repo.ListCycles()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlantCtrl) CreateRequirement(c echo.Context) error {
	var req entities.PlantRequirement
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	req.ID = ""
	if err := h.repo.CreateRequirement(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, req)
}

func (h *PlantCtrl) ListRequirements(c echo.Context) error {
	out, err := h.repo.ListRequirements()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
