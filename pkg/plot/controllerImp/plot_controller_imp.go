package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"fms/entities"
	farmrepo "fms/pkg/farm/repository"
	"fms/pkg/middleware"
	"fms/pkg/plot/repository"
)

type PlotCtrl struct {
	repo  repository.PlotRepository
	farms farmrepo.FarmRepository
}

func New(repo repository.PlotRepository, farms farmrepo.FarmRepository) *PlotCtrl {
	return &PlotCtrl{repo: repo, farms: farms}
}

type createReq struct {
	FarmID   string   `json:"farm_id"`
	Name     string   `json:"name"`
	AreaSqm  *float64 `json:"area_sqm"`
	SoilType string   `json:"soil_type"`
}

func (h *PlotCtrl) Create(c echo.Context) error {
	u := middleware.CurrentUser(c)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	farm, err := h.farms.FindByID(req.FarmID)
	if err != nil || farm.OwnerID != u.ID {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "not authorized"})
	}
	p := &entities.Plot{FarmID: req.FarmID, Name: req.Name, AreaSqm: req.AreaSqm, SoilType: req.SoilType}
	if err := h.repo.Create(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PlotCtrl) List(c echo.Context) error {
	out, err := h.repo.List(c.QueryParam("farm_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlotCtrl) Get(c echo.Context) error {
	p, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "plot not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlotCtrl) Delete(c echo.Context) error {
	u := middleware.CurrentUser(c)
	ownerID, err := h.repo.OwnerOf(c.Param("id"))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "plot not found"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if ownerID != u.ID {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "not authorized"})
	}
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Plot deleted successfully"})
}
