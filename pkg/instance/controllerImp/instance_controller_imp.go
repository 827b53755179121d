package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"fms/pkg/instance/service"
)

type InstCtrl struct{ svc service.InstanceService }

func New(svc service.InstanceService) *InstCtrl { return &InstCtrl{svc} }

type createReq struct {
	PlotID    string `json:"plot_id"`
	PlantID   string `json:"plant_id"`
	PlantedOn string `json:"planted_on"`
	Count     int    `json:"count"`
}

func (h *InstCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	plantedOn, err := time.Parse("2006-01-02", req.PlantedOn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "planted_on must be YYYY-MM-DD"})
	}
	if req.Count <= 0 {
		req.Count = 1
	}
	v, err := h.svc.Create(req.PlotID, req.PlantID, plantedOn, req.Count)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "plot or plant not found"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *InstCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.QueryParam("plot_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InstCtrl) Get(c echo.Context) error {
	v, err := h.svc.Get(c.Param("id"))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "plant instance not found"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, v)
}
