package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"fms/entities"
	"fms/pkg/farm/repository"
	"fms/pkg/middleware"
)

type FarmCtrl struct{ repo repository.FarmRepository }

func New(repo repository.FarmRepository) *FarmCtrl { return &FarmCtrl{repo} }

type createReq struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (h *FarmCtrl) Create(c echo.Context) error {
	u := middleware.CurrentUser(c)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f := &entities.Farm{Name: req.Name, OwnerID: u.ID, Location: req.Location, Description: req.Description}
	if err := h.repo.Create(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FarmCtrl) List(c echo.Context) error {
	u := middleware.CurrentUser(c)
	var (
		out []entities.Farm
		err error
	)
	switch u.Role {
	case entities.RoleOwner:
		out, err = h.repo.ListByOwner(u.ID)
	case entities.RoleFarmer:
		out, err = h.repo.ListForFarmer(u.ID)
	default:
		out, err = h.repo.ListForSubscriber(u.ID)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if out == nil {
		out = []entities.Farm{}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FarmCtrl) Get(c echo.Context) error {
	f, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "farm not found"})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) Delete(c echo.Context) error {
	u := middleware.CurrentUser(c)
	f, err := h.repo.FindByID(c.Param("id"))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "farm not found"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if f.OwnerID != u.ID {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "not authorized"})
	}
	if err := h.repo.Delete(f.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Farm deleted successfully"})
}
