package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"fms/entities"
	invsvc "fms/pkg/inventory/service"
	"fms/pkg/middleware"
	"fms/pkg/schedule/repository"
	"fms/pkg/schedule/service"
)

type SchedCtrl struct {
	repo repository.ScheduleRepository
	svc  service.ScheduleService
}

func New(repo repository.ScheduleRepository, svc service.ScheduleService) *SchedCtrl {
	return &SchedCtrl{repo: repo, svc: svc}
}

func (h *SchedCtrl) List(c echo.Context) error {
	return h.list(c, nil)
}

func (h *SchedCtrl) Today(c echo.Context) error {
	now := time.Now()
	return h.list(c, &now)
}

func (h *SchedCtrl) list(c echo.Context, on *time.Time) error {
	u := middleware.CurrentUser(c)
	status := c.QueryParam("status")

	farmerID := ""
	switch u.Role {
	case entities.RoleOwner:
	case entities.RoleFarmer:
		farmerID = u.ID
	default:
		return c.JSON(http.StatusForbidden, map[string]string{"error": "not authorized"})
	}
	out, err := h.repo.List(farmerID, status, on)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

type completeReq struct {
	Notes string `json:"notes"`
}

func (h *SchedCtrl) Complete(c echo.Context) error {
	u := middleware.CurrentUser(c)
	taskID := c.Param("id")

	var req completeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}

	// Farmers may only complete tasks on plots assigned to them.
	if u.Role == entities.RoleFarmer {
		ok, err := h.repo.FarmerAssigned(u.ID, taskID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		if !ok {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "not authorized to complete this task"})
		}
	} else if u.Role != entities.RoleOwner {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "not authorized"})
	}

	err := h.svc.Complete(taskID, u.ID, req.Notes)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "task not found"})
	case errors.Is(err, service.ErrAlreadyCompleted):
		return c.JSON(http.StatusConflict, map[string]string{"error": "task already completed"})
	case errors.Is(err, invsvc.ErrInsufficientInventory):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "insufficient inventory"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Task completed"})
}
