package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"fms/entities"
	"fms/pkg/inventory/repository"
	"fms/pkg/inventory/service"
)

type InvCtrl struct {
	repo repository.InventoryRepository
	svc  service.InventoryService
}

func New(repo repository.InventoryRepository, svc service.InventoryService) *InvCtrl {
	return &InvCtrl{repo: repo, svc: svc}
}

type createReq struct {
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	Quantity     float64 `json:"quantity"`
	ReorderLevel float64 `json:"reorder_level"`
}

func (h *InvCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" || req.Unit == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and unit are required"})
	}
	if req.Quantity < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "quantity cannot be negative"})
	}
	item := &entities.InventoryItem{Name: req.Name, Unit: req.Unit, Quantity: req.Quantity, ReorderLevel: req.ReorderLevel}
	if err := h.repo.Create(item); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *InvCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

type adjustReq struct {
	Quantity float64 `json:"quantity"` // signed delta
	Reason   string  `json:"reason"`
}

func (h *InvCtrl) Adjust(c echo.Context) error {
	var req adjustReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	newQty, err := h.svc.Adjust(c.Param("id"), req.Quantity, req.Reason)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "inventory item not found"})
	case errors.Is(err, service.ErrInsufficientInventory):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "insufficient inventory"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Inventory updated", "new_quantity": newQty})
}

func (h *InvCtrl) LowStock(c echo.Context) error {
	out, err := h.repo.LowStock()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InvCtrl) Transactions(c echo.Context) error {
	out, err := h.repo.Transactions(c.QueryParam("item_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
