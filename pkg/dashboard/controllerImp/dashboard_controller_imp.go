package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"fms/entities"
	"fms/pkg/middleware"
)

type DashCtrl struct{ db *gorm.DB }

func New(db *gorm.DB) *DashCtrl { return &DashCtrl{db} }

// Stats summarizes the caller's slice of the system by role.
func (h *DashCtrl) Stats(c echo.Context) error {
	u := middleware.CurrentUser(c)
	stats := map[string]int64{}

	switch u.Role {
	case entities.RoleOwner:
		var farms, plots, active, lowStock int64
		h.db.Model(&entities.Farm{}).Where("owner_id = ?", u.ID).Count(&farms)
		h.db.Model(&entities.Plot{}).Count(&plots)
		h.db.Model(&entities.PlantInstance{}).Where("status = ?", "active").Count(&active)
		h.db.Model(&entities.InventoryItem{}).Where("quantity <= reorder_level").Count(&lowStock)
		stats["total_farms"] = farms
		stats["total_plots"] = plots
		stats["active_plantings"] = active
		stats["low_stock_items"] = lowStock

	case entities.RoleFarmer:
		var assigned, today int64
		h.db.Model(&entities.FarmerAssignment{}).Where("farmer_id = ?", u.ID).Count(&assigned)
		now := time.Now().UTC()
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		h.db.Model(&entities.ScheduleTask{}).
			Joins("JOIN plant_instances ON plant_instances.id = schedule_tasks.plant_instance_id").
			Joins("JOIN farmer_assignments ON farmer_assignments.plot_id = plant_instances.plot_id").
			Where("farmer_assignments.farmer_id = ?", u.ID).
			Where("schedule_tasks.status = ?", entities.TaskPending).
			Where("schedule_tasks.scheduled_for >= ? AND schedule_tasks.scheduled_for < ?", day, day.AddDate(0, 0, 1)).
			Count(&today)
		stats["assigned_plots"] = assigned
		stats["tasks_today"] = today

	case entities.RoleSubscriber:
		var subs int64
		h.db.Model(&entities.Subscription{}).
			Where("subscriber_id = ? AND status = ?", u.ID, "active").Count(&subs)
		stats["active_subscriptions"] = subs
	}

	return c.JSON(http.StatusOK, stats)
}
