package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"fms/config"
	"fms/entities"
	"fms/pkg/middleware"
)

type AuthCtrl interface {
	Register(echo.Context) error
	Login(echo.Context) error
	Me(echo.Context) error
	ResetPassword(echo.Context) error
	CheckDefaultPassword(echo.Context) error
}

type FarmCtrl interface {
	Create(echo.Context) error
	List(echo.Context) error
	Get(echo.Context) error
	Delete(echo.Context) error
}

type PlotCtrl = FarmCtrl

type PlantCtrl interface {
	CreatePlant(echo.Context) error
	ListPlants(echo.Context) error
	GetPlant(echo.Context) error
	CreateCycle(echo.Context) error
	ListCycles(echo.Context) error
	CreateRequirement(echo.Context) error
	ListRequirements(echo.Context) error
}

type InstanceCtrl interface {
	Create(echo.Context) error
	List(echo.Context) error
	Get(echo.Context) error
}

type ScheduleCtrl interface {
	List(echo.Context) error
	Today(echo.Context) error
	Complete(echo.Context) error
}

type InventoryCtrl interface {
	Create(echo.Context) error
	List(echo.Context) error
	Adjust(echo.Context) error
	LowStock(echo.Context) error
	Transactions(echo.Context) error
	Export(echo.Context) error
}

type PeopleCtrl interface {
	CreateFarmer(echo.Context) error
	ListFarmers(echo.Context) error
	DeleteFarmer(echo.Context) error
	CreateSubscriber(echo.Context) error
	ListSubscribers(echo.Context) error
	DeleteSubscriber(echo.Context) error
	CreateAssignment(echo.Context) error
	ListAssignments(echo.Context) error
	DeleteAssignment(echo.Context) error
	AssignSubscriber(echo.Context) error
	ListSubscriptions(echo.Context) error
	DeleteSubscription(echo.Context) error
}

type HarvestCtrl interface {
	Create(echo.Context) error
	List(echo.Context) error
}

type DashCtrl interface{ Stats(echo.Context) error }

type HealthCtrl interface{ Health(echo.Context) error }

type Controllers struct {
	Auth      AuthCtrl
	Farm      FarmCtrl
	Plot      PlotCtrl
	Plant     PlantCtrl
	Instance  InstanceCtrl
	Schedule  ScheduleCtrl
	Inventory InventoryCtrl
	People    PeopleCtrl
	Harvest   HarvestCtrl
	Dashboard DashCtrl
	Health    HealthCtrl
}

func New(e *echo.Echo, cfg config.AppConfig, db *gorm.DB, ctrl Controllers) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))

	auth := middleware.JWT(cfg.JWTSecret, db)
	owner := middleware.RequireRole(entities.RoleOwner)
	staff := middleware.RequireRole(entities.RoleOwner, entities.RoleFarmer)

	api := e.Group("/api")
	api.GET("/health", ctrl.Health.Health)

	api.POST("/auth/register", ctrl.Auth.Register)
	api.POST("/auth/login", ctrl.Auth.Login)
	api.GET("/auth/me", ctrl.Auth.Me, auth)
	api.POST("/auth/reset-password", ctrl.Auth.ResetPassword, auth)
	api.GET("/auth/check-default-password", ctrl.Auth.CheckDefaultPassword, auth)

	api.POST("/farmers", ctrl.People.CreateFarmer, auth, owner)
	api.GET("/farmers", ctrl.People.ListFarmers, auth, owner)
	api.DELETE("/farmers/:id", ctrl.People.DeleteFarmer, auth, owner)
	api.POST("/subscribers", ctrl.People.CreateSubscriber, auth, owner)
	api.GET("/subscribers", ctrl.People.ListSubscribers, auth, owner)
	api.DELETE("/subscribers/:id", ctrl.People.DeleteSubscriber, auth, owner)

	api.POST("/farmer-assignments", ctrl.People.CreateAssignment, auth, owner)
	api.GET("/farmer-assignments", ctrl.People.ListAssignments, auth, owner)
	api.DELETE("/farmer-assignments/:id", ctrl.People.DeleteAssignment, auth, owner)
	api.POST("/subscriptions/assign", ctrl.People.AssignSubscriber, auth, owner)
	api.GET("/subscriptions", ctrl.People.ListSubscriptions, auth)
	api.DELETE("/subscriptions/:id", ctrl.People.DeleteSubscription, auth, owner)

	api.POST("/farms", ctrl.Farm.Create, auth, owner)
	api.GET("/farms", ctrl.Farm.List, auth)
	api.GET("/farms/:id", ctrl.Farm.Get, auth)
	api.DELETE("/farms/:id", ctrl.Farm.Delete, auth, owner)

	api.POST("/plots", ctrl.Plot.Create, auth, owner)
	api.GET("/plots", ctrl.Plot.List, auth)
	api.GET("/plots/:id", ctrl.Plot.Get, auth)
	api.DELETE("/plots/:id", ctrl.Plot.Delete, auth, owner)

	api.POST("/growth-cycles", ctrl.Plant.CreateCycle, auth, owner)
	api.GET("/growth-cycles", ctrl.Plant.ListCycles, auth)
	api.POST("/plant-requirements", ctrl.Plant.CreateRequirement, auth, owner)
	api.GET("/plant-requirements", ctrl.Plant.ListRequirements, auth)
	api.POST("/plants", ctrl.Plant.CreatePlant, auth, owner)
	api.GET("/plants", ctrl.Plant.ListPlants, auth)
	api.GET("/plants/:id", ctrl.Plant.GetPlant, auth)

	api.POST("/plant-instances", ctrl.Instance.Create, auth, owner)
	api.GET("/plant-instances", ctrl.Instance.List, auth)
	api.GET("/plant-instances/:id", ctrl.Instance.Get, auth)

	api.POST("/inventory", ctrl.Inventory.Create, auth, owner)
	api.GET("/inventory", ctrl.Inventory.List, auth)
	api.GET("/inventory/low-stock", ctrl.Inventory.LowStock, auth, owner)
	api.GET("/inventory/transactions", ctrl.Inventory.Transactions, auth, owner)
	api.GET("/inventory/export", ctrl.Inventory.Export, auth, owner)
	api.PUT("/inventory/:id", ctrl.Inventory.Adjust, auth, owner)

	api.GET("/schedules", ctrl.Schedule.List, auth)
	api.GET("/schedules/today", ctrl.Schedule.Today, auth)
	api.POST("/schedules/:id/complete", ctrl.Schedule.Complete, auth, staff)

	api.POST("/harvests", ctrl.Harvest.Create, auth, staff)
	api.GET("/harvests", ctrl.Harvest.List, auth)

	api.GET("/dashboard/stats", ctrl.Dashboard.Stats, auth)

	return e
}
