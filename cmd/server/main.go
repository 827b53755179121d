package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"fms/config"
	"fms/database"
	"fms/router"

	authCtrlImp "fms/pkg/auth/controllerImp"
	authSvcImp "fms/pkg/auth/serviceImp"

	farmCtrlImp "fms/pkg/farm/controllerImp"
	farmRepoImp "fms/pkg/farm/repositoryImp"

	plotCtrlImp "fms/pkg/plot/controllerImp"
	plotRepoImp "fms/pkg/plot/repositoryImp"

	plantCtrlImp "fms/pkg/plant/controllerImp"
	plantRepoImp "fms/pkg/plant/repositoryImp"

	instCtrlImp "fms/pkg/instance/controllerImp"
	instRepoImp "fms/pkg/instance/repositoryImp"
	instSvcImp "fms/pkg/instance/serviceImp"

	schedCtrlImp "fms/pkg/schedule/controllerImp"
	schedRepoImp "fms/pkg/schedule/repositoryImp"
	schedSvcImp "fms/pkg/schedule/serviceImp"

	invCtrlImp "fms/pkg/inventory/controllerImp"
	invRepoImp "fms/pkg/inventory/repositoryImp"
	invSvcImp "fms/pkg/inventory/serviceImp"

	peopleCtrlImp "fms/pkg/people/controllerImp"
	peopleRepoImp "fms/pkg/people/repositoryImp"

	harvestCtrlImp "fms/pkg/harvest/controllerImp"
	harvestRepoImp "fms/pkg/harvest/repositoryImp"

	dashCtrlImp "fms/pkg/dashboard/controllerImp"
	healthCtrlImp "fms/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Services
	authSvc := authSvcImp.New(db, cfg.JWTSecret, time.Duration(cfg.TokenTTLMin)*time.Minute)

	schedRepo := schedRepoImp.New(db)
	schedSvc := schedSvcImp.New(db, schedRepo)

	invRepo := invRepoImp.New(db)
	invSvc := invSvcImp.New(db)

	instRepo := instRepoImp.New(db)
	instSvc := instSvcImp.New(db, instRepo, schedSvc)

	// 4) Repos/Controllers
	farmRepo := farmRepoImp.New(db)
	plotRepo := plotRepoImp.New(db)
	plantRepo := plantRepoImp.New(db)
	peopleRepo := peopleRepoImp.New(db)
	harvestRepo := harvestRepoImp.New(db)

	ctrl := router.Controllers{
		Auth:      authCtrlImp.New(authSvc),
		Farm:      farmCtrlImp.New(farmRepo),
		Plot:      plotCtrlImp.New(plotRepo, farmRepo),
		Plant:     plantCtrlImp.New(plantRepo),
		Instance:  instCtrlImp.New(instSvc),
		Schedule:  schedCtrlImp.New(schedRepo, schedSvc),
		Inventory: invCtrlImp.New(invRepo, invSvc),
		People:    peopleCtrlImp.New(peopleRepo, plotRepo, authSvc),
		Harvest:   harvestCtrlImp.New(harvestRepo, instRepo),
		Dashboard: dashCtrlImp.New(db),
		Health:    healthCtrlImp.NewHealthCtrl(db),
	}

	// 5) Echo + routes
	e := echo.New()
	r := router.New(e, cfg, db, ctrl)

	// 6) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
