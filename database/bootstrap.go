package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"fms/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Farm{},
		&entities.Plot{},
		&entities.GrowthCycle{},
		&entities.PlantRequirement{},
		&entities.Plant{},
		&entities.PlantInstance{},
		&entities.ScheduleTask{},
		&entities.TaskChecklist{},
		&entities.InventoryItem{},
		&entities.InventoryTransaction{},
		&entities.Harvest{},
		&entities.FarmerAssignment{},
		&entities.Subscription{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
