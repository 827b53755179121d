package serviceImp

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fms/entities"
	"fms/pkg/growth"
	instrepo "fms/pkg/instance/repositoryImp"
	schedrepo "fms/pkg/schedule/repositoryImp"
	schedsvc "fms/pkg/schedule/serviceImp"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "fms_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&entities.Plot{},
		&entities.Plant{},
		&entities.PlantRequirement{},
		&entities.GrowthCycle{},
		&entities.PlantInstance{},
		&entities.ScheduleTask{},
	))
	return db
}

func newInstSvc(db *gorm.DB) *InstSvc {
	return New(db, instrepo.New(db), schedsvc.New(db, schedrepo.New(db)))
}

func f(v float64) *float64 { return &v }

func seedPlot(t *testing.T, db *gorm.DB) *entities.Plot {
	t.Helper()
	plot := &entities.Plot{FarmID: "farm-1", Name: "North bed"}
	require.NoError(t, db.Create(plot).Error)
	return plot
}

func seedPlant(t *testing.T, db *gorm.DB, req *entities.PlantRequirement, cycle *entities.GrowthCycle) *entities.Plant {
	t.Helper()
	p := &entities.Plant{Name: "Tomato"}
	if req != nil {
		require.NoError(t, db.Create(req).Error)
		p.RequirementID = &req.ID
	}
	if cycle != nil {
		require.NoError(t, db.Create(cycle).Error)
		p.GrowthCycleID = &cycle.ID
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestCreateGeneratesSchedule(t *testing.T) {
	db := openTestDB(t)
	svc := newInstSvc(db)
	plot := seedPlot(t, db)
	plant := seedPlant(t, db, &entities.PlantRequirement{WaterMinMl: f(200)}, nil)
	planted := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	v, err := svc.Create(plot.ID, plant.ID, planted, 3)
	require.NoError(t, err)
	assert.Equal(t, "active", v.Status)
	assert.Equal(t, 3, v.Count)

	var n int64
	require.NoError(t, db.Model(&entities.ScheduleTask{}).
		Where("plant_instance_id = ?", v.ID).Count(&n).Error)
	assert.Equal(t, int64(30), n)
}

func TestCreateUnknownPlotOrPlant(t *testing.T) {
	db := openTestDB(t)
	svc := newInstSvc(db)
	plot := seedPlot(t, db)
	plant := seedPlant(t, db, nil, nil)
	planted := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create("no-such-plot", plant.ID, planted, 1)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = svc.Create(plot.ID, "no-such-plant", planted, 1)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var n int64
	require.NoError(t, db.Model(&entities.PlantInstance{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCreateWithoutRequirementStillSucceeds(t *testing.T) {
	db := openTestDB(t)
	svc := newInstSvc(db)
	plot := seedPlot(t, db)
	plant := seedPlant(t, db, nil, nil)

	v, err := svc.Create(plot.ID, plant.ID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&entities.ScheduleTask{}).
		Where("plant_instance_id = ?", v.ID).Count(&n).Error)
	assert.Zero(t, n)
}

func TestGetComputesGrowthStatus(t *testing.T) {
	db := openTestDB(t)
	svc := newInstSvc(db)
	plot := seedPlot(t, db)
	cycle := &entities.GrowthCycle{
		GerminationDays: 7, VegetativeDays: 21, FloweringDays: 14,
		FruitingDays: 30, TotalGrowthDays: 72,
	}
	plant := seedPlant(t, db, nil, cycle)
	planted := time.Now().UTC().AddDate(0, 0, -5)

	created, err := svc.Create(plot.ID, plant.ID, planted, 1)
	require.NoError(t, err)

	v, err := svc.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, v.CurrentGrowthStage)
	assert.Equal(t, growth.StageGermination, *v.CurrentGrowthStage)
	require.NotNil(t, v.DaysSincePlanting)
	assert.Equal(t, 5, *v.DaysSincePlanting)
	require.NotNil(t, v.ExpectedHarvestDate)
	wantHarvest := time.Date(planted.Year(), planted.Month(), planted.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, 72)
	assert.Equal(t, wantHarvest, *v.ExpectedHarvestDate)
}

func TestGetWithoutCycleLeavesStatusNull(t *testing.T) {
	db := openTestDB(t)
	svc := newInstSvc(db)
	plot := seedPlot(t, db)
	plant := seedPlant(t, db, nil, nil)

	created, err := svc.Create(plot.ID, plant.ID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)

	v, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Nil(t, v.CurrentGrowthStage)
	assert.Nil(t, v.DaysSincePlanting)
	assert.Nil(t, v.ExpectedHarvestDate)
}
