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
	schedrepo "fms/pkg/schedule/repositoryImp"
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
		&entities.Plant{},
		&entities.PlantRequirement{},
		&entities.PlantInstance{},
		&entities.ScheduleTask{},
		&entities.TaskChecklist{},
		&entities.InventoryItem{},
		&entities.InventoryTransaction{},
	))
	return db
}

func newSvc(db *gorm.DB) *SchedSvc { return New(db, schedrepo.New(db)) }

func f(v float64) *float64 { return &v }

func plantWithReq(t *testing.T, db *gorm.DB, req *entities.PlantRequirement) *entities.Plant {
	t.Helper()
	require.NoError(t, db.Create(req).Error)
	p := &entities.Plant{Name: "Tomato", RequirementID: &req.ID}
	require.NoError(t, db.Create(p).Error)
	return p
}

func plantedInstance(t *testing.T, db *gorm.DB, plantID string, on time.Time) *entities.PlantInstance {
	t.Helper()
	inst := &entities.PlantInstance{PlotID: "plot-1", PlantID: plantID, PlantedOn: on, Count: 1, Status: "active"}
	require.NoError(t, db.Create(inst).Error)
	return inst
}

func tasksFor(t *testing.T, db *gorm.DB, instanceID string) []entities.ScheduleTask {
	t.Helper()
	var out []entities.ScheduleTask
	require.NoError(t, db.Where("plant_instance_id = ?", instanceID).Order("scheduled_for ASC").Find(&out).Error)
	return out
}

func TestGenerateDailyWater(t *testing.T) {
	db := openTestDB(t)
	svc := newSvc(db)
	planted := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	plant := plantWithReq(t, db, &entities.PlantRequirement{WaterMinMl: f(250)})
	inst := plantedInstance(t, db, plant.ID, planted)
	require.NoError(t, svc.GenerateForInstance(inst))

	tasks := tasksFor(t, db, inst.ID)
	require.Len(t, tasks, 30)
	for i, task := range tasks {
		assert.Equal(t, "water", task.TaskType)
		assert.Equal(t, "ml", task.Unit)
		assert.Equal(t, entities.TaskPending, task.Status)
		require.NotNil(t, task.QuantityRequired)
		assert.Equal(t, 250.0, *task.QuantityRequired)
		assert.Equal(t, planted.AddDate(0, 0, i), task.ScheduledFor)
	}
}

func TestGenerateWeeklyGoKrupa(t *testing.T) {
	db := openTestDB(t)
	svc := newSvc(db)
	planted := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	plant := plantWithReq(t, db, &entities.PlantRequirement{GoKrupaMlWeekly: f(50)})
	inst := plantedInstance(t, db, plant.ID, planted)
	require.NoError(t, svc.GenerateForInstance(inst))

	tasks := tasksFor(t, db, inst.ID)
	require.Len(t, tasks, 5)
	for i, off := range []int{0, 7, 14, 21, 28} {
		assert.Equal(t, "fertilizer", tasks[i].TaskType)
		assert.Equal(t, "ml", tasks[i].Unit)
		assert.Equal(t, planted.AddDate(0, 0, off), tasks[i].ScheduledFor)
	}
}

func TestGenerateMonthlyPanchagavya(t *testing.T) {
	db := openTestDB(t)
	svc := newSvc(db)
	planted := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	plant := plantWithReq(t, db, &entities.PlantRequirement{PanchagavyaLMonthly: f(2)})
	inst := plantedInstance(t, db, plant.ID, planted)
	require.NoError(t, svc.GenerateForInstance(inst))

	tasks := tasksFor(t, db, inst.ID)
	require.Len(t, tasks, 1)
	assert.Equal(t, "spray", tasks[0].TaskType)
	assert.Equal(t, "l", tasks[0].Unit)
	assert.Equal(t, planted.AddDate(0, 0, 30), tasks[0].ScheduledFor)
	require.NotNil(t, tasks[0].QuantityRequired)
	assert.Equal(t, 2.0, *tasks[0].QuantityRequired)
}

func TestGenerateCombinedProfile(t *testing.T) {
	db := openTestDB(t)
	svc := newSvc(db)
	planted := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	plant := plantWithReq(t, db, &entities.PlantRequirement{
		WaterMinMl:          f(100),
		GoKrupaMlWeekly:     f(20),
		PanchagavyaLMonthly: f(1),
	})
	inst := plantedInstance(t, db, plant.ID, planted)
	require.NoError(t, svc.GenerateForInstance(inst))

	assert.Len(t, tasksFor(t, db, inst.ID), 36) // 30 + 5 + 1
}

func TestGenerateUnmappedFieldsProduceNothing(t *testing.T) {
	db := openTestDB(t)
	svc := newSvc(db)

	plant := plantWithReq(t, db, &entities.PlantRequirement{
		DashagavyaLMonthly:    f(3),
		JeevamruthaLMonthly:   f(4),
		VermicompostMlMonthly: f(500),
		CowpatKgMonthly:       f(2),
	})
	inst := plantedInstance(t, db, plant.ID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, svc.GenerateForInstance(inst))

	assert.Empty(t, tasksFor(t, db, inst.ID))
}

func TestGenerateNoRequirementProfile(t *testing.T) {
	db := openTestDB(t)
	svc := newSvc(db)

	p := &entities.Plant{Name: "Wild mint"}
	require.NoError(t, db.Create(p).Error)
	inst := plantedInstance(t, db, p.ID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, svc.GenerateForInstance(inst))
	assert.Empty(t, tasksFor(t, db, inst.ID))
}
