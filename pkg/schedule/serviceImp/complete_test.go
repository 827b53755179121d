package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fms/entities"
	invsvc "fms/pkg/inventory/service"
	"fms/pkg/schedule/service"
)

func pendingTask(t *testing.T, db *gorm.DB, taskType, unit string, qty *float64) *entities.ScheduleTask {
	t.Helper()
	task := &entities.ScheduleTask{
		PlantInstanceID:  "inst-1",
		TaskType:         taskType,
		ScheduledFor:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:           entities.TaskPending,
		QuantityRequired: qty,
		Unit:             unit,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

func stockItem(t *testing.T, db *gorm.DB, name, unit string, qty float64) *entities.InventoryItem {
	t.Helper()
	item := &entities.InventoryItem{Name: name, Unit: unit, Quantity: qty, ReorderLevel: 0}
	require.NoError(t, db.Create(item).Error)
	return item
}

func TestCompleteDeductsInventory(t *testing.T) {
	db := openTestDB(t)
	svc := newSvc(db)
	task := pendingTask(t, db, "water", "ml", f(250))
	item := stockItem(t, db, "Well water", "ml", 1000)

	require.NoError(t, svc.Complete(task.ID, "farmer-1", "done before noon"))

	var gotItem entities.InventoryItem
	require.NoError(t, db.First(&gotItem, "id = ?", item.ID).Error)
	assert.Equal(t, 750.0, gotItem.Quantity)

	var txns []entities.InventoryTransaction
	require.NoError(t, db.Find(&txns).Error)
	require.Len(t, txns, 1)
	assert.Equal(t, -250.0, txns[0].Change)
	assert.Equal(t, "Task completion: water", txns[0].Reason)
	require.NotNil(t, txns[0].ScheduleID)
	assert.Equal(t, task.ID, *txns[0].ScheduleID)

	var gotTask entities.ScheduleTask
	require.NoError(t, db.First(&gotTask, "id = ?", task.ID).Error)
	assert.Equal(t, entities.TaskCompleted, gotTask.Status)
	assert.Equal(t, "done before noon", gotTask.CompletionNotes)

	var entries []entities.TaskChecklist
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, task.ID, entries[0].ScheduleID)
	assert.Equal(t, "farmer-1", entries[0].PerformedBy)
}

func TestCompleteInsufficientInventoryRollsBack(t *testing.T) {
	db := openTestDB(t)
	svc := newSvc(db)
	task := pendingTask(t, db, "water", "ml", f(500))
	item := stockItem(t, db, "Well water", "ml", 100)

	err := svc.Complete(task.ID, "farmer-1", "")
	require.ErrorIs(t, err, invsvc.ErrInsufficientInventory)

	// nothing moved: status, stock, ledger, checklist all untouched
	var gotTask entities.ScheduleTask
	require.NoError(t, db.First(&gotTask, "id = ?", task.ID).Error)
	assert.Equal(t, entities.TaskPending, gotTask.Status)

	var gotItem entities.InventoryItem
	require.NoError(t, db.First(&gotItem, "id = ?", item.ID).Error)
	assert.Equal(t, 100.0, gotItem.Quantity)

	var n int64
	db.Model(&entities.InventoryTransaction{}).Count(&n)
	assert.Zero(t, n)
	db.Model(&entities.TaskChecklist{}).Count(&n)
	assert.Zero(t, n)
}

func TestCompleteNoMatchingUnitSkipsDeduction(t *testing.T) {
	db := openTestDB(t)
	svc := newSvc(db)
	task := pendingTask(t, db, "spray", "l", f(2))
	stockItem(t, db, "Well water", "ml", 1000) // different unit

	require.NoError(t, svc.Complete(task.ID, "owner-1", "no stock tracked"))

	var gotTask entities.ScheduleTask
	require.NoError(t, db.First(&gotTask, "id = ?", task.ID).Error)
	assert.Equal(t, entities.TaskCompleted, gotTask.Status)

	var n int64
	db.Model(&entities.InventoryTransaction{}).Count(&n)
	assert.Zero(t, n)
	db.Model(&entities.TaskChecklist{}).Count(&n)
	assert.Equal(t, int64(1), n)
}

func TestCompleteWithoutQuantityTouchesNoInventory(t *testing.T) {
	db := openTestDB(t)
	svc := newSvc(db)
	task := pendingTask(t, db, "observe", "", nil)
	stockItem(t, db, "Well water", "ml", 1000)

	require.NoError(t, svc.Complete(task.ID, "farmer-1", ""))

	var gotItem entities.InventoryItem
	require.NoError(t, db.First(&gotItem, "unit = ?", "ml").Error)
	assert.Equal(t, 1000.0, gotItem.Quantity)
}

func TestCompleteTwiceDeductsOnce(t *testing.T) {
	db := openTestDB(t)
	svc := newSvc(db)
	task := pendingTask(t, db, "water", "ml", f(100))
	item := stockItem(t, db, "Well water", "ml", 1000)

	require.NoError(t, svc.Complete(task.ID, "farmer-1", ""))
	err := svc.Complete(task.ID, "farmer-2", "")
	require.ErrorIs(t, err, service.ErrAlreadyCompleted)

	var gotItem entities.InventoryItem
	require.NoError(t, db.First(&gotItem, "id = ?", item.ID).Error)
	assert.Equal(t, 900.0, gotItem.Quantity)

	var n int64
	db.Model(&entities.TaskChecklist{}).Count(&n)
	assert.Equal(t, int64(1), n)
}

func TestCompleteUnknownTask(t *testing.T) {
	db := openTestDB(t)
	svc := newSvc(db)

	err := svc.Complete("no-such-task", "farmer-1", "")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCompletePicksFirstItemByUnit(t *testing.T) {
	db := openTestDB(t)
	svc := newSvc(db)
	task := pendingTask(t, db, "water", "ml", f(100))
	first := &entities.InventoryItem{Name: "Tank A", Unit: "ml", Quantity: 500,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	second := &entities.InventoryItem{Name: "Tank B", Unit: "ml", Quantity: 500,
		CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, db.Create(first).Error)
	require.NoError(t, db.Create(second).Error)

	require.NoError(t, svc.Complete(task.ID, "farmer-1", ""))

	var a, b entities.InventoryItem
	require.NoError(t, db.First(&a, "id = ?", first.ID).Error)
	require.NoError(t, db.First(&b, "id = ?", second.ID).Error)
	assert.Equal(t, 400.0, a.Quantity)
	assert.Equal(t, 500.0, b.Quantity)
}
