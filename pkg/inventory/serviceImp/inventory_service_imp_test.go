package serviceImp

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fms/entities"
	invrepo "fms/pkg/inventory/repositoryImp"
	"fms/pkg/inventory/service"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "fms_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	// sqlite allows a single writer; cap the pool so concurrent
	// transactions queue instead of returning SQLITE_BUSY
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&entities.InventoryItem{}, &entities.InventoryTransaction{}))
	return db
}

func seedItem(t *testing.T, db *gorm.DB, name, unit string, qty, reorder float64) *entities.InventoryItem {
	t.Helper()
	item := &entities.InventoryItem{Name: name, Unit: unit, Quantity: qty, ReorderLevel: reorder}
	require.NoError(t, db.Create(item).Error)
	return item
}

func TestAdjustRestockAndConsume(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	item := seedItem(t, db, "Panchagavya", "l", 10, 2)

	newQty, err := svc.Adjust(item.ID, 5, "restock")
	require.NoError(t, err)
	assert.Equal(t, 15.0, newQty)

	newQty, err = svc.Adjust(item.ID, -12.5, "manual decrement")
	require.NoError(t, err)
	assert.Equal(t, 2.5, newQty)

	var txns []entities.InventoryTransaction
	require.NoError(t, db.Where("inventory_id = ?", item.ID).Order("created_at ASC").Find(&txns).Error)
	require.Len(t, txns, 2)
	assert.Equal(t, 5.0, txns[0].Change)
	assert.Equal(t, "restock", txns[0].Reason)
	assert.Equal(t, -12.5, txns[1].Change)
}

func TestAdjustRejectsNegativeResult(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	item := seedItem(t, db, "Water", "ml", 100, 10)

	_, err := svc.Adjust(item.ID, -150, "overdraw")
	require.ErrorIs(t, err, service.ErrInsufficientInventory)

	// no partial write: quantity untouched, no transaction row
	var got entities.InventoryItem
	require.NoError(t, db.First(&got, "id = ?", item.ID).Error)
	assert.Equal(t, 100.0, got.Quantity)
	var n int64
	require.NoError(t, db.Model(&entities.InventoryTransaction{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestAdjustUnknownItem(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)

	_, err := svc.Adjust("no-such-id", 1, "restock")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAdjustConcurrentSameItem(t *testing.T) {
	db := openTestDB(t)
	svc := New(db)
	item := seedItem(t, db, "Go Krupa", "ml", 100, 10)

	// each alone fits, together they would overdraw
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Adjust(item.ID, -70, "concurrent draw")
		}(i)
	}
	wg.Wait()

	okCount, insufficient := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		case assert.ErrorIs(t, err, service.ErrInsufficientInventory):
			insufficient++
		}
	}
	assert.Equal(t, 1, okCount)
	assert.Equal(t, 1, insufficient)

	var got entities.InventoryItem
	require.NoError(t, db.First(&got, "id = ?", item.ID).Error)
	assert.Equal(t, 30.0, got.Quantity)
	assert.GreaterOrEqual(t, got.Quantity, 0.0)
}

func TestLowStockBoundaryInclusive(t *testing.T) {
	db := openTestDB(t)
	repo := invrepo.New(db)

	seedItem(t, db, "At level", "ml", 5, 5)
	seedItem(t, db, "Below level", "l", 1, 5)
	seedItem(t, db, "Above level", "kg", 10, 5)

	low, err := repo.LowStock()
	require.NoError(t, err)
	names := make([]string, 0, len(low))
	for _, it := range low {
		names = append(names, it.Name)
	}
	assert.ElementsMatch(t, []string{"At level", "Below level"}, names)
}
