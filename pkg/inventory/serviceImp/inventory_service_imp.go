package serviceImp

import (
	"gorm.io/gorm"

	"fms/entities"
	"fms/pkg/inventory/service"
)

type InvSvc struct{ db *gorm.DB }

func New(db *gorm.DB) *InvSvc { return &InvSvc{db} }

// Adjust runs the read-check-write sequence in one transaction. The guard is
// the conditional UPDATE itself: concurrent adjustments to the same item
// serialize on the row and a delta that would go negative affects zero rows.
func (s *InvSvc) Adjust(itemID string, delta float64, reason string) (float64, error) {
	var newQty float64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item entities.InventoryItem
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			return err
		}
		res := tx.Model(&entities.InventoryItem{}).
			Where("id = ? AND quantity + ? >= 0", itemID, delta).
			Update("quantity", gorm.Expr("quantity + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return service.ErrInsufficientInventory
		}
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			return err
		}
		newQty = item.Quantity
		return tx.Create(&entities.InventoryTransaction{
			InventoryID: itemID,
			Change:      delta,
			Reason:      reason,
		}).Error
	})
	if err != nil {
		return 0, err
	}
	return newQty, nil
}
