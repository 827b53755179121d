package serviceImp

import (
	"errors"

	"gorm.io/gorm"

	"fms/entities"
	invsvc "fms/pkg/inventory/service"
	"fms/pkg/schedule/repository"
	"fms/pkg/schedule/service"
)

type SchedSvc struct {
	db   *gorm.DB
	repo repository.ScheduleRepository
}

func New(db *gorm.DB, repo repository.ScheduleRepository) *SchedSvc {
	return &SchedSvc{db: db, repo: repo}
}

// Complete performs the full pending→completed transition in one transaction:
// status flip, inventory deduction, ledger row, checklist entry. Any failed
// step rolls back every write.
func (s *SchedSvc) Complete(taskID, performedBy, notes string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var task entities.ScheduleTask
		if err := tx.First(&task, "id = ?", taskID).Error; err != nil {
			return err
		}

		// The status condition is the double-completion guard: zero rows
		// affected means another caller got here first.
		res := tx.Model(&entities.ScheduleTask{}).
			Where("id = ? AND status = ?", taskID, entities.TaskPending).
			Updates(map[string]any{"status": entities.TaskCompleted, "completion_notes": notes})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return service.ErrAlreadyCompleted
		}

		if task.QuantityRequired != nil && task.Unit != "" {
			if err := s.deductStock(tx, &task); err != nil {
				return err
			}
		}

		return tx.Create(&entities.TaskChecklist{
			ScheduleID:  task.ID,
			PerformedBy: performedBy,
			Notes:       notes,
		}).Error
	})
}

// deductStock consumes the task's required quantity from the first inventory
// item sharing its unit. No matching unit means no stock is tracked for this
// input and the deduction is skipped.
func (s *SchedSvc) deductStock(tx *gorm.DB, task *entities.ScheduleTask) error {
	var item entities.InventoryItem
	err := tx.Where("unit = ?", task.Unit).Order("created_at ASC").First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	qty := *task.QuantityRequired
	res := tx.Model(&entities.InventoryItem{}).
		Where("id = ? AND quantity >= ?", item.ID, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return invsvc.ErrInsufficientInventory
	}

	return tx.Create(&entities.InventoryTransaction{
		InventoryID: item.ID,
		Change:      -qty,
		Reason:      "Task completion: " + task.TaskType,
		ScheduleID:  &task.ID,
	}).Error
}
