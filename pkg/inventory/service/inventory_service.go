package service

import "errors"

// ErrInsufficientInventory rejects any mutation that would drive an item's
// quantity negative. The whole adjustment rolls back; nothing is written.
var ErrInsufficientInventory = errors.New("insufficient inventory")

type InventoryService interface {
	// Adjust applies a signed delta (restock or consumption) and appends one
	// transaction row. Returns the resulting quantity.
	Adjust(itemID string, delta float64, reason string) (float64, error)
}
