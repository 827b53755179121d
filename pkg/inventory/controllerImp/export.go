package controllerImp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

// Export writes the full ledger (current items plus every transaction) as an
// xlsx workbook for offline stock-taking.
func (h *InvCtrl) Export(c echo.Context) error {
	items, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	txns, err := h.repo.Transactions("")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()

	const itemSheet = "Items"
	if err := f.SetSheetName("Sheet1", itemSheet); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	_ = f.SetSheetRow(itemSheet, "A1", &[]any{"Name", "Unit", "Quantity", "Reorder Level"})
	for i, it := range items {
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow(itemSheet, cell, &[]any{it.Name, it.Unit, it.Quantity, it.ReorderLevel})
	}

	const txSheet = "Transactions"
	if _, err := f.NewSheet(txSheet); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	_ = f.SetSheetRow(txSheet, "A1", &[]any{"Item ID", "Change", "Reason", "Schedule ID", "At"})
	for i, tx := range txns {
		sched := ""
		if tx.ScheduleID != nil {
			sched = *tx.ScheduleID
		}
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow(txSheet, cell, &[]any{tx.InventoryID, tx.Change, tx.Reason, sched, tx.CreatedAt.Format(time.RFC3339)})
	}

	name := "inventory-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}
