package reports

import (
	"RequisTrack/api"
	"RequisTrack/api/dashboard"
	"RequisTrack/internal/store"
)

// GetLowStocksReport lists inventory rows at or under the low-stock
// threshold. A missing inventory sheet degrades to an empty report.
func GetLowStocksReport(s store.Store) api.Result {
	low := LowStockRecords(s)
	return api.OKData(low)
}

// LowStockRecords is shared with the scheduled snapshot job.
func LowStockRecords(s store.Store) []dashboard.InventoryRecord {
	low := []dashboard.InventoryRecord{}
	for _, rec := range dashboard.ReadInventory(s) {
		if rec.LowStock() {
			low = append(low, rec)
		}
	}
	return low
}
