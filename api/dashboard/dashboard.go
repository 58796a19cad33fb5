package dashboard

import (
	"log"
	"strings"

	"RequisTrack/api"
	"RequisTrack/api/constants"
	"RequisTrack/api/requests"
	"RequisTrack/api/schema"
	"RequisTrack/internal/config"
	"RequisTrack/internal/store"
)

// InventoryRecord is one ADD STOCKS row. The inventory sheet has a fixed
// schema, read by exact header name.
type InventoryRecord struct {
	ID                 int     `json:"id"`
	ItemID             string  `json:"itemId"`
	Description        string  `json:"description"`
	Unit               string  `json:"unit"`
	TotalRunningStocks float64 `json:"totalRunningStocks"`
	Status             string  `json:"status"`
	Supplier           string  `json:"supplier"`
	Classification     string  `json:"classification"`
}

// LowStock reports whether the record sits at or under the reorder
// threshold. The boundary is inclusive: exactly 10 counts.
func (r InventoryRecord) LowStock() bool {
	return r.TotalRunningStocks <= config.LowStockThreshold
}

// Data is the live dashboard aggregate, rebuilt from the sheets on every
// call. Nothing is cached; the trade is redundant reads for freshness.
type Data struct {
	PendingOffice  []requests.Row    `json:"pendingOffice"`
	PendingSpecial []requests.Row    `json:"pendingSpecial"`
	StatusCounts   map[string]int    `json:"statusCounts"`
	AddStocks      []InventoryRecord `json:"addStocks"`
	LowStockCount  int               `json:"lowStockCount"`
}

// Build scans every sheet except the inventory sheet in one pass. Rows
// with an empty status are skipped entirely: they count nowhere, not even
// in the histogram. The histogram is keyed by the raw status text, so
// "Pending" and "pending" are distinct keys even though both feed the
// pending lists.
func Build(s store.Store) Data {
	d := Data{
		PendingOffice:  []requests.Row{},
		PendingSpecial: []requests.Row{},
		StatusCounts:   map[string]int{},
		AddStocks:      ReadInventory(s),
	}
	for _, rec := range d.AddStocks {
		if rec.LowStock() {
			d.LowStockCount++
		}
	}

	for _, name := range s.ListSheets() {
		if name == constants.SheetInventory {
			continue
		}
		rows, err := s.GetSheet(name)
		if err != nil || len(rows) < 2 {
			continue
		}
		cols := schema.Resolve(rows[0], schema.RequestAliases)
		for i := 1; i < len(rows); i++ {
			status := schema.Cell(rows[i], cols[schema.FieldStatus])
			if status == "" {
				continue
			}
			d.StatusCounts[status]++
			if strings.ToLower(status) != constants.StatusPending {
				continue
			}
			row := requests.Project(name, i+1, rows[i], cols)
			if rowID, ok := s.RowID(name, i+1); ok {
				row.RowID = rowID
			}
			if schema.DetectRequestType(name) == schema.TypeSpecial {
				d.PendingSpecial = append(d.PendingSpecial, row)
			} else {
				d.PendingOffice = append(d.PendingOffice, row)
			}
		}
	}
	return d
}

// GetDashboardData is the dispatch handler for the main dashboard view.
func GetDashboardData(s store.Store) api.Result {
	d := Build(s)
	return api.Result{
		"success":        true,
		"pendingOffice":  d.PendingOffice,
		"pendingSpecial": d.PendingSpecial,
		"statusCounts":   d.StatusCounts,
		"addStocks":      d.AddStocks,
		"lowStockCount":  d.LowStockCount,
	}
}

// ReadInventory projects the ADD STOCKS sheet, degrading to an empty
// list when it is missing.
func ReadInventory(s store.Store) []InventoryRecord {
	rows, err := s.GetSheet(constants.SheetInventory)
	if err != nil {
		if !store.IsNotFound(err) {
			log.Printf("[WARN] inventory read failed: %v", err)
		}
		return []InventoryRecord{}
	}
	if len(rows) < 2 {
		return []InventoryRecord{}
	}
	header := rows[0]
	itemID := schema.Exact(header, "item_id")
	description := schema.Exact(header, "description")
	unit := schema.Exact(header, "unit")
	total := schema.Exact(header, "total running stocks")
	status := schema.Exact(header, "status")
	supplier := schema.Exact(header, "supplier")
	classification := schema.Exact(header, "classification")

	out := make([]InventoryRecord, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		out = append(out, InventoryRecord{
			ID:                 i + 1,
			ItemID:             schema.Cell(rows[i], itemID),
			Description:        schema.Cell(rows[i], description),
			Unit:               schema.Cell(rows[i], unit),
			TotalRunningStocks: schema.Num(schema.Cell(rows[i], total)),
			Status:             schema.Cell(rows[i], status),
			Supplier:           schema.Cell(rows[i], supplier),
			Classification:     schema.Cell(rows[i], classification),
		})
	}
	return out
}
