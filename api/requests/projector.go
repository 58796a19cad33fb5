package requests

import (
	"RequisTrack/api/schema"
)

// Row is a request projected off a request-bearing sheet for the
// dashboard. Identity is (SheetName, RowNumber): positional, valid only
// until the next structural mutation of that sheet. RowID is the store's
// synthetic identifier for callers that want mutation-safe references.
type Row struct {
	ID          int     `json:"id"`
	RowID       string  `json:"rowId,omitempty"`
	SheetName   string  `json:"sheetName"`
	RowNumber   int     `json:"rowNumber"`
	ItemID      string  `json:"itemId"`
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	Unit        string  `json:"unit"`
	Branch      string  `json:"branch"`
	Email       string  `json:"email"`
	Status      string  `json:"status"`
	UnitPrice   float64 `json:"uprice"`
	Amount      float64 `json:"amount"`
}

// Project builds a dashboard row from one data row via resolved columns.
// position is the 1-based sheet position of the row (header is 1). The
// amount is always recomputed as uprice times qty on this path; the entity
// CRUD path instead trusts the stored amount column; the two are not
// reconciled.
func Project(sheetName string, position int, row []string, cols schema.Columns) Row {
	uprice := schema.Num(schema.Cell(row, cols[schema.FieldUnitPrice]))
	qty := schema.Num(schema.Cell(row, cols[schema.FieldQty]))
	return Row{
		ID:          position,
		SheetName:   sheetName,
		RowNumber:   position,
		ItemID:      schema.Cell(row, cols[schema.FieldItemID]),
		Description: schema.Cell(row, cols[schema.FieldDescription]),
		Qty:         qty,
		Unit:        schema.Cell(row, cols[schema.FieldUnit]),
		Branch:      schema.Cell(row, cols[schema.FieldBranch]),
		Email:       schema.Cell(row, cols[schema.FieldEmail]),
		Status:      schema.Cell(row, cols[schema.FieldStatus]),
		UnitPrice:   uprice,
		Amount:      uprice * qty,
	}
}
