package batch

import (
	"fmt"
	"log"
	"strings"

	"RequisTrack/api"
	"RequisTrack/api/constants"
	"RequisTrack/api/schema"
	"RequisTrack/internal/logger"
	"RequisTrack/internal/store"
)

// RowRef points at one row of one sheet. RowNumber is positional (1-based,
// header is row 1) and goes stale across structural mutations; when RowID
// is set it wins, resolved against the store right before the mutation.
type RowRef struct {
	SheetName   string `json:"sheetName"`
	RowNumber   int    `json:"rowNumber"`
	RowID       string `json:"rowId,omitempty"`
	ItemID      string `json:"itemId,omitempty"`
	Description string `json:"description,omitempty"`
	Branch      string `json:"branch,omitempty"`
}

// position picks the row to mutate. Positional refs are taken at face
// value: the caller owns ordering deletes bottom-up.
func position(s store.Store, ref RowRef) (int, bool) {
	if ref.RowID != "" {
		return s.ResolvePosition(ref.SheetName, ref.RowID)
	}
	return ref.RowNumber, ref.RowNumber > 0
}

// RowAction writes the action text into the row's status column, located
// by "status" substring over the lower-cased header. A sheet without a
// status column makes this a silent no-op.
func RowAction(s store.Store, sheetName string, rowNumber int, action string) api.Result {
	rows, err := s.GetSheet(sheetName)
	if err != nil {
		return api.Fail(err.Error())
	}
	if len(rows) == 0 {
		return api.Fail(sheetName + " has no header row")
	}
	col := schema.FindColumn(schema.Lower(rows[0]), []string{"status"})
	if !col.OK {
		return api.Result{"success": true}
	}
	if err := s.SetCell(sheetName, rowNumber, col.Index, action); err != nil {
		return api.Fail(err.Error())
	}
	return api.Result{"success": true}
}

// BatchAction applies the same status action to every ref independently.
// A failing ref is logged and skipped; the batch always runs to the end.
// An empty list is a successful no-op.
func BatchAction(s store.Store, refs []RowRef, action string) api.Result {
	if refs == nil {
		return api.Fail(constants.ErrInvalidRowsParam)
	}
	for _, ref := range refs {
		pos, ok := position(s, ref)
		if !ok {
			log.Printf("[WARN] batch %s: unresolvable row %s#%d", action, ref.SheetName, ref.RowNumber)
			continue
		}
		res := RowAction(s, ref.SheetName, pos, action)
		if ok, _ := res["success"].(bool); !ok {
			log.Printf("[WARN] batch %s failed for %s#%d: %v", action, ref.SheetName, pos, res["message"])
		}
	}
	logger.Audit(fmt.Sprintf("batch action %q applied to %d rows", action, len(refs)))
	return api.OK("Batch action completed")
}

// EditPendingRow writes each value onto the column whose header contains
// the key's lower-cased text. Unmatched keys are skipped; this matches raw
// key text by substring, not an alias list.
func EditPendingRow(s store.Store, sheetName string, rowNumber int, values map[string]interface{}) api.Result {
	rows, err := s.GetSheet(sheetName)
	if err != nil {
		return api.Fail(err.Error())
	}
	if len(rows) == 0 {
		return api.Fail(sheetName + " has no header row")
	}
	lowered := schema.Lower(rows[0])
	for key, raw := range values {
		col := schema.FindColumn(lowered, []string{strings.ToLower(key)})
		if !col.OK {
			continue
		}
		if err := s.SetCell(sheetName, rowNumber, col.Index, fmt.Sprintf("%v", raw)); err != nil {
			return api.Fail(err.Error())
		}
	}
	return api.Result{"success": true}
}

// DeletePendingRow removes the row at the given position. Every later row
// shifts up by one; positional refs held by the caller are stale after
// this returns.
func DeletePendingRow(s store.Store, sheetName string, rowNumber int) api.Result {
	if err := s.DeleteRow(sheetName, rowNumber); err != nil {
		return api.Fail(err.Error())
	}
	return api.Result{"success": true}
}
