package requests

import (
	"RequisTrack/api"
	"RequisTrack/api/constants"
	"RequisTrack/api/schema"
	"RequisTrack/internal/store"
)

// officeColumns is the fixed schema of the OFFICE REQUESTS sheet, read by
// exact header name. The stored amount column is trusted as-is here.
var officeColumns = []string{
	"date", "branch", "description", "qty", "unit",
	"uprice", "amount", "status", "requested_by",
}

var officeNumeric = map[string]bool{"qty": true, "uprice": true, "amount": true}

// GetOfficeRequests projects every row of the OFFICE REQUESTS sheet.
func GetOfficeRequests(s store.Store) api.Result {
	return getRequestSheet(s, constants.SheetOfficeRequests, officeColumns, officeNumeric)
}

// UpdateOfficeRequest sets the status column of the row at the payload's
// positional id, only when a status was supplied and the column exists.
func UpdateOfficeRequest(s store.Store, data map[string]interface{}) api.Result {
	return updateRequestFields(s, constants.SheetOfficeRequests, data, []string{"status"},
		"Office request updated successfully")
}

func DeleteOfficeRequest(s store.Store, id int) api.Result {
	if err := s.DeleteRow(constants.SheetOfficeRequests, id); err != nil {
		return api.Fail(err.Error())
	}
	return api.OK("Office request deleted successfully")
}

func getRequestSheet(s store.Store, sheet string, columns []string, numeric map[string]bool) api.Result {
	rows, err := s.GetSheet(sheet)
	if err != nil {
		return api.Fail(err.Error()).With("data", []interface{}{})
	}
	if len(rows) < 2 {
		return api.OKData([]interface{}{})
	}
	header := rows[0]
	cols := make(map[string]schema.Column, len(columns))
	for _, name := range columns {
		cols[name] = schema.Exact(header, name)
	}
	out := make([]map[string]interface{}, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		rec := map[string]interface{}{
			"id":        i + 1,
			"sheetName": sheet,
			"rowNumber": i + 1,
		}
		if rowID, ok := s.RowID(sheet, i+1); ok {
			rec["rowId"] = rowID
		}
		for _, name := range columns {
			v := schema.Cell(rows[i], cols[name])
			if numeric[name] {
				rec[name] = schema.Num(v)
			} else {
				rec[name] = v
			}
		}
		out = append(out, rec)
	}
	return api.OKData(out)
}

// updateRequestFields writes each named field onto the positional row,
// skipping fields absent from the payload (or empty) and columns absent
// from the header.
func updateRequestFields(s store.Store, sheet string, data map[string]interface{}, fields []string, okMsg string) api.Result {
	rows, err := s.GetSheet(sheet)
	if err != nil {
		return api.Fail(err.Error())
	}
	if len(rows) == 0 {
		return api.Fail(sheet + " has no header row")
	}
	rowNum := intFrom(data, "id")
	header := rows[0]
	for _, name := range fields {
		v, _ := data[name].(string)
		if v == "" {
			continue
		}
		col := schema.Exact(header, name)
		if !col.OK {
			continue
		}
		if err := s.SetCell(sheet, rowNum, col.Index, v); err != nil {
			return api.Fail(err.Error())
		}
	}
	return api.OK(okMsg)
}

func intFrom(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
