package requests

import (
	"RequisTrack/api"
	"RequisTrack/api/constants"
	"RequisTrack/internal/store"
)

// specialColumns extends the office schema with the three approval stages
// a special request walks through.
var specialColumns = []string{
	"date", "branch", "description", "qty", "unit",
	"uprice", "amount", "status", "requested_by",
	"approved_by_purchasing", "approved_by_accounting", "approved_by_admin",
}

var specialNumeric = map[string]bool{"qty": true, "uprice": true, "amount": true}

func GetSpecialRequests(s store.Store) api.Result {
	return getRequestSheet(s, constants.SheetSpecialRequests, specialColumns, specialNumeric)
}

// UpdateSpecialRequest sets status and whichever approval stages the
// payload carries; empty or missing values leave the cell untouched.
func UpdateSpecialRequest(s store.Store, data map[string]interface{}) api.Result {
	return updateRequestFields(s, constants.SheetSpecialRequests, data,
		[]string{"status", "approved_by_purchasing", "approved_by_accounting", "approved_by_admin"},
		"Special request updated successfully")
}

func DeleteSpecialRequest(s store.Store, id int) api.Result {
	if err := s.DeleteRow(constants.SheetSpecialRequests, id); err != nil {
		return api.Fail(err.Error())
	}
	return api.OK("Special request deleted successfully")
}
