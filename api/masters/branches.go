package masters

import (
	"RequisTrack/api"
	"RequisTrack/api/constants"
	"RequisTrack/internal/store"
)

var branchSchema = EntitySchema{
	Sheet:    constants.SheetBranches,
	Singular: "Branch",
	Fields: []FieldSpec{
		{Name: "branch_id", GenID: true, Immutable: true},
		{Name: "branch_name"},
		{Name: "email"},
		{Name: "location"},
		{Name: "classification", Default: "Regular"},
		{Name: "status", Default: "Active", ReadDefault: "Active"},
		{Name: "created_at", AutoNow: true, Immutable: true},
	},
}

func GetBranches(s store.Store) api.Result {
	return GetAll(s, branchSchema)
}

func AddBranch(s store.Store, data map[string]interface{}) api.Result {
	return Add(s, branchSchema, data)
}

func UpdateBranch(s store.Store, data map[string]interface{}) api.Result {
	return Update(s, branchSchema, data)
}

func DeleteBranch(s store.Store, id int) api.Result {
	return Delete(s, branchSchema, id)
}

// BranchNames returns every branch_name in first-appearance order, used to
// seed the per-branch dashboard so branches with no requests still appear.
func BranchNames(s store.Store) []string {
	res := GetAll(s, branchSchema)
	data, _ := res["data"].([]map[string]interface{})
	names := make([]string, 0, len(data))
	for _, rec := range data {
		if name, _ := rec["branch_name"].(string); name != "" {
			names = append(names, name)
		}
	}
	return names
}
