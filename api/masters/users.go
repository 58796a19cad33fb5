package masters

import (
	"RequisTrack/api"
	"RequisTrack/api/constants"
	"RequisTrack/api/schema"
	"RequisTrack/internal/config"
	"RequisTrack/internal/store"
)

var userSchema = EntitySchema{
	Sheet:    constants.SheetUsers,
	Singular: "User",
	Fields: []FieldSpec{
		{Name: "user_id", GenID: true, Immutable: true},
		{Name: "username"},
		{Name: "email"},
		{Name: "role", Default: "Branch"},
		{Name: "branch_access"},
		{Name: "password_hash", Default: config.DefaultPassword, Immutable: true},
		{Name: "status", Default: "Active", ReadDefault: "Active"},
		{Name: "created_at", AutoNow: true, Immutable: true},
	},
}

// getUsers never projects password_hash; the reduced schema drops it.
var userReadSchema = EntitySchema{
	Sheet:    constants.SheetUsers,
	Singular: "User",
	Fields: []FieldSpec{
		{Name: "user_id"},
		{Name: "username"},
		{Name: "email"},
		{Name: "role"},
		{Name: "branch_access"},
		{Name: "status", ReadDefault: "Active"},
		{Name: "created_at"},
	},
}

var passwordResetSchema = EntitySchema{
	Sheet:    constants.SheetPasswordReset,
	Singular: "Password reset request",
	Fields: []FieldSpec{
		{Name: "request_id"},
		{Name: "user_id"},
		{Name: "token"},
		{Name: "request_date"},
		{Name: "status", ReadDefault: "Pending"},
	},
}

func GetUsers(s store.Store) api.Result {
	return GetAll(s, userReadSchema)
}

func AddUser(s store.Store, data map[string]interface{}) api.Result {
	return Add(s, userSchema, data)
}

func UpdateUser(s store.Store, data map[string]interface{}) api.Result {
	return Update(s, userSchema, data)
}

func DeleteUser(s store.Store, id int) api.Result {
	return Delete(s, userSchema, id)
}

// ResetPassword puts the default password back onto the user row at the
// given sheet position.
func ResetPassword(s store.Store, id int) api.Result {
	rows, err := s.GetSheet(constants.SheetUsers)
	if err != nil {
		return api.Fail(err.Error())
	}
	if len(rows) == 0 {
		return api.Fail(constants.SheetUsers + " has no header row")
	}
	col := schema.Exact(rows[0], "password_hash")
	if !col.OK {
		return api.Fail("password_hash column not found in " + constants.SheetUsers)
	}
	if err := s.SetCell(constants.SheetUsers, id, col.Index, config.DefaultPassword); err != nil {
		return api.Fail(err.Error())
	}
	return api.OK("Password reset successfully")
}

func GetPasswordResetRequests(s store.Store) api.Result {
	return GetAll(s, passwordResetSchema)
}

// HandlePasswordReset records the decision on the request row and, when
// approved, resets the matching user's password by user_id.
func HandlePasswordReset(s store.Store, data map[string]interface{}) api.Result {
	rows, err := s.GetSheet(constants.SheetPasswordReset)
	if err != nil {
		return api.Fail(err.Error())
	}
	if len(rows) == 0 {
		return api.Fail(constants.SheetPasswordReset + " has no header row")
	}
	rowNum := payloadInt(data, "id")
	status := payloadString(data, "status")
	statusCol := schema.Exact(rows[0], "status")
	if statusCol.OK {
		if err := s.SetCell(constants.SheetPasswordReset, rowNum, statusCol.Index, status); err != nil {
			return api.Fail(err.Error())
		}
	}

	if status == "Approved" {
		userID := payloadString(data, "user_id")
		userRows, err := s.GetSheet(constants.SheetUsers)
		if err == nil && len(userRows) > 1 {
			idCol := schema.Exact(userRows[0], "user_id")
			hashCol := schema.Exact(userRows[0], "password_hash")
			for i := 1; i < len(userRows); i++ {
				if schema.Cell(userRows[i], idCol) == userID {
					if hashCol.OK {
						s.SetCell(constants.SheetUsers, i+1, hashCol.Index, config.DefaultPassword)
					}
					break
				}
			}
		}
	}
	return api.OK("Password reset request handled")
}
