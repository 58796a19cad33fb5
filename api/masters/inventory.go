package masters

import (
	"RequisTrack/api"
	"RequisTrack/api/constants"
	"RequisTrack/internal/store"
)

var inventorySchema = EntitySchema{
	Sheet:    constants.SheetInventory,
	Singular: "Inventory item",
	Fields: []FieldSpec{
		{Name: "item_id", GenID: true, Immutable: true},
		{Name: "description"},
		{Name: "unit"},
		{Name: "total_running_stocks", Header: "total running stocks", Default: "0", Numeric: true},
		{Name: "status", Default: "Active"},
		{Name: "supplier"},
		{Name: "classification"},
	},
}

func GetInventory(s store.Store) api.Result {
	return GetAll(s, inventorySchema)
}

func AddInventoryItem(s store.Store, data map[string]interface{}) api.Result {
	return Add(s, inventorySchema, data)
}

func UpdateInventoryItem(s store.Store, data map[string]interface{}) api.Result {
	return Update(s, inventorySchema, data)
}

func DeleteInventoryItem(s store.Store, id int) api.Result {
	return Delete(s, inventorySchema, id)
}
