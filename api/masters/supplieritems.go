package masters

import (
	"RequisTrack/api"
	"RequisTrack/api/constants"
	"RequisTrack/internal/store"
)

var supplierItemSchema = EntitySchema{
	Sheet:    constants.SheetSupplierItems,
	Singular: "Supplier item",
	Fields: []FieldSpec{
		{Name: "item_id", GenID: true, Immutable: true},
		{Name: "supplier_id"},
		{Name: "description"},
		{Name: "unit"},
		{Name: "unit_price", Default: "0", Numeric: true},
		{Name: "min_stock_level", Default: "0", Numeric: true},
		{Name: "current_stock", Default: "0", Numeric: true},
	},
}

func GetSupplierItems(s store.Store) api.Result {
	return GetAll(s, supplierItemSchema)
}

func AddSupplierItem(s store.Store, data map[string]interface{}) api.Result {
	return Add(s, supplierItemSchema, data)
}

func UpdateSupplierItem(s store.Store, data map[string]interface{}) api.Result {
	return Update(s, supplierItemSchema, data)
}

func DeleteSupplierItem(s store.Store, id int) api.Result {
	return Delete(s, supplierItemSchema, id)
}
