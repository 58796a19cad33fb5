package masters

import (
	"RequisTrack/api"
	"RequisTrack/api/constants"
	"RequisTrack/internal/store"
)

var supplierSchema = EntitySchema{
	Sheet:    constants.SheetSuppliers,
	Singular: "Supplier",
	Fields: []FieldSpec{
		{Name: "supplier_id", GenID: true, Immutable: true},
		{Name: "supplier_name"},
		{Name: "contact_person"},
		{Name: "email"},
		{Name: "phone"},
		{Name: "address"},
		{Name: "classification", Default: "General"},
		{Name: "status", Default: "Active", ReadDefault: "Active"},
		{Name: "created_at", AutoNow: true, Immutable: true},
	},
}

func GetSuppliers(s store.Store) api.Result {
	return GetAll(s, supplierSchema)
}

func AddSupplier(s store.Store, data map[string]interface{}) api.Result {
	return Add(s, supplierSchema, data)
}

func UpdateSupplier(s store.Store, data map[string]interface{}) api.Result {
	return Update(s, supplierSchema, data)
}

func DeleteSupplier(s store.Store, id int) api.Result {
	return Delete(s, supplierSchema, id)
}
