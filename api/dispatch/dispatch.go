package dispatch

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"RequisTrack/api"
	"RequisTrack/api/batch"
	"RequisTrack/api/constants"
	"RequisTrack/api/dashboard"
	"RequisTrack/api/masters"
	"RequisTrack/api/reports"
	"RequisTrack/api/requests"
	"RequisTrack/internal/store"
)

// Dispatcher routes a named action plus JSON payload to its handler.
// Every inbound action runs to completion before its response is written;
// the store serializes the underlying sheet access.
type Dispatcher struct {
	store    store.Store
	exporter reports.Exporter
}

func NewDispatcher(s store.Store, exporter reports.Exporter) *Dispatcher {
	return &Dispatcher{store: s, exporter: exporter}
}

// Handle never lets a handler failure escape: unknown actions and panics
// both come back as failure envelopes.
func (d *Dispatcher) Handle(action string, data json.RawMessage) (res api.Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] action %s panicked: %v", action, r)
			res = api.Fail(fmt.Sprint(r))
		}
	}()

	s := d.store
	switch action {
	// Suppliers
	case "getSuppliers":
		return masters.GetSuppliers(s)
	case "addSupplier":
		return masters.AddSupplier(s, asMap(data))
	case "updateSupplier":
		return masters.UpdateSupplier(s, asMap(data))
	case "deleteSupplier":
		return masters.DeleteSupplier(s, idOf(data))

	// Supplier Items
	case "getSupplierItems":
		return masters.GetSupplierItems(s)
	case "addSupplierItem":
		return masters.AddSupplierItem(s, asMap(data))
	case "updateSupplierItem":
		return masters.UpdateSupplierItem(s, asMap(data))
	case "deleteSupplierItem":
		return masters.DeleteSupplierItem(s, idOf(data))

	// Users
	case "getUsers":
		return masters.GetUsers(s)
	case "addUser":
		return masters.AddUser(s, asMap(data))
	case "updateUser":
		return masters.UpdateUser(s, asMap(data))
	case "deleteUser":
		return masters.DeleteUser(s, idOf(data))
	case "resetPassword":
		return masters.ResetPassword(s, idOf(data))
	case "getPasswordResetRequests":
		return masters.GetPasswordResetRequests(s)
	case "handlePasswordReset":
		return masters.HandlePasswordReset(s, asMap(data))

	// Branches
	case "getBranches":
		return masters.GetBranches(s)
	case "addBranch":
		return masters.AddBranch(s, asMap(data))
	case "updateBranch":
		return masters.UpdateBranch(s, asMap(data))
	case "deleteBranch":
		return masters.DeleteBranch(s, idOf(data))

	// Inventory
	case "getInventory":
		return masters.GetInventory(s)
	case "addInventoryItem":
		return masters.AddInventoryItem(s, asMap(data))
	case "updateInventoryItem":
		return masters.UpdateInventoryItem(s, asMap(data))
	case "deleteInventoryItem":
		return masters.DeleteInventoryItem(s, idOf(data))

	// Office Requests
	case "getOfficeRequests":
		return requests.GetOfficeRequests(s)
	case "updateOfficeRequest":
		return requests.UpdateOfficeRequest(s, asMap(data))
	case "deleteOfficeRequest":
		return requests.DeleteOfficeRequest(s, idOf(data))

	// Special Requests
	case "getSpecialRequests":
		return requests.GetSpecialRequests(s)
	case "updateSpecialRequest":
		return requests.UpdateSpecialRequest(s, asMap(data))
	case "deleteSpecialRequest":
		return requests.DeleteSpecialRequest(s, idOf(data))

	// Reports
	case "generateReport":
		var p reports.Params
		decode(data, &p)
		return reports.GenerateReport(s, p)
	case "exportReport":
		var p reports.Params
		decode(data, &p)
		return d.exporter.Export(s, p)
	case "getLowStocksReport":
		return reports.GetLowStocksReport(s)
	case "getBranchDashboard":
		return reports.GetBranchDashboard(s)
	case "getBranchReport":
		var p reports.BranchReportParams
		decode(data, &p)
		return reports.GetBranchReport(s, p)

	// Dashboard
	case "getDashboardData":
		return dashboard.GetDashboardData(s)
	case "getPendingGroupedByBranch":
		return dashboard.GetPendingGroupedByBranch(s)
	case "getPendingBreakdown":
		return dashboard.GetPendingBreakdown(s)

	// Batch Actions
	case "batchAction":
		var p struct {
			Rows   []batch.RowRef `json:"rows"`
			Action string         `json:"action"`
		}
		decode(data, &p)
		return batch.BatchAction(s, p.Rows, p.Action)
	case "rowAction":
		var p struct {
			SheetName string `json:"sheetName"`
			RowNumber int    `json:"rowNumber"`
			Action    string `json:"action"`
		}
		decode(data, &p)
		return batch.RowAction(s, p.SheetName, p.RowNumber, p.Action)
	case "editPendingRow":
		var p struct {
			SheetName string                 `json:"sheetName"`
			RowNumber int                    `json:"rowNumber"`
			Values    map[string]interface{} `json:"values"`
		}
		decode(data, &p)
		return batch.EditPendingRow(s, p.SheetName, p.RowNumber, p.Values)
	case "deletePendingRow":
		var p struct {
			SheetName string `json:"sheetName"`
			RowNumber int    `json:"rowNumber"`
		}
		decode(data, &p)
		return batch.DeletePendingRow(s, p.SheetName, p.RowNumber)
	case "getBatchPdfUrls":
		var p struct {
			Rows []batch.RowRef `json:"rows"`
		}
		decode(data, &p)
		return batch.GetBatchPdfUrls(s, p.Rows)

	// Maintenance
	case "importLegacyWorkbook":
		var p struct {
			Path string `json:"path"`
		}
		decode(data, &p)
		n, err := store.ImportLegacyWorkbook(s, p.Path)
		if err != nil {
			return api.Fail(err.Error())
		}
		return api.OK(fmt.Sprintf("imported %d rows", n))

	default:
		return api.Fail(constants.ErrUnknownAction + action)
	}
}

// asMap tolerates absent or malformed payloads; handlers treat missing
// keys as empty.
func asMap(data json.RawMessage) map[string]interface{} {
	m := map[string]interface{}{}
	if len(data) > 0 {
		json.Unmarshal(data, &m)
	}
	return m
}

func decode(data json.RawMessage, v interface{}) {
	if len(data) > 0 {
		json.Unmarshal(data, v)
	}
}

// idOf extracts the positional row id from {"id": ...}, accepting both
// numeric and string forms.
func idOf(data json.RawMessage) int {
	m := asMap(data)
	switch v := m["id"].(type) {
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}
