package batch

import (
	"testing"

	"RequisTrack/api/constants"
	"RequisTrack/internal/store"
)

func seedRequests(t *testing.T) *store.MemoryStore {
	t.Helper()
	s := store.NewMemoryStore()
	s.Load(constants.SheetOfficeRequests, [][]string{
		{"Date", "Branch", "Description", "QTY", "Approval Status", "PDF Link"},
		{"2026-03-01", "Makati", "Bond paper", "5", "Pending", "https://docs/office-1"},
		{"2026-03-02", "Cebu", "Toner", "2", "Pending", "https://docs/office-2"},
		{"2026-03-03", "Makati", "Folders", "1", "Pending", ""},
	})
	s.Load(constants.SheetSpecialRequests, [][]string{
		{"Date", "Branch", "Description", "QTY", "Status", "PDF URL"},
		{"2026-03-05", "Makati", "Chairs", "10", "Pending", "https://docs/special-1"},
	})
	return s
}

func TestBatchActionNilRowsFails(t *testing.T) {
	s := seedRequests(t)
	res := BatchAction(s, nil, "Approved")
	if res["success"] != false || res["message"] != constants.ErrInvalidRowsParam {
		t.Fatalf("unexpected result %v", res)
	}
}

func TestBatchActionEmptyListSucceeds(t *testing.T) {
	s := seedRequests(t)
	res := BatchAction(s, []RowRef{}, "Approved")
	if res["success"] != true {
		t.Fatalf("unexpected result %v", res)
	}
}

func TestBatchActionWritesStatus(t *testing.T) {
	s := seedRequests(t)
	res := BatchAction(s, []RowRef{
		{SheetName: constants.SheetOfficeRequests, RowNumber: 2},
		{SheetName: constants.SheetOfficeRequests, RowNumber: 3},
	}, "Approved")
	if res["success"] != true || res["message"] != "Batch action completed" {
		t.Fatalf("unexpected result %v", res)
	}
	rows, _ := s.GetSheet(constants.SheetOfficeRequests)
	// The status column is found by substring: "Approval Status".
	if rows[1][4] != "Approved" || rows[2][4] != "Approved" {
		t.Fatalf("statuses = %q / %q", rows[1][4], rows[2][4])
	}
	if rows[3][4] != "Pending" {
		t.Fatal("untargeted row changed")
	}
}

func TestBatchActionSurvivesBadRef(t *testing.T) {
	s := seedRequests(t)
	res := BatchAction(s, []RowRef{
		{SheetName: "NO SUCH SHEET", RowNumber: 2},
		{SheetName: constants.SheetOfficeRequests, RowNumber: 2},
	}, "Rejected")
	if res["success"] != true {
		t.Fatalf("batch must run to the end, got %v", res)
	}
	rows, _ := s.GetSheet(constants.SheetOfficeRequests)
	if rows[1][4] != "Rejected" {
		t.Fatal("good ref was not applied after a bad one")
	}
}

func TestBatchActionSurvivesHeaderlessSheet(t *testing.T) {
	s := seedRequests(t)
	s.Load("Sheet1", [][]string{})
	res := BatchAction(s, []RowRef{
		{SheetName: "Sheet1", RowNumber: 2},
		{SheetName: constants.SheetOfficeRequests, RowNumber: 2},
	}, "Approved")
	if res["success"] != true {
		t.Fatalf("batch must run to the end, got %v", res)
	}
	rows, _ := s.GetSheet(constants.SheetOfficeRequests)
	if rows[1][4] != "Approved" {
		t.Fatal("good ref was not applied after a headerless one")
	}
}

func TestRowActionHeaderlessSheetFails(t *testing.T) {
	s := store.NewMemoryStore()
	s.Load("Sheet1", [][]string{})
	if res := RowAction(s, "Sheet1", 2, "Approved"); res["success"] != false {
		t.Fatalf("unexpected result %v", res)
	}
	if res := EditPendingRow(s, "Sheet1", 2, map[string]interface{}{"qty": 1}); res["success"] != false {
		t.Fatalf("unexpected result %v", res)
	}
}

func TestBatchActionResolvesRowID(t *testing.T) {
	s := seedRequests(t)
	id3, _ := s.RowID(constants.SheetOfficeRequests, 3)
	// Deleting row 2 shifts the target up; the id still finds it.
	s.DeleteRow(constants.SheetOfficeRequests, 2)
	BatchAction(s, []RowRef{
		{SheetName: constants.SheetOfficeRequests, RowID: id3},
	}, "Approved")
	rows, _ := s.GetSheet(constants.SheetOfficeRequests)
	if rows[1][4] != "Approved" {
		t.Fatalf("row id target missed: %v", rows[1])
	}
}

func TestRowActionNoStatusColumnIsNoop(t *testing.T) {
	s := store.NewMemoryStore()
	s.Load("NOTES", [][]string{
		{"date", "text"},
		{"2026-03-01", "hello"},
	})
	res := RowAction(s, "NOTES", 2, "Approved")
	if res["success"] != true {
		t.Fatalf("unexpected result %v", res)
	}
	rows, _ := s.GetSheet("NOTES")
	if rows[1][0] != "2026-03-01" || rows[1][1] != "hello" {
		t.Fatal("no-op wrote cells")
	}
}

func TestEditPendingRowSubstringKeys(t *testing.T) {
	s := seedRequests(t)
	res := EditPendingRow(s, constants.SheetOfficeRequests, 2, map[string]interface{}{
		"qty":      7,
		"branch":   "Davao",
		"nonsense": "ignored",
	})
	if res["success"] != true {
		t.Fatalf("unexpected result %v", res)
	}
	rows, _ := s.GetSheet(constants.SheetOfficeRequests)
	if rows[1][3] != "7" || rows[1][1] != "Davao" {
		t.Fatalf("edited row = %v", rows[1])
	}
}

func TestDeletePendingRow(t *testing.T) {
	s := seedRequests(t)
	res := DeletePendingRow(s, constants.SheetOfficeRequests, 2)
	if res["success"] != true {
		t.Fatalf("unexpected result %v", res)
	}
	rows, _ := s.GetSheet(constants.SheetOfficeRequests)
	if len(rows) != 3 || rows[1][2] != "Toner" {
		t.Fatalf("after delete: %v", rows)
	}
}

func TestSelectPdfPerBranchUpgradeRule(t *testing.T) {
	s := seedRequests(t)
	officeRef := RowRef{SheetName: constants.SheetOfficeRequests, RowNumber: 2, ItemID: "A-1"}
	specialRef := RowRef{SheetName: constants.SheetSpecialRequests, RowNumber: 2, ItemID: "S-1"}

	// Office first, special second: special replaces.
	sel := SelectPdfPerBranch(s, []RowRef{officeRef, specialRef})
	if pick := sel["Makati"]; pick.URL != "https://docs/special-1" || pick.Type != "SPECIAL" {
		t.Fatalf("office-first selection = %+v", pick)
	}

	// Special first, office second: special sticks.
	sel = SelectPdfPerBranch(s, []RowRef{specialRef, officeRef})
	if pick := sel["Makati"]; pick.URL != "https://docs/special-1" {
		t.Fatalf("special-first selection = %+v", pick)
	}
}

func TestSelectPdfPerBranchSkipsBlankURL(t *testing.T) {
	s := seedRequests(t)
	sel := SelectPdfPerBranch(s, []RowRef{
		{SheetName: constants.SheetOfficeRequests, RowNumber: 4}, // blank URL
	})
	if len(sel) != 0 {
		t.Fatalf("blank URL selected: %v", sel)
	}
}

func TestSelectPdfPerBranchBranchFallback(t *testing.T) {
	s := store.NewMemoryStore()
	s.Load("OFFICE REQUESTS", [][]string{
		{"Description", "Status", "PDF URL"},
		{"No branch column", "Pending", "https://docs/x"},
		{"Still none", "Pending", "https://docs/y"},
	})
	sel := SelectPdfPerBranch(s, []RowRef{
		{SheetName: "OFFICE REQUESTS", RowNumber: 2, Branch: "Makati"},
		{SheetName: "OFFICE REQUESTS", RowNumber: 3},
	})
	if sel["Makati"].URL != "https://docs/x" {
		t.Fatalf("ref branch fallback failed: %v", sel)
	}
	if sel["Unknown"].URL != "https://docs/y" {
		t.Fatalf("unknown fallback failed: %v", sel)
	}
}
