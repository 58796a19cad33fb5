package dashboard

import (
	"testing"

	"RequisTrack/api/constants"
	"RequisTrack/internal/store"
)

var requestHeader = []string{
	"Date", "Branch", "Item ID", "Description", "QTY", "Unit",
	"Unit Price", "Amount", "Status", "Email",
}

func seedWorkbook(t *testing.T) *store.MemoryStore {
	t.Helper()
	s := store.NewMemoryStore()
	s.Load(constants.SheetInventory, [][]string{
		{"item_id", "description", "unit", "total running stocks", "status", "supplier", "classification"},
		{"INV-1", "Bond paper", "ream", "25", "Active", "Acme", "Consumable"},
		{"INV-2", "Toner", "pc", "10", "Active", "Acme", "Consumable"},
		{"INV-3", "Staples", "box", "3", "Active", "Metro", "Consumable"},
	})
	s.Load(constants.SheetOfficeRequests, [][]string{
		requestHeader,
		{"2026-03-01", "Makati", "A-1", "Bond paper", "5", "ream", "250", "0", "Pending", "a@x.com"},
		{"2026-03-02", "Cebu", "A-2", "Toner", "2", "pc", "3500", "0", "pending", "b@x.com"},
		{"2026-03-03", "Makati", "A-3", "Folders", "1", "pack", "80", "0", "Approved", "c@x.com"},
		{"2026-03-04", "Davao", "A-4", "Tape", "3", "pc", "40", "0", "", "d@x.com"},
	})
	s.Load(constants.SheetSpecialRequests, [][]string{
		requestHeader,
		{"2026-03-05", "Makati", "S-1", "Chairs", "10", "pc", "1200", "0", "Pending", "e@x.com"},
	})
	return s
}

func TestBuildPendingClassification(t *testing.T) {
	s := seedWorkbook(t)
	d := Build(s)
	if len(d.PendingOffice) != 2 {
		t.Fatalf("pending office = %d, want 2", len(d.PendingOffice))
	}
	if len(d.PendingSpecial) != 1 {
		t.Fatalf("pending special = %d, want 1", len(d.PendingSpecial))
	}
	if d.PendingSpecial[0].ItemID != "S-1" {
		t.Fatalf("special row = %+v", d.PendingSpecial[0])
	}
	// Amount on this path is always uprice times qty.
	if d.PendingOffice[0].Amount != 1250 {
		t.Fatalf("amount = %v, want recomputed 1250", d.PendingOffice[0].Amount)
	}
	if d.PendingOffice[0].RowID == "" {
		t.Fatal("pending row lost its rowId")
	}
}

func TestBuildHistogramRawKeys(t *testing.T) {
	s := seedWorkbook(t)
	d := Build(s)
	// "Pending" and "pending" are separate keys even though both rows
	// land in the pending lists.
	if d.StatusCounts["Pending"] != 2 {
		t.Errorf(`StatusCounts["Pending"] = %d, want 2`, d.StatusCounts["Pending"])
	}
	if d.StatusCounts["pending"] != 1 {
		t.Errorf(`StatusCounts["pending"] = %d, want 1`, d.StatusCounts["pending"])
	}
	if d.StatusCounts["Approved"] != 1 {
		t.Errorf(`StatusCounts["Approved"] = %d, want 1`, d.StatusCounts["Approved"])
	}
}

func TestBuildSkipsEmptyStatusRows(t *testing.T) {
	s := seedWorkbook(t)
	d := Build(s)
	total := 0
	for _, n := range d.StatusCounts {
		total += n
	}
	// The Davao row has no status: it counts nowhere.
	if total != 4 {
		t.Fatalf("histogram total = %d, want 4", total)
	}
	for _, r := range d.PendingOffice {
		if r.Branch == "Davao" {
			t.Fatal("empty-status row leaked into the pending list")
		}
	}
}

func TestBuildSkipsInventorySheet(t *testing.T) {
	s := seedWorkbook(t)
	d := Build(s)
	if _, ok := d.StatusCounts["Active"]; ok {
		t.Fatal("inventory statuses leaked into the request histogram")
	}
}

func TestLowStockBoundaryInclusive(t *testing.T) {
	s := seedWorkbook(t)
	d := Build(s)
	// Exactly 10 counts as low stock; 25 does not.
	if d.LowStockCount != 2 {
		t.Fatalf("low stock count = %d, want 2", d.LowStockCount)
	}
	recs := ReadInventory(s)
	if !recs[1].LowStock() {
		t.Error("stock of exactly 10 must be low")
	}
	if recs[0].LowStock() {
		t.Error("stock of 25 must not be low")
	}
}

func TestReadInventoryMissingSheet(t *testing.T) {
	recs := ReadInventory(store.NewMemoryStore())
	if recs == nil || len(recs) != 0 {
		t.Fatalf("missing sheet must read as empty, got %v", recs)
	}
}

func TestGroupByBranchOrderAndTotals(t *testing.T) {
	s := store.NewMemoryStore()
	s.Load(constants.SheetOfficeRequests, [][]string{
		requestHeader,
		{"", "B", "1", "", "1", "", "", "", "Pending", ""},
		{"", "A", "2", "", "1", "", "", "", "Pending", ""},
		{"", "B", "3", "", "1", "", "", "", "Pending", ""},
		{"", "C", "4", "", "1", "", "", "", "Pending", ""},
	})
	d := Build(s)
	groups := GroupByBranch(d.PendingOffice)
	if len(groups) != 3 {
		t.Fatalf("got %d groups", len(groups))
	}
	wantOrder := []string{"B", "A", "C"}
	wantTotal := []int{2, 1, 1}
	for i, g := range groups {
		if g.Branch != wantOrder[i] || g.Total != wantTotal[i] {
			t.Errorf("group %d = %s/%d, want %s/%d", i, g.Branch, g.Total, wantOrder[i], wantTotal[i])
		}
	}
}

func TestGroupByBranchLiteralKeys(t *testing.T) {
	s := store.NewMemoryStore()
	s.Load(constants.SheetOfficeRequests, [][]string{
		requestHeader,
		{"", "Makati", "1", "", "1", "", "", "", "Pending", ""},
		{"", "makati", "2", "", "1", "", "", "", "Pending", ""},
		{"", "Makati ", "3", "", "1", "", "", "", "Pending", ""},
	})
	d := Build(s)
	groups := GroupByBranch(d.PendingOffice)
	if len(groups) != 3 {
		t.Fatalf("case and whitespace variants must not merge, got %d groups", len(groups))
	}
}

func TestGetPendingBreakdown(t *testing.T) {
	s := seedWorkbook(t)
	res := GetPendingBreakdown(s)
	if res["success"] != true || res["office"] != 2 || res["special"] != 1 {
		t.Fatalf("breakdown = %v", res)
	}
}
