package reports

import (
	"testing"

	"RequisTrack/api/constants"
	"RequisTrack/internal/store"
)

var reportHeader = []string{
	"Date", "Branch", "Description", "QTY", "Unit", "Unit Price", "Amount", "Status",
}

func seedReports(t *testing.T) *store.MemoryStore {
	t.Helper()
	s := store.NewMemoryStore()
	s.Load(constants.SheetOfficeRequests, [][]string{
		reportHeader,
		{"2026-01-10", "Makati", "Bond paper", "5", "ream", "250", "1250", "Pending"},
		{"2026-02-15", "Cebu", "Toner", "2", "pc", "3500", "7000", "Approved"},
		{"2026-03-20", "MAKATI", "Folders", "1", "pack", "80", "80", "Approved"},
		{"", "Davao", "Undated", "1", "pc", "10", "10", "Pending"},
		{"soon", "Makati", "Unparseable", "1", "pc", "10", "10", "Pending"},
	})
	s.Load(constants.SheetSpecialRequests, [][]string{
		reportHeader,
		{"2026-02-01", "Makati", "Chairs", "10", "pc", "1200", "12000", "approved by accounting"},
	})
	s.Load(constants.SheetSuppliers, [][]string{
		{"supplier_id", "supplier_name"},
		{"sup-1", "Acme"},
	})
	return s
}

func TestGenerateNoFilters(t *testing.T) {
	s := seedReports(t)
	rows := Generate(s, Params{})
	// 5 office + 1 special; the suppliers sheet is never scanned.
	if len(rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(rows))
	}
	for _, r := range rows {
		if r.SheetName == constants.SheetSuppliers {
			t.Fatal("master sheet leaked into the report")
		}
	}
}

func TestGenerateDateWindowInclusive(t *testing.T) {
	s := seedReports(t)
	rows := Generate(s, Params{DateFrom: "2026-02-01", DateTo: "2026-02-15"})
	// Both bounds inclusive: Feb 15 office row and Feb 1 special row stay.
	// Undated and unparseable rows always pass the window.
	byDesc := map[string]bool{}
	for _, r := range rows {
		byDesc[r.Description] = true
	}
	for _, want := range []string{"Toner", "Chairs", "Undated", "Unparseable"} {
		if !byDesc[want] {
			t.Errorf("row %q missing from windowed report (got %v)", want, byDesc)
		}
	}
	if byDesc["Bond paper"] || byDesc["Folders"] {
		t.Errorf("out-of-window rows survived: %v", byDesc)
	}
}

func TestGenerateWindowNeedsBothBounds(t *testing.T) {
	s := seedReports(t)
	rows := Generate(s, Params{DateFrom: "2026-02-01"})
	if len(rows) != 6 {
		t.Fatalf("one-sided window must not filter, got %d rows", len(rows))
	}
}

func TestGenerateBranchFilterFoldsCase(t *testing.T) {
	s := seedReports(t)
	rows := Generate(s, Params{Branch: "makati"})
	// "Makati", "MAKATI" and the special "Makati" row all match.
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	if rows := Generate(s, Params{Branch: "All"}); len(rows) != 6 {
		t.Fatalf("Branch=All filtered rows: %d", len(rows))
	}
}

func TestGenerateRequestTypeFilter(t *testing.T) {
	s := seedReports(t)
	if rows := Generate(s, Params{RequestType: "Special"}); len(rows) != 1 {
		t.Fatalf("Special rows = %d, want 1", len(rows))
	}
	if rows := Generate(s, Params{RequestType: "Office"}); len(rows) != 5 {
		t.Fatalf("Office rows = %d, want 5", len(rows))
	}
	if rows := Generate(s, Params{RequestType: "All"}); len(rows) != 6 {
		t.Fatalf("All rows = %d, want 6", len(rows))
	}
}

func TestSummarizeDecimalTotal(t *testing.T) {
	rows := []ReportRow{{Amount: 0.1}, {Amount: 0.2}}
	sum := Summarize(rows)
	if sum.Rows != 2 {
		t.Fatalf("rows = %d", sum.Rows)
	}
	if sum.TotalAmount != "0.3" {
		t.Fatalf("total = %s, want 0.3", sum.TotalAmount)
	}
}

func TestMatchesPeriod(t *testing.T) {
	cases := []struct {
		date   string
		period string
		year   int
		month  int
		want   bool
	}{
		// Undated rows always pass; unparseable dated rows never do.
		{"", "yearly", 2026, 0, true},
		{"garbage", "yearly", 2026, 0, false},
		{"2026-05-01", "yearly", 2026, 0, true},
		{"2025-05-01", "yearly", 2026, 0, false},
		{"2026-05-01", "monthly", 2026, 5, true},
		{"2026-06-01", "monthly", 2026, 5, false},
		// Month 0 means any month of the year.
		{"2026-06-01", "monthly", 2026, 0, true},
		{"2025-05-01", "monthly", 2026, 5, false},
		// An unknown period filters nothing.
		{"2023-01-01", "", 2026, 0, true},
	}
	for _, c := range cases {
		if got := matchesPeriod(c.date, c.period, c.year, c.month); got != c.want {
			t.Errorf("matchesPeriod(%q, %q, %d, %d) = %v, want %v",
				c.date, c.period, c.year, c.month, got, c.want)
		}
	}
}
