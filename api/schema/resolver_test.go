package schema

import "testing"

func TestFindColumnHeaderOrderDominates(t *testing.T) {
	// The first alias in the list names the last column; an earlier column
	// matching a later alias must still win.
	lowered := []string{"quantity requested", "qty"}
	col := FindColumn(lowered, []string{"qty", "quantity"})
	if !col.OK || col.Index != 0 {
		t.Fatalf("expected column 0, got %+v", col)
	}
}

func TestFindColumnSubstring(t *testing.T) {
	lowered := []string{"request date", "branch / office", "approval status"}
	cases := []struct {
		alts []string
		want int
	}{
		{[]string{"status", "approval"}, 2},
		{[]string{"branch", "office", "location"}, 1},
		{[]string{"date", "date created"}, 0},
	}
	for _, c := range cases {
		col := FindColumn(lowered, c.alts)
		if !col.OK || col.Index != c.want {
			t.Errorf("FindColumn(%v) = %+v, want index %d", c.alts, col, c.want)
		}
	}
}

func TestFindColumnUnresolved(t *testing.T) {
	col := FindColumn([]string{"foo", "bar"}, []string{"status"})
	if col.OK {
		t.Fatalf("expected unresolved column, got %+v", col)
	}
	if got := Cell([]string{"a", "b"}, col); got != "" {
		t.Fatalf("unresolved Cell = %q, want empty", got)
	}
}

func TestResolveDeterministic(t *testing.T) {
	header := []string{"Item ID", "Description", "QTY", "Unit", "Branch", "Email", "Status", "PDF Link", "Unit Price", "Total Amount"}
	first := Resolve(header, RequestAliases)
	for i := 0; i < 20; i++ {
		again := Resolve(header, RequestAliases)
		for field, col := range first {
			if again[field] != col {
				t.Fatalf("resolution of %s changed between runs: %+v vs %+v", field, col, again[field])
			}
		}
	}
	if first[FieldStatus].Index != 6 || first[FieldPdfURL].Index != 7 {
		t.Fatalf("unexpected resolution: %+v", first)
	}
}

func TestExact(t *testing.T) {
	header := []string{"Supplier ID", "Name", "Status"}
	if col := Exact(header, "name"); !col.OK || col.Index != 1 {
		t.Fatalf("Exact(name) = %+v", col)
	}
	// Exact never matches on substring.
	if col := Exact(header, "supplier"); col.OK {
		t.Fatalf("Exact(supplier) should not match %q", header[0])
	}
}

func TestCellShortRow(t *testing.T) {
	col := Column{Index: 5, OK: true}
	if got := Cell([]string{"a"}, col); got != "" {
		t.Fatalf("short row Cell = %q, want empty", got)
	}
}
