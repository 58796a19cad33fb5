package reports

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"RequisTrack/api"
	"RequisTrack/api/schema"
	"RequisTrack/internal/store"
)

// excludedSheets are the non-request sheets the report engine never scans,
// matched by exact lower-cased name.
var excludedSheets = map[string]bool{
	"add stocks":     true,
	"suppliers":      true,
	"supplier items": true,
	"users":          true,
	"branches":       true,
	"password reset": true,
	"low stocks log": true,
	"reports log":    true,
}

// Params are the report filters. Empty values disable their filter; the
// date window only applies when both bounds are present.
type Params struct {
	DateFrom    string `json:"dateFrom"`
	DateTo      string `json:"dateTo"`
	Branch      string `json:"branch"`
	RequestType string `json:"requestType"`
}

// ReportRow is a flattened request row surviving the filters.
type ReportRow struct {
	SheetName   string  `json:"sheetName"`
	RowNumber   int     `json:"rowNumber"`
	RowID       string  `json:"rowId,omitempty"`
	Date        string  `json:"date"`
	Branch      string  `json:"branch"`
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
}

// Summary totals the surviving rows. The amount total is summed with
// decimals so large reports do not pick up float accumulation drift.
type Summary struct {
	Rows        int    `json:"rows"`
	TotalAmount string `json:"totalAmount"`
}

// Generate runs the three filters in order over every request sheet:
// request-type on the sheet name, then the per-row date window, then the
// branch match. Undated and unparseable-dated rows always pass the window;
// both bounds are inclusive. The branch match is case-insensitive here,
// unlike the dashboard grouping, which is literal.
func Generate(s store.Store, p Params) []ReportRow {
	from, fromOK := schema.ParseDate(p.DateFrom)
	to, toOK := schema.ParseDate(p.DateTo)
	windowed := p.DateFrom != "" && p.DateTo != "" && fromOK && toOK

	results := []ReportRow{}
	for _, name := range s.ListSheets() {
		lowName := strings.ToLower(name)
		if excludedSheets[lowName] {
			continue
		}
		if p.RequestType != "" && p.RequestType != "All" {
			if p.RequestType == "Office" && !strings.Contains(lowName, "office") {
				continue
			}
			if p.RequestType == "Special" && !strings.Contains(lowName, "special") {
				continue
			}
		}
		rows, err := s.GetSheet(name)
		if err != nil || len(rows) < 2 {
			continue
		}
		header := rows[0]
		cols := schema.Resolve(header, schema.ReportAliases)
		descCol := schema.Exact(header, "description")
		for i := 1; i < len(rows); i++ {
			rawDate := schema.Cell(rows[i], cols[schema.FieldDate])
			rowBranch := schema.Cell(rows[i], cols[schema.FieldBranch])

			if windowed && rawDate != "" {
				if d, ok := schema.ParseDate(rawDate); ok {
					if d.Before(from) || d.After(to) {
						continue
					}
				}
			}
			if p.Branch != "" && p.Branch != "All" &&
				!strings.EqualFold(rowBranch, p.Branch) {
				continue
			}

			row := ReportRow{
				SheetName:   name,
				RowNumber:   i + 1,
				Date:        rawDate,
				Branch:      rowBranch,
				Description: schema.Cell(rows[i], descCol),
				Qty:         schema.Num(schema.Cell(rows[i], cols[schema.FieldQty])),
				Amount:      schema.Num(schema.Cell(rows[i], cols[schema.FieldAmount])),
				Status:      schema.Cell(rows[i], cols[schema.FieldStatus]),
			}
			if rowID, ok := s.RowID(name, i+1); ok {
				row.RowID = rowID
			}
			results = append(results, row)
		}
	}
	return results
}

// Summarize totals a generated result set.
func Summarize(rows []ReportRow) Summary {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(decimal.NewFromFloat(r.Amount))
	}
	return Summary{Rows: len(rows), TotalAmount: total.String()}
}

// GenerateReport is the dispatch handler.
func GenerateReport(s store.Store, p Params) api.Result {
	rows := Generate(s, p)
	return api.OKData(rows).With("summary", Summarize(rows))
}

// inYear and inMonth implement the branch-report period filter. Rows with
// no date always pass; dated rows must parse and land in the period.
func matchesPeriod(rawDate, period string, year, month int) bool {
	if rawDate == "" {
		return true
	}
	d, ok := schema.ParseDate(rawDate)
	if !ok {
		return false
	}
	switch period {
	case "yearly":
		return d.Year() == year
	case "monthly":
		if d.Year() != year {
			return false
		}
		return month == 0 || int(d.Month()) == month
	}
	return true
}

func currentYear() int {
	return time.Now().Year()
}
