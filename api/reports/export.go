package reports

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"RequisTrack/api"
	"RequisTrack/api/constants"
	"RequisTrack/internal/logger"
	"RequisTrack/internal/store"
)

// Exporter renders generated reports into downloadable .xlsx artifacts.
// Dir is where artifacts land; BaseURL is the public prefix the gateway
// serves Dir under.
type Exporter struct {
	Dir     string
	BaseURL string
}

var reportsLogHeader = []string{
	"generated_at", "date_from", "date_to", "branch", "request_type", "rows", "download_url",
}

// Export writes the filtered report to a fresh workbook, records it in the
// REPORTS LOG sheet and returns the download link.
func (e Exporter) Export(s store.Store, p Params) api.Result {
	rows := Generate(s, p)
	summary := Summarize(rows)

	name := fmt.Sprintf("report_%s_%s.xlsx",
		time.Now().Format("20060102_150405"), uuid.NewString()[:8])

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []interface{}{"Sheet", "Row", "Date", "Branch", "Description", "Qty", "Amount", "Status"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return api.Fail(err.Error())
	}
	for i, r := range rows {
		cells := []interface{}{r.SheetName, r.RowNumber, r.Date, r.Branch, r.Description, r.Qty, r.Amount, r.Status}
		anchor, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, anchor, &cells); err != nil {
			return api.Fail(err.Error())
		}
	}
	if err := f.SaveAs(filepath.Join(e.Dir, name)); err != nil {
		return api.Fail(fmt.Sprintf("save report artifact: %v", err))
	}

	url := strings.TrimRight(e.BaseURL, "/") + "/" + name
	e.logExport(s, p, summary, url)
	logger.Audit(fmt.Sprintf("report exported: %d rows -> %s", summary.Rows, name))

	return api.OKData(rows).
		With("summary", summary).
		With("downloadUrl", url)
}

// logExport appends to REPORTS LOG, creating the sheet on first use. Log
// failures are not fatal to the export.
func (e Exporter) logExport(s store.Store, p Params, summary Summary, url string) {
	if err := s.CreateSheet(constants.SheetReportsLog, reportsLogHeader); err != nil {
		logger.Audit(fmt.Sprintf("reports log unavailable: %v", err))
		return
	}
	err := s.AppendRow(constants.SheetReportsLog, []string{
		time.Now().UTC().Format(constants.DateTimeFormat),
		p.DateFrom, p.DateTo, p.Branch, p.RequestType,
		fmt.Sprintf("%d", summary.Rows), url,
	})
	if err != nil {
		logger.Audit(fmt.Sprintf("reports log append failed: %v", err))
	}
}
