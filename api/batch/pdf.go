package batch

import (
	"log"
	"strings"

	"RequisTrack/api"
	"RequisTrack/api/schema"
	"RequisTrack/internal/store"
)

// PdfSelection is the single document surfaced for a branch when printing
// a batch.
type PdfSelection struct {
	URL         string             `json:"url"`
	Type        schema.RequestType `json:"type"`
	ItemID      string             `json:"itemId"`
	Description string             `json:"description"`
}

// SelectPdfPerBranch picks one document URL per branch from the selected
// rows. The first ref touching a branch seeds it; a later ref replaces the
// selection only when it upgrades OFFICE to SPECIAL, so for two types the
// outcome does not depend on ref order. Rows without a URL and rows that
// fail to read are skipped, never fatal.
func SelectPdfPerBranch(s store.Store, refs []RowRef) map[string]PdfSelection {
	selected := map[string]PdfSelection{}

	for _, ref := range refs {
		rows, err := s.GetSheet(ref.SheetName)
		if err != nil {
			log.Printf("[WARN] pdf fetch failed for %s#%d: %v", ref.SheetName, ref.RowNumber, err)
			continue
		}
		pos, ok := position(s, ref)
		if !ok || pos < 1 || pos > len(rows) {
			log.Printf("[WARN] pdf fetch failed for %s#%d: row out of range", ref.SheetName, ref.RowNumber)
			continue
		}
		lowered := schema.Lower(rows[0])
		urlCol := schema.FindColumn(lowered, schema.RequestAliases[schema.FieldPdfURL])
		branchCol := schema.FindColumn(lowered, schema.RequestAliases[schema.FieldBranch])
		row := rows[pos-1]

		url := strings.TrimSpace(schema.Cell(row, urlCol))
		if url == "" {
			continue
		}
		branch := strings.TrimSpace(schema.Cell(row, branchCol))
		if branch == "" {
			branch = ref.Branch
		}
		if branch == "" {
			branch = "Unknown"
		}

		reqType := schema.DetectRequestType(ref.SheetName)
		pick := PdfSelection{URL: url, Type: reqType, ItemID: ref.ItemID, Description: ref.Description}

		existing, seen := selected[branch]
		if !seen {
			selected[branch] = pick
			continue
		}
		if existing.Type != schema.TypeSpecial && reqType == schema.TypeSpecial {
			selected[branch] = pick
		}
	}
	return selected
}

// GetBatchPdfUrls is the dispatch handler.
func GetBatchPdfUrls(s store.Store, refs []RowRef) api.Result {
	return api.OKData(SelectPdfPerBranch(s, refs))
}
