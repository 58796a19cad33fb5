package store

import (
	"fmt"
	"log"

	"github.com/extrame/xls"
)

// ImportLegacyWorkbook copies every sheet of a legacy .xls workbook into
// the store. Sheets that already exist receive the legacy data rows
// appended after their current contents; new sheets are created with the
// legacy header. Branch operators still hand over .xls exports, so this
// runs at startup when LEGACY_XLS_IMPORT is set and behind the
// importLegacyWorkbook action.
func ImportLegacyWorkbook(s Store, path string) (int, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return 0, fmt.Errorf("open legacy workbook %s: %w", path, err)
	}

	imported := 0
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil || sheet.MaxRow == 0 {
			continue
		}
		rows := make([][]string, 0, int(sheet.MaxRow)+1)
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			cells := make([]string, 0, row.LastCol()+1)
			for c := 0; c <= row.LastCol(); c++ {
				cells = append(cells, row.Col(c))
			}
			rows = append(rows, cells)
		}
		if len(rows) == 0 || len(rows[0]) == 0 {
			continue
		}
		if err := s.CreateSheet(sheet.Name, rows[0]); err != nil {
			log.Printf("[WARN] legacy import: create sheet %s: %v", sheet.Name, err)
			continue
		}
		for _, data := range rows[1:] {
			if len(data) == 0 {
				continue
			}
			if err := s.AppendRow(sheet.Name, data); err != nil {
				log.Printf("[WARN] legacy import: append to %s: %v", sheet.Name, err)
				continue
			}
			imported++
		}
	}
	return imported, nil
}
