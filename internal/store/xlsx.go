package store

import (
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// WorkbookStore adapts a single .xlsx workbook on disk: every sheet is a
// table. Mutations hit the in-memory workbook first and are flushed to the
// same path before returning. All calls serialize on one mutex, so row
// positions cannot shift under a single operation.
type WorkbookStore struct {
	mu   sync.Mutex
	path string
	f    *excelize.File
	ids  map[string][]string
}

// OpenWorkbook opens path, creating an empty workbook when the file does
// not exist yet.
func OpenWorkbook(path string) (*WorkbookStore, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("open workbook %s: %w", path, err)
		}
		f = excelize.NewFile()
		if err := f.SaveAs(path); err != nil {
			return nil, fmt.Errorf("create workbook %s: %w", path, err)
		}
	}
	ws := &WorkbookStore{path: path, f: f, ids: make(map[string][]string)}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		ids := make([]string, 0)
		for i := 1; i < len(rows); i++ {
			ids = append(ids, uuid.NewString())
		}
		ws.ids[name] = ids
	}
	return ws, nil
}

func (w *WorkbookStore) save() error {
	if err := w.f.SaveAs(w.path); err != nil {
		return fmt.Errorf("save workbook %s: %w", w.path, err)
	}
	return nil
}

func (w *WorkbookStore) sheetExists(name string) bool {
	idx, err := w.f.GetSheetIndex(name)
	return err == nil && idx >= 0
}

func (w *WorkbookStore) ListSheets() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.f.GetSheetList()
}

func (w *WorkbookStore) GetSheet(name string) ([][]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.sheetExists(name) {
		return nil, &NotFoundError{Sheet: name}
	}
	return w.f.GetRows(name)
}

func (w *WorkbookStore) CreateSheet(name string, header []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.sheetExists(name) {
		return nil
	}
	if _, err := w.f.NewSheet(name); err != nil {
		return err
	}
	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := w.f.SetSheetRow(name, "A1", &cells); err != nil {
		return err
	}
	w.ids[name] = nil
	return w.save()
}

func (w *WorkbookStore) AppendRow(name string, values []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.sheetExists(name) {
		return &NotFoundError{Sheet: name}
	}
	rows, err := w.f.GetRows(name)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	anchor, _ := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err := w.f.SetSheetRow(name, anchor, &cells); err != nil {
		return err
	}
	w.ids[name] = append(w.ids[name], uuid.NewString())
	return w.save()
}

func (w *WorkbookStore) SetCell(name string, row, col int, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.sheetExists(name) {
		return &NotFoundError{Sheet: name}
	}
	if row < 1 || col < 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return err
	}
	if err := w.f.SetCellStr(name, cell, value); err != nil {
		return err
	}
	return w.save()
}

func (w *WorkbookStore) DeleteRow(name string, row int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.sheetExists(name) {
		return &NotFoundError{Sheet: name}
	}
	if row < 1 {
		return nil
	}
	if err := w.f.RemoveRow(name, row); err != nil {
		return err
	}
	if row >= 2 {
		ids := w.ids[name]
		i := row - 2
		if i < len(ids) {
			w.ids[name] = append(ids[:i], ids[i+1:]...)
		}
	}
	return w.save()
}

func (w *WorkbookStore) RowID(name string, row int) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	ids := w.ids[name]
	i := row - 2
	if i < 0 || i >= len(ids) {
		return "", false
	}
	return ids[i], true
}

func (w *WorkbookStore) ResolvePosition(name string, rowID string) (int, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, id := range w.ids[name] {
		if id == rowID {
			return i + 2, true
		}
	}
	return 0, false
}
