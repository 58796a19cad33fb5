package store

import (
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps sheets in process memory. Tests use it directly; it is
// also the seed target for legacy workbook imports.
type MemoryStore struct {
	mu     sync.Mutex
	order  []string
	sheets map[string][][]string
	ids    map[string][]string // parallel to data rows (position 2 onward)
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sheets: make(map[string][][]string),
		ids:    make(map[string][]string),
	}
}

// Load replaces a sheet wholesale, header included. Existing row ids for
// the sheet are discarded and reissued.
func (m *MemoryStore) Load(name string, rows [][]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sheets[name]; !ok {
		m.order = append(m.order, name)
	}
	m.sheets[name] = rows
	ids := make([]string, 0)
	for i := 1; i < len(rows); i++ {
		ids = append(ids, uuid.NewString())
	}
	m.ids[name] = ids
}

func (m *MemoryStore) ListSheets() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

func (m *MemoryStore) GetSheet(name string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.sheets[name]
	if !ok {
		return nil, &NotFoundError{Sheet: name}
	}
	out := make([][]string, len(rows))
	for i, r := range rows {
		cp := make([]string, len(r))
		copy(cp, r)
		out[i] = cp
	}
	return out, nil
}

func (m *MemoryStore) CreateSheet(name string, header []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sheets[name]; ok {
		return nil
	}
	m.order = append(m.order, name)
	m.sheets[name] = [][]string{header}
	m.ids[name] = nil
	return nil
}

func (m *MemoryStore) AppendRow(name string, values []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.sheets[name]
	if !ok {
		return &NotFoundError{Sheet: name}
	}
	m.sheets[name] = append(rows, values)
	m.ids[name] = append(m.ids[name], uuid.NewString())
	return nil
}

func (m *MemoryStore) SetCell(name string, row, col int, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.sheets[name]
	if !ok {
		return &NotFoundError{Sheet: name}
	}
	if row < 1 || row > len(rows) || col < 0 {
		return nil
	}
	r := rows[row-1]
	for len(r) <= col {
		r = append(r, "")
	}
	r[col] = value
	rows[row-1] = r
	return nil
}

func (m *MemoryStore) DeleteRow(name string, row int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.sheets[name]
	if !ok {
		return &NotFoundError{Sheet: name}
	}
	if row < 1 || row > len(rows) {
		return nil
	}
	m.sheets[name] = append(rows[:row-1], rows[row:]...)
	if row >= 2 {
		ids := m.ids[name]
		i := row - 2
		if i < len(ids) {
			m.ids[name] = append(ids[:i], ids[i+1:]...)
		}
	}
	return nil
}

func (m *MemoryStore) RowID(name string, row int) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := m.ids[name]
	i := row - 2
	if i < 0 || i >= len(ids) {
		return "", false
	}
	return ids[i], true
}

func (m *MemoryStore) ResolvePosition(name string, rowID string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, id := range m.ids[name] {
		if id == rowID {
			return i + 2, true
		}
	}
	return 0, false
}
