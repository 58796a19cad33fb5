package store

import (
	"errors"
	"fmt"
)

// Store is the row-store contract the rest of the system consumes: named
// sheets of string cells where row 1 is the header. Row positions are
// 1-based and positional, so a delete shifts every later row up by one.
// Callers holding positions across mutations own that hazard; the RowID /
// ResolvePosition pair exists so they can opt out of it.
type Store interface {
	ListSheets() []string
	// GetSheet returns header plus data rows, or a *NotFoundError.
	GetSheet(name string) ([][]string, error)
	CreateSheet(name string, header []string) error
	AppendRow(name string, values []string) error
	// SetCell writes one cell. row is the 1-based sheet position (row 1 is
	// the header); col is the 0-based column index.
	SetCell(name string, row, col int, value string) error
	DeleteRow(name string, row int) error

	// RowID returns the synthetic identifier of the data row currently at
	// the given position. IDs are stable across mutations of other rows.
	RowID(name string, row int) (string, bool)
	// ResolvePosition maps a synthetic row id back to the row's current
	// position. Resolution and the following mutation must happen under
	// the same store without interleaved writes; both implementations
	// serialize all calls on one mutex, which narrows the staleness window
	// to the gap between the caller's resolve and mutate calls.
	ResolvePosition(name string, rowID string) (int, bool)
}

// NotFoundError reports a sheet that does not exist in the store. Its text
// doubles as the operator-facing failure message.
type NotFoundError struct {
	Sheet string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s sheet not found", e.Sheet)
}

// IsNotFound reports whether err is a missing-sheet failure.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
