package schema

import (
	"strconv"
	"strings"
	"time"
)

// Cell reads a row through a resolved column. Unresolved columns and rows
// shorter than the index read as "".
func Cell(row []string, col Column) string {
	if !col.OK || col.Index < 0 || col.Index >= len(row) {
		return ""
	}
	return row[col.Index]
}

// Num coerces free-form cell text to a number. Empty or malformed content
// is 0; coercion never fails.
func Num(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"01/02/2006",
	"2 Jan 2006",
	"2006/01/02",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseDate tries the layouts operator sheets actually contain. The second
// return is false for empty or unparseable text; filters treat such rows
// as undated and let them pass.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// RequestType classifies a sheet as holding office or special requests.
type RequestType string

const (
	TypeOffice  RequestType = "OFFICE"
	TypeSpecial RequestType = "SPECIAL"
)

// DetectRequestType derives the classification from the sheet name alone:
// any name containing "special" (any case) is SPECIAL, everything else is
// OFFICE.
func DetectRequestType(sheetName string) RequestType {
	if strings.Contains(strings.ToLower(sheetName), "special") {
		return TypeSpecial
	}
	return TypeOffice
}
