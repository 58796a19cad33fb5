package masters

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"RequisTrack/api"
	"RequisTrack/api/schema"
	"RequisTrack/internal/store"
)

// FieldSpec describes one column of a fixed-schema master sheet. Master
// sheets are looked up by exact lower-cased header name, unlike the
// request sheets, which go through alias resolution.
type FieldSpec struct {
	Name        string // payload key and output key; also the header name unless Header is set
	Header      string // header name override for sheets whose columns differ from the payload keys
	Default     string // value used on add when the payload omits the field
	ReadDefault string // value substituted on read when the cell is empty
	Numeric     bool   // project as float64 on read
	GenID       bool   // generate a uuid on add when the payload omits the field
	AutoNow     bool   // stamp with the current time on add
	Immutable   bool   // never written by update
}

// EntitySchema drives the generic get/add/update/delete handlers for one
// master sheet.
type EntitySchema struct {
	Sheet    string
	Singular string // for messages: "<Singular> added successfully"
	Fields   []FieldSpec
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (f FieldSpec) headerName() string {
	if f.Header != "" {
		return f.Header
	}
	return f.Name
}

// GetAll projects every data row of the sheet. Row identity is the 1-based
// sheet position (plus the store's synthetic row id), so it shifts under
// structural mutations; clients re-fetch after deletes.
func GetAll(s store.Store, es EntitySchema) api.Result {
	rows, err := s.GetSheet(es.Sheet)
	if err != nil {
		return api.Fail(err.Error()).With("data", []interface{}{})
	}
	if len(rows) < 2 {
		return api.OKData([]interface{}{})
	}
	header := rows[0]
	cols := make([]schema.Column, len(es.Fields))
	for i, f := range es.Fields {
		cols[i] = schema.Exact(header, f.headerName())
	}
	out := make([]map[string]interface{}, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		rec := map[string]interface{}{"id": i + 1}
		if rowID, ok := s.RowID(es.Sheet, i+1); ok {
			rec["rowId"] = rowID
		}
		for j, f := range es.Fields {
			v := schema.Cell(rows[i], cols[j])
			if f.Numeric {
				rec[f.Name] = schema.Num(v)
				continue
			}
			if v == "" {
				v = f.ReadDefault
			}
			rec[f.Name] = v
		}
		out = append(out, rec)
	}
	return api.OKData(out)
}

// Add appends one row built in schema field order from the payload.
func Add(s store.Store, es EntitySchema, data map[string]interface{}) api.Result {
	row := make([]string, len(es.Fields))
	for i, f := range es.Fields {
		v := payloadString(data, f.Name)
		if v == "" {
			switch {
			case f.GenID:
				v = uuid.NewString()
			case f.AutoNow:
				v = nowStamp()
			default:
				v = f.Default
			}
		}
		row[i] = v
	}
	if err := s.AppendRow(es.Sheet, row); err != nil {
		return api.Fail(err.Error())
	}
	return api.OK(es.Singular + " added successfully")
}

// Update writes the mutable fields present in the payload onto the row at
// the payload's positional id. Fields missing from the sheet header are
// skipped silently.
func Update(s store.Store, es EntitySchema, data map[string]interface{}) api.Result {
	rows, err := s.GetSheet(es.Sheet)
	if err != nil {
		return api.Fail(err.Error())
	}
	if len(rows) == 0 {
		return api.Fail(es.Sheet + " has no header row")
	}
	rowNum := payloadInt(data, "id")
	if rowNum < 2 {
		return api.Fail(fmt.Sprintf("invalid row id %d for %s", rowNum, es.Sheet))
	}
	header := rows[0]
	for _, f := range es.Fields {
		if f.Immutable {
			continue
		}
		raw, present := data[f.Name]
		if !present {
			continue
		}
		col := schema.Exact(header, f.headerName())
		if !col.OK {
			continue
		}
		if err := s.SetCell(es.Sheet, rowNum, col.Index, toCellString(raw)); err != nil {
			return api.Fail(err.Error())
		}
	}
	return api.OK(es.Singular + " updated successfully")
}

// Delete removes the row at the given positional id. Later rows shift up;
// positional references held by the caller go stale.
func Delete(s store.Store, es EntitySchema, id int) api.Result {
	if id < 2 {
		return api.Fail(fmt.Sprintf("invalid row id %d for %s", id, es.Sheet))
	}
	if err := s.DeleteRow(es.Sheet, id); err != nil {
		return api.Fail(err.Error())
	}
	return api.OK(es.Singular + " deleted successfully")
}

func payloadString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		return toCellString(v)
	}
	return ""
}

func payloadInt(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		var n int
		fmt.Sscanf(v, "%d", &n)
		return n
	}
	return 0
}

func toCellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", t)
	}
}
