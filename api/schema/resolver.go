package schema

import "strings"

// Field names a canonical column identity. Operator-maintained sheets name
// their columns inconsistently, so fields are resolved against the header
// row through alias substrings rather than exact names.
type Field string

const (
	FieldItemID      Field = "item_id"
	FieldDescription Field = "description"
	FieldQty         Field = "qty"
	FieldUnit        Field = "unit"
	FieldBranch      Field = "branch"
	FieldEmail       Field = "email"
	FieldStatus      Field = "status"
	FieldPdfURL      Field = "pdf_url"
	FieldUnitPrice   Field = "uprice"
	FieldAmount      Field = "amount"
	FieldDate        Field = "date"
)

// AliasSet maps canonical fields to header substrings, tried in order.
type AliasSet map[Field][]string

// RequestAliases covers the request-bearing sheets scanned by the
// dashboard.
var RequestAliases = AliasSet{
	FieldItemID:      {"item_id", "item id", "item"},
	FieldDescription: {"description", "desc"},
	FieldQty:         {"qty", "quantity"},
	FieldUnit:        {"unit"},
	FieldBranch:      {"branch", "office", "location"},
	FieldEmail:       {"email", "e-mail", "email address", "contact email", "contact"},
	FieldStatus:      {"status", "approval"},
	FieldPdfURL:      {"pdf", "pdf url", "pdf_url", "pdf link", "drive link"},
	FieldUnitPrice:   {"uprice", "unit price", "price"},
	FieldAmount:      {"amount", "total amount"},
}

// ReportAliases is the narrower set the report engine needs.
var ReportAliases = AliasSet{
	FieldDate:   {"date", "date created", "request date"},
	FieldBranch: {"branch", "office", "location"},
	FieldStatus: {"status", "approval"},
	FieldQty:    {"qty", "quantity"},
	FieldAmount: {"amount", "total amount"},
}

// Column is a resolved column index. A zero Column (OK false) means the
// header had no matching cell: reads yield defaults, writes are no-ops.
type Column struct {
	Index int
	OK    bool
}

// Columns is the result of resolving an alias set against one header row.
type Columns map[Field]Column

// Resolve scans the header left to right and, per field, returns the first
// header index whose lower-cased text contains any of the field's aliases.
// Header order dominates alias order: index 0 matching a later alias beats
// index 3 matching the first alias. Pure and deterministic.
func Resolve(header []string, aliases AliasSet) Columns {
	lowered := make([]string, len(header))
	for i, h := range header {
		lowered[i] = strings.ToLower(h)
	}
	cols := make(Columns, len(aliases))
	for field, alts := range aliases {
		cols[field] = FindColumn(lowered, alts)
	}
	return cols
}

// FindColumn locates the first lower-cased header cell containing any of
// the alternatives. Callers pass pre-lowered headers.
func FindColumn(lowered []string, alts []string) Column {
	for i, h := range lowered {
		for _, a := range alts {
			if strings.Contains(h, a) {
				return Column{Index: i, OK: true}
			}
		}
	}
	return Column{}
}

// Exact resolves a fixed-schema column by lower-cased name equality. The
// master sheets (suppliers, users, branches, ...) have stable headers and
// do not go through alias matching.
func Exact(header []string, name string) Column {
	for i, h := range header {
		if strings.ToLower(h) == name {
			return Column{Index: i, OK: true}
		}
	}
	return Column{}
}

// Lower returns the header row lower-cased, the shape FindColumn expects.
func Lower(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.ToLower(h)
	}
	return out
}
