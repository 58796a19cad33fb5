package constants

// Sheet names. The inventory and master sheets are fixed; every other
// sheet in the workbook is treated as a request sheet.
const (
	SheetInventory       = "ADD STOCKS"
	SheetSuppliers       = "SUPPLIERS"
	SheetSupplierItems   = "SUPPLIER ITEMS"
	SheetUsers           = "USERS"
	SheetBranches        = "BRANCHES"
	SheetPasswordReset   = "PASSWORD RESET"
	SheetOfficeRequests  = "OFFICE REQUESTS"
	SheetSpecialRequests = "SPECIAL REQUESTS"
	SheetLowStocksLog    = "LOW STOCKS LOG"
	SheetReportsLog      = "REPORTS LOG"
)

// Status text. Statuses are free-form in the sheets; these are the values
// the aggregation and report paths recognize.
const (
	StatusPending              = "pending"
	StatusApproved             = "approved"
	StatusApprovedByAccounting = "approved by accounting"
	StatusToPurchased          = "to purchased"
	StatusCancel               = "cancel"
	StatusRejected             = "rejected"
)

// Common error messages
const (
	ErrInvalidJSON      = "invalid json or missing fields"
	ErrInvalidRowsParam = "Invalid rows parameter"
	ErrMethodNotAllowed = "Method Not Allowed"
	ErrUnknownAction    = "Unknown action: "
)

// Content types
const (
	ContentTypeJSON   = "application/json"
	HeaderContentType = "Content-Type"
)

// Timestamps written into log sheets.
const DateTimeFormat = "2006-01-02 15:04:05"
