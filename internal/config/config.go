package config

const (
	DefaultTimeZone = "Asia/Manila"

	// LowStockThreshold marks an inventory row as low stock when
	// total running stocks is at or below it (inclusive).
	LowStockThreshold = 10

	// Snapshot Job Constants
	DefaultLowStockSchedule = "0 6 * * *" // daily, before branches open
	DefaultPassword         = "changeme123"
)
