package jobs

import (
	"fmt"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"

	"RequisTrack/api/constants"
	"RequisTrack/api/reports"
	"RequisTrack/internal/logger"
	"RequisTrack/internal/store"
)

// SnapshotConfig controls the daily low stock snapshot job.
type SnapshotConfig struct {
	Schedule string
	TimeZone string
}

var lowStocksLogHeader = []string{
	"snapshot date", "item id", "description", "unit",
	"total running stocks", "supplier", "branch classification",
}

// RunLowStockSnapshot schedules the snapshot cron and returns a stop
// function for shutdown.
func RunLowStockSnapshot(cfg SnapshotConfig, s store.Store) (func(), error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone for low stock snapshot: %v", err)
	}

	c := cron.New(cron.WithLocation(loc))
	_, err = c.AddFunc(cfg.Schedule, func() {
		logger.Audit(fmt.Sprintf("Running low stock snapshot at %s", time.Now().In(loc)))
		if err := SnapshotLowStocks(s, time.Now().In(loc)); err != nil {
			logger.Audit(fmt.Sprintf("Low stock snapshot failed: %v", err))
			return
		}
		logger.Audit("Low stock snapshot completed at " + time.Now().In(loc).String())
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule low stock snapshot: %v", err)
	}
	c.Start()
	return func() { c.Stop() }, nil
}

// SnapshotLowStocks appends every at-or-under-threshold inventory row to
// the LOW STOCKS LOG sheet, creating the sheet on first use.
func SnapshotLowStocks(s store.Store, at time.Time) error {
	if err := s.CreateSheet(constants.SheetLowStocksLog, lowStocksLogHeader); err != nil {
		return err
	}
	stamp := at.Format(constants.DateTimeFormat)
	appended := 0
	for _, rec := range reports.LowStockRecords(s) {
		err := s.AppendRow(constants.SheetLowStocksLog, []string{
			stamp, rec.ItemID, rec.Description, rec.Unit,
			strconv.FormatFloat(rec.TotalRunningStocks, 'f', -1, 64),
			rec.Supplier, rec.Classification,
		})
		if err != nil {
			return err
		}
		appended++
	}
	logger.Audit(fmt.Sprintf("low stock snapshot wrote %d rows", appended))
	return nil
}
