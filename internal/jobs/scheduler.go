package jobs

import (
	"fmt"
	"log"

	"RequisTrack/internal/config"
	"RequisTrack/internal/logger"
	"RequisTrack/internal/serviceiface"
	"RequisTrack/internal/store"
)

type CronService struct {
	config map[string]interface{}
	store  store.Store
	stop   func()
}

func NewCronService(cfg map[string]interface{}, s store.Store) serviceiface.Service {
	return &CronService{
		config: cfg,
		store:  s,
	}
}

func (s *CronService) Name() string {
	return "cron"
}

func (s *CronService) Start() error {
	log.Println("Starting cron service...")

	snapCfg := SnapshotConfig{
		Schedule: config.DefaultLowStockSchedule,
		TimeZone: config.DefaultTimeZone,
	}
	if s.config != nil {
		if schedule, ok := s.config["low_stock_schedule"].(string); ok && schedule != "" {
			snapCfg.Schedule = schedule
		}
		if tz, ok := s.config["timezone"].(string); ok && tz != "" {
			snapCfg.TimeZone = tz
		}
	}

	stop, err := RunLowStockSnapshot(snapCfg, s.store)
	if err != nil {
		return fmt.Errorf("failed to start low stock snapshot: %v", err)
	}
	s.stop = stop

	logger.GlobalLogger.LogAudit("Cron service started with low stock snapshot")
	log.Println("Cron service started — Low Stock Snapshot scheduled")
	return nil
}

func (s *CronService) Stop() error {
	if s.stop != nil {
		s.stop()
	}
	log.Println("Cron service stopped.")
	return nil
}
