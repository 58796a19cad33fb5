package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"RequisTrack/internal/appmanager"
	"RequisTrack/internal/store"
)

// InitStore opens the workbook named by env vars, seeding it from a legacy
// .xls export when one is configured and the workbook is newly created.
func InitStore() (store.Store, error) {
	path := os.Getenv("WORKBOOK_PATH")
	if path == "" {
		path = "requistrack.xlsx"
	}
	_, statErr := os.Stat(path)
	wb, err := store.OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	if legacy := os.Getenv("LEGACY_XLS_IMPORT"); legacy != "" && os.IsNotExist(statErr) {
		n, err := store.ImportLegacyWorkbook(wb, legacy)
		if err != nil {
			return nil, err
		}
		log.Printf("imported %d rows from %s", n, legacy)
	}
	return wb, nil
}

func main() {
	// Load .env for local dev
	_ = godotenv.Load(".env")

	s, err := InitStore()
	if err != nil {
		log.Fatal("failed to open workbook:", err)
	}
	appmanager.SetStore(s)

	manager := appmanager.NewAppManager()

	// Load service configs from YAML
	servicesCfg, err := appmanager.LoadServiceSequence("services.yaml")
	if err != nil {
		log.Fatal("failed to load service sequence:", err)
	}

	// Automatically register all services
	manager.AutoRegisterServices(servicesCfg)

	// Start all services
	if err := manager.StartAll(); err != nil {
		log.Fatal("failed to start:", err)
	}

	// Graceful shutdown handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	// Stop all services
	if err := manager.StopAll(); err != nil {
		log.Fatal("failed to stop:", err)
	}
}
