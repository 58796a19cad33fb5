package dispatch

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"RequisTrack/api/reports"
	"RequisTrack/internal/serviceiface"
	"RequisTrack/internal/store"
)

type GatewayService struct {
	config map[string]interface{}
	store  store.Store
	server *http.Server
}

func NewGatewayService(cfg map[string]interface{}, s store.Store) serviceiface.Service {
	return &GatewayService{config: cfg, store: s}
}

func (s *GatewayService) Name() string {
	return "gateway"
}

func (s *GatewayService) Start() error {
	port := cfgString(s.config, "port", "8081")
	exportDir := cfgString(s.config, "export_dir", "exports")
	baseURL := cfgString(s.config, "export_base_url", "http://localhost:"+port+"/exports")

	d := NewDispatcher(s.store, reports.Exporter{Dir: exportDir, BaseURL: baseURL})
	s.server = &http.Server{
		Addr:    ":" + port,
		Handler: NewRouter(d, exportDir),
	}
	go func() {
		log.Println("Gateway started on :" + port)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Gateway server failed: %v", err)
		}
	}()
	return nil
}

func (s *GatewayService) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func cfgString(cfg map[string]interface{}, key, fallback string) string {
	if cfg == nil {
		return fallback
	}
	v, ok := cfg[key]
	if !ok || v == nil {
		return fallback
	}
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case int:
		return fmt.Sprintf("%d", t)
	case float64:
		return fmt.Sprintf("%d", int(t))
	}
	return fallback
}
