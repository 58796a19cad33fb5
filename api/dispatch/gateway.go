package dispatch

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"RequisTrack/api"
	"RequisTrack/api/constants"
	"RequisTrack/internal/logger"
)

func extractClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	return r.RemoteAddr
}

func audit(msg string) {
	if logr := logger.GlobalLogger; logr != nil {
		logr.LogAudit(msg)
	} else {
		log.Println(msg)
	}
}

// HandleHTTP is the single inbound endpoint: every operation arrives as
// {"action": "...", "data": {...}} and leaves as a success/failure envelope.
func (d *Dispatcher) HandleHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action string          `json:"action"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.RespondWithError(w, http.StatusBadRequest, constants.ErrInvalidJSON)
		return
	}
	audit(fmt.Sprintf("[Gateway] action=%s from %s", req.Action, extractClientIP(r)))
	api.WriteResult(w, d.Handle(req.Action, req.Data))
}

// NewRouter wires the dispatch endpoint, health check and the static
// download directory for exported reports.
func NewRouter(d *Dispatcher, exportDir string) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/dispatch", d.HandleHTTP).Methods(http.MethodPost)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Gateway is healthy"))
	}).Methods(http.MethodGet)
	if exportDir != "" {
		r.PathPrefix("/exports/").Handler(
			http.StripPrefix("/exports/", http.FileServer(http.Dir(exportDir))))
	}
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.RespondWithError(w, http.StatusMethodNotAllowed, constants.ErrMethodNotAllowed)
	})
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		audit("[Gateway] [Error] " + r.URL.Path + " from " + extractClientIP(r) + " (route not found)")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("404 - Route not found"))
	})
	return r
}
