package api

import (
	"encoding/json"
	"log"
	"net/http"

	"RequisTrack/api/constants"
)

// Result is the action envelope every handler returns: success plus an
// optional message and any action-specific keys.
type Result map[string]interface{}

// Fail builds a failure envelope.
func Fail(message string) Result {
	return Result{"success": false, "message": message}
}

// OK builds a success envelope with a message.
func OK(message string) Result {
	return Result{"success": true, "message": message}
}

// OKData builds a success envelope carrying a data payload.
func OKData(data interface{}) Result {
	return Result{"success": true, "data": data}
}

// With adds a key to the envelope and returns it, for chaining.
func (r Result) With(key string, value interface{}) Result {
	r[key] = value
	return r
}

// WriteResult serializes an envelope. Domain failures still ship with
// HTTP 200; the envelope carries the outcome.
func WriteResult(w http.ResponseWriter, res Result) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Println("[ERROR] encode response:", err)
	}
}

// RespondWithError is for transport-level failures (bad JSON, wrong
// method), where an HTTP status is warranted.
func RespondWithError(w http.ResponseWriter, status int, errMsg string) {
	log.Println("[ERROR]", errMsg)
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Result{"success": false, "message": errMsg})
}
