package api

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/cutlineapp/cutline/pkg/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("error encoding response: %v", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

// writeNoOp reports a refused edit: the precondition failed and the
// graph is unchanged. Refusals are part of normal editing, not server
// faults.
func writeNoOp(w http.ResponseWriter, reason string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"applied": false,
		"reason":  reason,
	})
}
