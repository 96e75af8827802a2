package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Every response carries the {success, message?, ...} envelope the dashboard
// clients expect.

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

// respondOK writes a success envelope merged with the given extra fields.
func respondOK(w http.ResponseWriter, status int, fields map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	writeJSON(w, body, status)
}

// respondError writes a failure envelope with the given message.
func respondError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, map[string]any{"success": false, "message": msg}, status)
}

// respondStoreError reports a store failure as 500. The driver detail is only
// exposed in dev mode; production clients get the generic message.
func respondStoreError(w http.ResponseWriter, msg string, err error) {
	logger.Error(msg, slog.Any("err", err))

	body := map[string]any{"success": false, "message": msg}
	if devMode && err != nil {
		body["error"] = err.Error()
	}
	writeJSON(w, body, http.StatusInternalServerError)
}
