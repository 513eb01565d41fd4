package api

import (
	"encoding/json"
	"net/http"
)

// writeJSON encodes data as the whole response body. Item payloads stay
// unwrapped so clients can decode them directly.
func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError answers with {"error": "..."}.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
