package utils

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Fail writes the standard failure envelope.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// FailWithError writes the failure envelope with an error detail attached.
func FailWithError(w http.ResponseWriter, status int, message, errDetail string) {
	JSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
		"error":   errDetail,
	})
}
