package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/asset-management/models"
)

// WriteJSON serializes data to JSON and writes it to w with statusCode.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error. It returns the number of body bytes written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteResult writes result wrapped in the API envelope: {"result": ...}.
func WriteResult(w http.ResponseWriter, result any, statusCode int) (int, error) {
	return WriteJSON(w, models.APIResponse{Result: result}, statusCode)
}

// WriteMessage writes a message-only envelope: {"message": "..."}.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.APIResponse{Message: message}, statusCode)
}
