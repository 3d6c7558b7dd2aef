package api

import (
	"encoding/json"
	"net/http"
)

// Reserve
type ReserveRequest struct {
	SlotID         string `json:"slotId"`
	PatientName    string `json:"patientName"`
	ContactAddress string `json:"contactAddress"`
}
type ReserveResponse struct {
	Success bool `json:"success"`
}

// Errors always carry a stable "error" field.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Admin
type SeedRequest struct {
	Days int `json:"days"`
}
type SeedResponse struct {
	Inserted int64 `json:"inserted"`
}
type UpsertSpecialtyRequest struct {
	Name          string   `json:"name"`
	Practitioners []string `json:"practitioners"`
}
type SpecialtyResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Practitioners []string `json:"practitioners"`
}
type BookingSummary struct {
	SlotID       string `json:"slot_id"`
	Practitioner string `json:"practitioner"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	PatientName  string `json:"patient_name"`
	PatientPhone string `json:"patient_phone"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
