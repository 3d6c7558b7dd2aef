package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"turnero/internal/db"
	"turnero/internal/service"

	"github.com/gorilla/mux"
)

type AdminHandler struct {
	Admin *service.AdminService
	Seed  *service.SeedService
}

func NewAdminHandler(admin *service.AdminService, seed *service.SeedService) *AdminHandler {
	return &AdminHandler{Admin: admin, Seed: seed}
}

// SeedSlots runs the horizon seeder now. The body is optional; days <= 0
// falls back to the default horizon.
func (h *AdminHandler) SeedSlots(w http.ResponseWriter, r *http.Request) {
	var req SeedRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	inserted, err := h.Seed.EnsureHorizon(req.Days)
	if err != nil {
		log.Printf("Error seeding slots: %v", err)
		writeError(w, http.StatusInternalServerError, "could not seed slots")
		return
	}
	writeJSON(w, http.StatusOK, SeedResponse{Inserted: inserted})
}

// ListBookings returns reserved slots with patient details, optionally
// filtered by date (YYYY-MM-DD) and practitioner.
func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	practitioner := r.URL.Query().Get("practitioner")

	slots, err := h.Admin.ListBookings(date, practitioner)
	if err != nil {
		log.Printf("Error listing bookings: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	bookings := make([]BookingSummary, 0, len(slots))
	for _, s := range slots {
		bookings = append(bookings, BookingSummary{
			SlotID:       s.ID,
			Practitioner: s.Practitioner,
			Date:         s.Date.Format("2006-01-02"),
			Time:         s.Time,
			PatientName:  s.PatientName,
			PatientPhone: s.PatientPhone,
		})
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *AdminHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.Admin.ListSpecialties()
	if err != nil {
		log.Printf("Error listing specialties: %v", err)
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}

	out := make([]SpecialtyResponse, 0, len(specialties))
	for _, s := range specialties {
		out = append(out, SpecialtyResponse{ID: s.ID, Name: s.Name, Practitioners: s.Practitioners})
	}
	writeJSON(w, http.StatusOK, out)
}

// UpsertSpecialty creates or replaces one specialty and its ordered
// practitioner list.
func (h *AdminHandler) UpsertSpecialty(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpsertSpecialtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" || len(req.Practitioners) == 0 {
		writeError(w, http.StatusBadRequest, "name and at least one practitioner are required")
		return
	}

	err := h.Admin.UpsertSpecialty(&db.Specialty{
		ID:            id,
		Name:          req.Name,
		Practitioners: req.Practitioners,
	})
	if err != nil {
		log.Printf("Error upserting specialty %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "could not save specialty")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Specialty saved"})
}
