package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	apperrors "turnero/internal/errors"
	"turnero/internal/service"
)

type BookingHandler struct {
	Availability *service.AvailabilityService
	Booking      *service.BookingService
}

func NewBookingHandler(availability *service.AvailabilityService, booking *service.BookingService) *BookingHandler {
	return &BookingHandler{Availability: availability, Booking: booking}
}

// ListSlots serves the calendar feed: every open slot of one practitioner.
func (h *BookingHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	practitioner := r.URL.Query().Get("practitioner")
	events, err := h.Availability.ForPractitioner(practitioner)
	if err != nil {
		log.Printf("Error listing slots: %v", err)
		writeError(w, http.StatusInternalServerError, "error listing slots")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// Reserve claims one slot for a patient. Business failures (bad input, lost
// race, unknown slot) come back as 400 with a stable error field; everything
// else is a 500.
func (h *BookingHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	var req ReserveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := h.Booking.Reserve(req.SlotID, req.PatientName, req.ContactAddress)
	if err != nil {
		var httpErr *apperrors.HTTPError
		if errors.As(err, &httpErr) {
			writeError(w, httpErr.Code, httpErr.Message)
			return
		}
		log.Printf("Error reserving slot %s: %v", req.SlotID, err)
		writeError(w, http.StatusInternalServerError, "unexpected error processing reservation")
		return
	}

	writeJSON(w, http.StatusOK, ReserveResponse{Success: true})
}
