package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	services "footworks-server/service"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateAppointment handles POST /v1/appointments
func (h *BookingHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req services.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	appointment, err := h.bookingService.BookAppointment(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRequest) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Println("Error booking appointment:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(appointment); err != nil {
		log.Println("Error encoding response:", err)
	}
}
