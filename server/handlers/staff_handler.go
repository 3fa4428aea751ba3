package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	services "footworks-server/service"
)

const (
	DATE_QUERY_ARG = "date"
	DATE_LAYOUT    = "2006-01-02"
)

// StaffTimesResponse is the payload for a per-staff slot lookup.
type StaffTimesResponse struct {
	StaffScheduleID int      `json:"staff_schedule_id"`
	Date            string   `json:"date"`
	Times           []string `json:"times"`
}

type StaffHandler struct {
	staffService *services.StaffService
}

func NewStaffHandler(staffService *services.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// GetAvailableStaff handles GET /v1/staff/available?date=YYYY-MM-DD
func (h *StaffHandler) GetAvailableStaff(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateArg(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	available, err := h.staffService.GetAvailableStaff(date)
	if err != nil {
		log.Println("Error loading available staff:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, available)
}

// GetStaffTimes handles GET /v1/staff/{id}/times?date=YYYY-MM-DD
func (h *StaffHandler) GetStaffTimes(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid staff id", http.StatusBadRequest)
		return
	}

	date, ok := parseDateArg(r.URL.Query(), w)
	if !ok {
		return
	}

	times, err := h.staffService.GetTimesForStaff(id, date)
	if err != nil {
		log.Println("Error resolving staff times:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, StaffTimesResponse{
		StaffScheduleID: id,
		Date:            date.Format(DATE_LAYOUT),
		Times:           times,
	})
}

func parseDateArg(vals url.Values, w http.ResponseWriter) (time.Time, bool) {
	date, err := time.Parse(DATE_LAYOUT, vals.Get(DATE_QUERY_ARG))
	if err != nil {
		http.Error(w, "Invalid argument "+DATE_QUERY_ARG, http.StatusBadRequest)
		return time.Time{}, false
	}
	return date, true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// Ping handles GET /ping
func (h *StaffHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
