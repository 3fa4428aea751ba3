package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	services "footworks-server/service"
)

type SelectorHandler struct {
	selectorService *services.SelectorService
}

func NewSelectorHandler(selectorService *services.SelectorService) *SelectorHandler {
	return &SelectorHandler{selectorService: selectorService}
}

// SubmitResponse handles POST /v1/selector/responses
func (h *SelectorHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	var sub services.SelectorSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	category, err := h.selectorService.SubmitResponse(sub)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRequest) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Println("Error saving selector response:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(category); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// GetCategories handles GET /v1/selector/categories
func (h *SelectorHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.selectorService.GetCategories())
}
