package server

import (
	"github.com/gorilla/mux"

	"footworks-server/server/handlers"
)

type Router struct {
	staffHandler    *handlers.StaffHandler
	mediaHandler    *handlers.MediaHandler
	bookingHandler  *handlers.BookingHandler
	selectorHandler *handlers.SelectorHandler
	router          *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	staffHandler *handlers.StaffHandler,
	mediaHandler *handlers.MediaHandler,
	bookingHandler *handlers.BookingHandler,
	selectorHandler *handlers.SelectorHandler,
	router *mux.Router) *Router {
	return &Router{
		staffHandler:    staffHandler,
		mediaHandler:    mediaHandler,
		bookingHandler:  bookingHandler,
		selectorHandler: selectorHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?date={YYYY-MM-DD}
	r.router.HandleFunc("/v1/staff/available", r.staffHandler.GetAvailableStaff).Methods("GET")
	r.router.HandleFunc("/v1/staff/{id}/times", r.staffHandler.GetStaffTimes).Methods("GET")

	r.router.HandleFunc("/v1/media/videos", r.mediaHandler.GetVideos).Methods("GET")
	r.router.HandleFunc("/v1/media/tags", r.mediaHandler.GetTags).Methods("GET")
	r.router.HandleFunc("/v1/media/videos/{id}/related", r.mediaHandler.GetRelatedVideos).Methods("GET")
	r.router.HandleFunc("/v1/media/videos/{id}/views", r.mediaHandler.LogView).Methods("POST")

	r.router.HandleFunc("/v1/appointments", r.bookingHandler.CreateAppointment).Methods("POST")

	r.router.HandleFunc("/v1/selector/responses", r.selectorHandler.SubmitResponse).Methods("POST")
	r.router.HandleFunc("/v1/selector/categories", r.selectorHandler.GetCategories).Methods("GET")

	r.router.HandleFunc("/ping", r.staffHandler.Ping).Methods("GET")
}
