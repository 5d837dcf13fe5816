package app

import (
	"github.com/gorilla/mux"
	"github.com/timekeeper/timekeeper/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Auth
	r.HandleFunc("/api/auth/register", deps.AuthHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", deps.AuthHandler.Login).Methods("POST")

	// Projects
	r.HandleFunc("/api/project", deps.ProjectHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/project", deps.ProjectHandler.Create).Methods("POST")
	r.HandleFunc("/api/project/{projectId}", deps.ProjectHandler.Rename).Methods("PUT")
	r.HandleFunc("/api/project/{projectId}", deps.ProjectHandler.Delete).Methods("DELETE")

	// Monthly allotment overrides
	r.HandleFunc("/api/project/{projectId}/allotment", deps.AllotmentHandler.ListForProject).Methods("GET")
	r.HandleFunc("/api/project/{projectId}/allotment", deps.AllotmentHandler.Set).Methods("PUT")
	r.HandleFunc("/api/project/{projectId}/allotment/{month}", deps.AllotmentHandler.Delete).Methods("DELETE")

	// Day entries
	r.HandleFunc("/api/entry", deps.EntryHandler.SetDayHours).Methods("PUT")

	// Weekly report; month validation happens in the handler so a missing
	// parameter yields a 400 instead of an unmatched route
	r.HandleFunc("/api/report/weeks", deps.ReportHandler.GetWeeks).Methods("GET")
}
