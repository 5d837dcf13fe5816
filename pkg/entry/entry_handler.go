package entry

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/timekeeper/timekeeper/internal/rest"
	"github.com/timekeeper/timekeeper/pkg/project"
)

type DayEntryDTO struct {
	ProjectID int     `json:"projectId"`
	Date      string  `json:"date"`
	Hours     float64 `json:"hours"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SetDayHours(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var entryDTO DayEntryDTO
	if err := json.NewDecoder(r.Body).Decode(&entryDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			return
		}
		return
	}

	stored, err := h.service.SetDayHours(r.Context(), DayEntry{
		ProjectID: entryDTO.ProjectID,
		Date:      entryDTO.Date,
		Hours:     entryDTO.Hours,
	})
	if errors.Is(err, ErrInvalidDate) {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid date format",
			Details: "Date must be formatted YYYY-MM-DD",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			return
		}
		return
	}
	if errors.Is(err, project.ErrProjectNotFound) {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(DayEntryDTO{
		ProjectID: stored.ProjectID,
		Date:      stored.Date,
		Hours:     stored.Hours,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
