package allotment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/timekeeper/timekeeper/internal/rest"
	"github.com/timekeeper/timekeeper/pkg/project"
)

type MonthAllotmentDTO struct {
	ProjectID     int     `json:"projectId"`
	Month         string  `json:"month"`
	AllottedHours float64 `json:"allottedHours"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	projectId, ok := projectIdVar(w, r)
	if !ok {
		return
	}

	var overrideDTO MonthAllotmentDTO
	if err := json.NewDecoder(r.Body).Decode(&overrideDTO); err != nil {
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

	stored, err := h.service.Set(r.Context(), MonthAllotment{
		ProjectID:     projectId,
		Month:         overrideDTO.Month,
		AllottedHours: overrideDTO.AllottedHours,
	})
	if errors.Is(err, ErrInvalidMonth) {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid month format",
			Details: "Month must be formatted YYYY-MM",
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
	if err := json.NewEncoder(w).Encode(overrideToDTO(stored)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) ListForProject(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	projectId, ok := projectIdVar(w, r)
	if !ok {
		return
	}

	overrides, err := h.service.ListForProject(r.Context(), projectId)
	if errors.Is(err, project.ErrProjectNotFound) {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	overridesDTO := make([]MonthAllotmentDTO, 0, len(overrides))
	for _, override := range overrides {
		overridesDTO = append(overridesDTO, overrideToDTO(override))
	}

	if err := json.NewEncoder(w).Encode(overridesDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	projectId, ok := projectIdVar(w, r)
	if !ok {
		return
	}
	month := mux.Vars(r)["month"]

	err := h.service.Delete(r.Context(), projectId, month)
	if errors.Is(err, ErrInvalidMonth) {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid month format",
			Details: "Month must be formatted YYYY-MM",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			return
		}
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func projectIdVar(w http.ResponseWriter, r *http.Request) (int, bool) {
	projectId, err := strconv.ParseInt(mux.Vars(r)["projectId"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid projectId format",
			Details: "Parameter projectId must be a number",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return 0, false
	}
	return int(projectId), true
}

func overrideToDTO(override MonthAllotment) MonthAllotmentDTO {
	return MonthAllotmentDTO{
		ProjectID:     override.ProjectID,
		Month:         override.Month,
		AllottedHours: override.AllottedHours,
	}
}
