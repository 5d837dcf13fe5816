package project

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/timekeeper/timekeeper/internal/rest"
	log "github.com/sirupsen/logrus"
)

type ProjectDTO struct {
	ID            int     `json:"id"`
	Code          string  `json:"code"`
	AllottedHours float64 `json:"allottedHours"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	projects, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	projectsDTO := make([]ProjectDTO, 0, len(projects))
	for _, project := range projects {
		projectsDTO = append(projectsDTO, projectToDTO(project))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(projectsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new project")
	w.Header().Set("Content-Type", "application/json")

	var projectDTO ProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&projectDTO); err != nil {
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

	created, err := h.service.Create(r.Context(), Project{
		Code:          projectDTO.Code,
		AllottedHours: projectDTO.AllottedHours,
	})
	if errors.Is(err, ErrCodeTaken) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(projectToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Rename(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	projectId, ok := projectIdVar(w, r)
	if !ok {
		return
	}

	var projectDTO ProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&projectDTO); err != nil {
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

	renamed, err := h.service.Rename(r.Context(), projectId, projectDTO.Code)
	if errors.Is(err, ErrProjectNotFound) {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, ErrCodeTaken) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(projectToDTO(renamed)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	projectId, ok := projectIdVar(w, r)
	if !ok {
		return
	}

	err := h.service.Delete(r.Context(), projectId)
	if errors.Is(err, ErrProjectNotFound) {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// projectIdVar parses the {projectId} path variable, writing a 400 response
// on failure.
func projectIdVar(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	projectId, err := strconv.ParseInt(vars["projectId"], 10, 64)
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

func projectToDTO(project Project) ProjectDTO {
	return ProjectDTO{
		ID:            project.ID,
		Code:          project.Code,
		AllottedHours: project.AllottedHours,
	}
}
