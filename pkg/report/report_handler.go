package report

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/timekeeper/timekeeper/internal/rest"
)

type WeekRowDTO struct {
	ProjectCodeID int                `json:"projectCodeId"`
	ProjectCode   string             `json:"projectCode"`
	Allotted      float64            `json:"allotted"`
	Days          map[string]float64 `json:"days"`
	Total         float64            `json:"total"`
	Remaining     float64            `json:"remaining"`
}

type WeekSliceDTO struct {
	WeekIndex int          `json:"weekIndex"`
	StartDate string       `json:"startDate"`
	EndDate   string       `json:"endDate"`
	Rows      []WeekRowDTO `json:"rows"`
}

type Handler struct {
	service     Service
	csvRenderer Renderer
}

func NewHandler(service Service, csvRenderer Renderer) *Handler {
	return &Handler{service: service, csvRenderer: csvRenderer}
}

func (h *Handler) GetWeeks(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if _, err := time.Parse(monthLayout, month); err != nil {
		w.Header().Set("Content-Type", "application/json")
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

	weeks, err := h.service.GetWeeks(r.Context(), month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		csv, err := h.csvRenderer.RenderWeeks(weeks)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(weeksToDTO(weeks)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func weeksToDTO(weeks []WeekSlice) []WeekSliceDTO {
	weeksDTO := make([]WeekSliceDTO, 0, len(weeks))
	for _, week := range weeks {
		rows := make([]WeekRowDTO, 0, len(week.Rows))
		for _, row := range week.Rows {
			rows = append(rows, WeekRowDTO{
				ProjectCodeID: row.ProjectID,
				ProjectCode:   row.ProjectCode,
				Allotted:      row.Allotted,
				Days:          row.Days,
				Total:         row.Total,
				Remaining:     row.Remaining,
			})
		}
		weeksDTO = append(weeksDTO, WeekSliceDTO{
			WeekIndex: week.WeekIndex,
			StartDate: week.StartDate.Format(dateLayout),
			EndDate:   week.EndDate.Format(dateLayout),
			Rows:      rows,
		})
	}
	return weeksDTO
}
