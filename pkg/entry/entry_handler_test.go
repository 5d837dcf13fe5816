package entry

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timekeeper/timekeeper/internal/event_bus"
	"github.com/timekeeper/timekeeper/pkg/project"
)

func setupHandlerTest(t *testing.T) (*Handler, int) {
	projectRepo := project.NewStubRepo()
	projectId, err := projectRepo.Store(ctx, project.Project{Code: "PRJ-1001", AllottedHours: 40})
	require.NoError(t, err)
	service := NewService(NewStubRepo(), projectRepo, event_bus.NewEventBus())
	return NewHandler(service), projectId
}

func TestHandler_SetDayHours(t *testing.T) {
	t.Run("should store an entry and return it", func(t *testing.T) {
		// given
		handler, projectId := setupHandlerTest(t)
		body, _ := json.Marshal(DayEntryDTO{ProjectID: projectId, Date: "2024-03-01", Hours: 8})

		req := httptest.NewRequest(http.MethodPut, "/api/entry", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		// when
		handler.SetDayHours(w, req)

		// then
		assert.Equal(t, http.StatusOK, w.Code)

		var stored DayEntryDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&stored))
		assert.Equal(t, projectId, stored.ProjectID)
		assert.Equal(t, "2024-03-01", stored.Date)
		assert.Equal(t, 8.0, stored.Hours)
	})

	t.Run("should return 400 for a malformed date", func(t *testing.T) {
		// given
		handler, projectId := setupHandlerTest(t)
		body, _ := json.Marshal(DayEntryDTO{ProjectID: projectId, Date: "March 1st", Hours: 8})

		req := httptest.NewRequest(http.MethodPut, "/api/entry", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		// when
		handler.SetDayHours(w, req)

		// then
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var errResponse struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&errResponse))
		assert.Contains(t, errResponse.Error, "Invalid date format")
	})

	t.Run("should return 404 for an unknown project", func(t *testing.T) {
		// given
		handler, _ := setupHandlerTest(t)
		body, _ := json.Marshal(DayEntryDTO{ProjectID: 12345, Date: "2024-03-01", Hours: 8})

		req := httptest.NewRequest(http.MethodPut, "/api/entry", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		// when
		handler.SetDayHours(w, req)

		// then
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("should return 400 for a malformed body", func(t *testing.T) {
		// given
		handler, _ := setupHandlerTest(t)

		req := httptest.NewRequest(http.MethodPut, "/api/entry", bytes.NewBufferString("not json"))
		w := httptest.NewRecorder()

		// when
		handler.SetDayHours(w, req)

		// then
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
