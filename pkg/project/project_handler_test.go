package project

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timekeeper/timekeeper/internal/event_bus"
)

func setupHandlerTest(t *testing.T) *Handler {
	repo := NewStubRepo()
	service := NewService(repo, event_bus.NewEventBus())
	return NewHandler(service)
}

func newRouter(handler *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/project", handler.GetAll).Methods("GET")
	r.HandleFunc("/api/project", handler.Create).Methods("POST")
	r.HandleFunc("/api/project/{projectId}", handler.Rename).Methods("PUT")
	r.HandleFunc("/api/project/{projectId}", handler.Delete).Methods("DELETE")
	return r
}

func TestHandler_Create(t *testing.T) {
	t.Run("should create a project and return 201", func(t *testing.T) {
		// given
		router := newRouter(setupHandlerTest(t))
		body, _ := json.Marshal(ProjectDTO{Code: "PRJ-1001", AllottedHours: 40})

		req := httptest.NewRequest(http.MethodPost, "/api/project", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		// when
		router.ServeHTTP(w, req)

		// then
		assert.Equal(t, http.StatusCreated, w.Code)

		var created ProjectDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
		assert.NotZero(t, created.ID)
		assert.Equal(t, "PRJ-1001", created.Code)
		assert.Equal(t, 40.0, created.AllottedHours)
	})

	t.Run("should return 409 for a duplicate code", func(t *testing.T) {
		// given
		router := newRouter(setupHandlerTest(t))
		body, _ := json.Marshal(ProjectDTO{Code: "PRJ-1001", AllottedHours: 40})
		req := httptest.NewRequest(http.MethodPost, "/api/project", bytes.NewBuffer(body))
		router.ServeHTTP(httptest.NewRecorder(), req)

		// when
		body, _ = json.Marshal(ProjectDTO{Code: "PRJ-1001", AllottedHours: 20})
		req = httptest.NewRequest(http.MethodPost, "/api/project", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// then
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("should return 400 for a malformed body", func(t *testing.T) {
		// given
		router := newRouter(setupHandlerTest(t))

		req := httptest.NewRequest(http.MethodPost, "/api/project", bytes.NewBufferString("not json"))
		w := httptest.NewRecorder()

		// when
		router.ServeHTTP(w, req)

		// then
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetAll(t *testing.T) {
	t.Run("should list all projects", func(t *testing.T) {
		// given
		handler := setupHandlerTest(t)
		router := newRouter(handler)
		for _, code := range []string{"PRJ-1001", "PRJ-2002"} {
			body, _ := json.Marshal(ProjectDTO{Code: code, AllottedHours: 10})
			req := httptest.NewRequest(http.MethodPost, "/api/project", bytes.NewBuffer(body))
			router.ServeHTTP(httptest.NewRecorder(), req)
		}

		req := httptest.NewRequest(http.MethodGet, "/api/project", nil)
		w := httptest.NewRecorder()

		// when
		router.ServeHTTP(w, req)

		// then
		assert.Equal(t, http.StatusOK, w.Code)

		var projects []ProjectDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&projects))
		assert.Len(t, projects, 2)
	})
}

func TestHandler_Rename(t *testing.T) {
	t.Run("should return 404 for an unknown project", func(t *testing.T) {
		// given
		router := newRouter(setupHandlerTest(t))
		body, _ := json.Marshal(ProjectDTO{Code: "PRJ-1002"})

		req := httptest.NewRequest(http.MethodPut, "/api/project/12345", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		// when
		router.ServeHTTP(w, req)

		// then
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("should return 400 for a non-numeric projectId", func(t *testing.T) {
		// given
		router := newRouter(setupHandlerTest(t))
		body, _ := json.Marshal(ProjectDTO{Code: "PRJ-1002"})

		req := httptest.NewRequest(http.MethodPut, "/api/project/abc", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		// when
		router.ServeHTTP(w, req)

		// then
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var errResponse struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&errResponse))
		assert.Contains(t, errResponse.Error, "Invalid projectId format")
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Run("should delete a project and return 204", func(t *testing.T) {
		// given
		router := newRouter(setupHandlerTest(t))
		body, _ := json.Marshal(ProjectDTO{Code: "PRJ-1001", AllottedHours: 40})
		req := httptest.NewRequest(http.MethodPost, "/api/project", bytes.NewBuffer(body))
		created := httptest.NewRecorder()
		router.ServeHTTP(created, req)
		var createdDTO ProjectDTO
		require.NoError(t, json.NewDecoder(created.Body).Decode(&createdDTO))

		// when
		req = httptest.NewRequest(http.MethodDelete, "/api/project/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// then
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("should return 404 for an unknown project", func(t *testing.T) {
		// given
		router := newRouter(setupHandlerTest(t))

		req := httptest.NewRequest(http.MethodDelete, "/api/project/12345", nil)
		w := httptest.NewRecorder()

		// when
		router.ServeHTTP(w, req)

		// then
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
