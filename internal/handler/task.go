package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/crewdeck/backend/internal/domain"
)

// TaskRequest is the JSON body for creating or replacing a task.
// A null or absent deadline means the task has none.
type TaskRequest struct {
	Title    string              `json:"title"`
	Notes    string              `json:"notes,omitempty"`
	Done     bool                `json:"done"`
	Deadline *openapi_types.Date `json:"deadline,omitempty"`
}

// TaskResponse is the JSON shape of a task, urgency included.
type TaskResponse struct {
	ID        string              `json:"id"`
	VesselID  string              `json:"vessel_id"`
	Title     string              `json:"title"`
	Notes     string              `json:"notes,omitempty"`
	Done      bool                `json:"done"`
	Deadline  *openapi_types.Date `json:"deadline,omitempty"`
	Urgency   string              `json:"urgency,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// ListTasks handles GET /vessels/{vesselID}/tasks.
// Every task carries its urgency, classified against the vessel's local date.
func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	vesselID, ok := pathUUID(w, r, "vesselID", "vessel not found")
	if !ok {
		return
	}

	tasks, err := s.schedules.TasksWithUrgency(r.Context(), vesselID)
	if err != nil {
		serveError(w, r, err, "vessel not found")
		return
	}

	data := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		data[i] = taskToResponse(t.Task, t.Urgency)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// CreateTask handles POST /vessels/{vesselID}/tasks.
// Create and update responses carry no urgency; classification happens on the
// list endpoint, evaluated against the current local date.
func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	vesselID, ok := pathUUID(w, r, "vesselID", "vessel not found")
	if !ok {
		return
	}

	task, err := decodeTask(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	task.VesselID = vesselID

	created, err := s.tasks.Create(r.Context(), task)
	if err != nil {
		serveError(w, r, err, "task not found")
		return
	}

	writeJSON(w, http.StatusCreated, taskToResponse(created, ""))
}

// GetTask handles GET /tasks/{taskID}.
// Like create and update responses it carries no urgency; classification
// happens on the list endpoint.
func (s *Server) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "taskID", "task not found")
	if !ok {
		return
	}

	task, err := s.tasks.GetByID(r.Context(), id)
	if err != nil {
		serveError(w, r, err, "task not found")
		return
	}

	writeJSON(w, http.StatusOK, taskToResponse(task, ""))
}

// UpdateTask handles PUT /tasks/{taskID} — a full replace.
func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "taskID", "task not found")
	if !ok {
		return
	}

	task, err := decodeTask(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	task.ID = id

	updated, err := s.tasks.Update(r.Context(), task)
	if err != nil {
		serveError(w, r, err, "task not found")
		return
	}

	writeJSON(w, http.StatusOK, taskToResponse(updated, ""))
}

// DeleteTask handles DELETE /tasks/{taskID}.
func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "taskID", "task not found")
	if !ok {
		return
	}

	if err := s.tasks.Delete(r.Context(), id); err != nil {
		serveError(w, r, err, "task not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// decodeTask reads and converts a TaskRequest body into a domain.Task.
func decodeTask(r *http.Request) (domain.Task, error) {
	var body TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return domain.Task{}, errors.New("request body is required and must be valid JSON")
	}

	t := domain.Task{
		Title: body.Title,
		Notes: body.Notes,
		Done:  body.Done,
	}
	if body.Deadline != nil {
		d := domain.DateOf(body.Deadline.Time)
		t.Deadline = &d
	}
	return t, nil
}

// taskToResponse converts a domain.Task plus its urgency into the JSON shape.
func taskToResponse(t domain.Task, urgency domain.Urgency) TaskResponse {
	resp := TaskResponse{
		ID:        t.ID.String(),
		VesselID:  t.VesselID.String(),
		Title:     t.Title,
		Notes:     t.Notes,
		Done:      t.Done,
		Urgency:   string(urgency),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.Deadline != nil {
		d := openapi_types.Date{Time: t.Deadline.Time()}
		resp.Deadline = &d
	}
	return resp
}
