package http

import (
	"net/http"

	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/internal/utils"
	"github.com/MKhiriev/ai-one-api/models"
)

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	var input models.TaskCreate
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err, "*Handler.createTask")
		return
	}

	task, err := h.services.TaskService.CreateTask(r.Context(), input)
	if err != nil {
		writeError(w, r, err, "*Handler.createTask")
		return
	}

	logger.FromRequest(r).Info().Int64("task_id", task.ID).Msg("task created")
	utils.WriteJSON(w, task, http.StatusCreated)
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, r, err, "*Handler.listTasks")
		return
	}

	tasks, err := h.services.TaskService.ListTasks(r.Context(), page)
	if err != nil {
		writeError(w, r, err, "*Handler.listTasks")
		return
	}

	total, err := h.services.TaskService.CountTasks(r.Context(), page)
	if err != nil {
		writeError(w, r, err, "*Handler.listTasks")
		return
	}

	writePage(w, page, tasks, total)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getTask")
		return
	}

	task, err := h.services.TaskService.GetTask(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "*Handler.getTask")
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateTask")
		return
	}

	var input models.TaskUpdate
	if err = decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err, "*Handler.updateTask")
		return
	}

	task, err := h.services.TaskService.UpdateTask(r.Context(), id, input)
	if err != nil {
		writeError(w, r, err, "*Handler.updateTask")
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteTask")
		return
	}

	if err = h.services.TaskService.DeleteTask(r.Context(), id); err != nil {
		writeError(w, r, err, "*Handler.deleteTask")
		return
	}

	logger.FromRequest(r).Info().Int64("task_id", id).Msg("task deleted")
	w.WriteHeader(http.StatusNoContent)
}
