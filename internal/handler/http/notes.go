package http

import (
	"net/http"

	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/internal/utils"
	"github.com/MKhiriev/ai-one-api/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var input models.NoteCreate
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err, "*Handler.createNote")
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), input)
	if err != nil {
		writeError(w, r, err, "*Handler.createNote")
		return
	}

	logger.FromRequest(r).Info().Int64("note_id", note.ID).Msg("note created")
	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, r, err, "*Handler.listNotes")
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), page)
	if err != nil {
		writeError(w, r, err, "*Handler.listNotes")
		return
	}

	total, err := h.services.NoteService.CountNotes(r.Context(), page)
	if err != nil {
		writeError(w, r, err, "*Handler.listNotes")
		return
	}

	writePage(w, page, notes, total)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getNote")
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "*Handler.getNote")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateNote")
		return
	}

	var input models.NoteUpdate
	if err = decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err, "*Handler.updateNote")
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), id, input)
	if err != nil {
		writeError(w, r, err, "*Handler.updateNote")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteNote")
		return
	}

	if err = h.services.NoteService.DeleteNote(r.Context(), id); err != nil {
		writeError(w, r, err, "*Handler.deleteNote")
		return
	}

	logger.FromRequest(r).Info().Int64("note_id", id).Msg("note deleted")
	w.WriteHeader(http.StatusNoContent)
}
