package http

import (
	"net/http"

	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/internal/utils"
	"github.com/MKhiriev/ai-one-api/models"
)

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	var input models.ContactCreate
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err, "*Handler.createContact")
		return
	}

	contact, err := h.services.ContactService.CreateContact(r.Context(), input)
	if err != nil {
		writeError(w, r, err, "*Handler.createContact")
		return
	}

	logger.FromRequest(r).Info().Int64("contact_id", contact.ID).Msg("contact created")
	utils.WriteJSON(w, contact, http.StatusCreated)
}

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, r, err, "*Handler.listContacts")
		return
	}

	contacts, err := h.services.ContactService.ListContacts(r.Context(), page)
	if err != nil {
		writeError(w, r, err, "*Handler.listContacts")
		return
	}

	total, err := h.services.ContactService.CountContacts(r.Context(), page)
	if err != nil {
		writeError(w, r, err, "*Handler.listContacts")
		return
	}

	writePage(w, page, contacts, total)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getContact")
		return
	}

	contact, err := h.services.ContactService.GetContact(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "*Handler.getContact")
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateContact")
		return
	}

	var input models.ContactUpdate
	if err = decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err, "*Handler.updateContact")
		return
	}

	contact, err := h.services.ContactService.UpdateContact(r.Context(), id, input)
	if err != nil {
		writeError(w, r, err, "*Handler.updateContact")
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteContact")
		return
	}

	if err = h.services.ContactService.DeleteContact(r.Context(), id); err != nil {
		writeError(w, r, err, "*Handler.deleteContact")
		return
	}

	logger.FromRequest(r).Info().Int64("contact_id", id).Msg("contact deleted")
	w.WriteHeader(http.StatusNoContent)
}
