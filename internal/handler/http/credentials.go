package http

import (
	"net/http"

	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/internal/utils"
	"github.com/MKhiriev/ai-one-api/models"
)

func (h *Handler) createCredential(w http.ResponseWriter, r *http.Request) {
	var input models.CredentialCreate
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err, "*Handler.createCredential")
		return
	}

	credential, err := h.services.CredentialService.CreateCredential(r.Context(), input)
	if err != nil {
		writeError(w, r, err, "*Handler.createCredential")
		return
	}

	logger.FromRequest(r).Info().Int64("credential_id", credential.ID).Msg("credential created")
	utils.WriteJSON(w, credential, http.StatusCreated)
}

// listCredentials responds with the stored tokens as they are.
func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, r, err, "*Handler.listCredentials")
		return
	}

	credentials, err := h.services.CredentialService.ListCredentials(r.Context(), page)
	if err != nil {
		writeError(w, r, err, "*Handler.listCredentials")
		return
	}

	total, err := h.services.CredentialService.CountCredentials(r.Context(), page)
	if err != nil {
		writeError(w, r, err, "*Handler.listCredentials")
		return
	}

	writePage(w, page, credentials, total)
}

// getCredential responds with both secrets opened. A secret that cannot be
// opened is reported with the undecryptable state and the response is still
// 200.
func (h *Handler) getCredential(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getCredential")
		return
	}

	credential, err := h.services.CredentialService.GetCredential(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "*Handler.getCredential")
		return
	}

	utils.WriteJSON(w, credential, http.StatusOK)
}

func (h *Handler) updateCredential(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateCredential")
		return
	}

	var input models.CredentialUpdate
	if err = decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err, "*Handler.updateCredential")
		return
	}

	credential, err := h.services.CredentialService.UpdateCredential(r.Context(), id, input)
	if err != nil {
		writeError(w, r, err, "*Handler.updateCredential")
		return
	}

	utils.WriteJSON(w, credential, http.StatusOK)
}

func (h *Handler) deleteCredential(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteCredential")
		return
	}

	if err = h.services.CredentialService.DeleteCredential(r.Context(), id); err != nil {
		writeError(w, r, err, "*Handler.deleteCredential")
		return
	}

	logger.FromRequest(r).Info().Int64("credential_id", id).Msg("credential deleted")
	w.WriteHeader(http.StatusNoContent)
}
