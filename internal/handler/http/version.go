package http

import (
	"net/http"

	"github.com/MKhiriev/ai-one-api/internal/utils"
)

const welcomeMessage = "Welcome to the Ai One API!"

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, messageResponse{Message: welcomeMessage}, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteText(w, serverVersion, http.StatusOK)
}
