package http

import (
	"net/http"

	"github.com/adenikin/go-note-keeper/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	body := struct {
		Version string `json:"version"`
	}{Version: h.services.AppInfoService.GetAppVersion(r.Context())}

	utils.WriteJSON(w, body, http.StatusOK)
}
