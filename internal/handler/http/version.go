package http

import (
	"net/http"

	"github.com/associo/tallysync/internal/utils"
)

// ping answers reachability probes from field devices. It deliberately
// does nothing else: devices poll it to detect connectivity transitions.
func (h *Handler) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

type versionResponse struct {
	Version string `json:"version"`
}

func (h *Handler) getVersion(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, versionResponse{Version: h.version}, http.StatusOK)
}
