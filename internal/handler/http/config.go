package http

import (
	"net/http"

	"github.com/associo/tallysync/internal/logger"
	"github.com/associo/tallysync/internal/utils"
)

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, found := utils.GetDeviceSessionFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getConfig").Msg("no device session was given")
		http.Error(w, "no device session was given", http.StatusUnauthorized)
		return
	}

	campaignConfig, err := h.services.Config.BuildCampaignConfig(ctx, session)
	if err != nil {
		log.Error().Err(err).Str("func", "*Handler.getConfig").Msg("error building campaign config")
		http.Error(w, "error building campaign config", statusFromError(err))
		return
	}

	utils.WriteJSON(w, campaignConfig, http.StatusOK)
}
