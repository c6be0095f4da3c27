package http

import (
	"net/http"
	"strconv"

	"github.com/associo/tallysync/internal/logger"
	"github.com/associo/tallysync/internal/utils"
)

func (h *Handler) getLocalities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	localities, err := h.services.Locality.AllLocalities(ctx)
	if err != nil {
		log.Error().Err(err).Str("func", "*Handler.getLocalities").Msg("error loading localities")
		http.Error(w, "error loading localities", statusFromError(err))
		return
	}

	utils.WriteJSON(w, localities, http.StatusOK)
}

func (h *Handler) searchLocalities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query().Get("q")

	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil {
			log.Err(err).Str("func", "*Handler.searchLocalities").Msg("invalid limit parameter")
			http.Error(w, "invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	localities, err := h.services.Locality.Search(ctx, query, limit)
	if err != nil {
		log.Error().Err(err).Str("func", "*Handler.searchLocalities").Msg("error searching localities")
		http.Error(w, "error searching localities", statusFromError(err))
		return
	}

	utils.WriteJSON(w, localities, http.StatusOK)
}
