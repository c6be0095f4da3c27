// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/associo/tallysync/internal/logger"
	"github.com/associo/tallysync/internal/utils"
	"github.com/associo/tallysync/models"
)

// maxSyncBatchRecords bounds a single submission. Devices cap their
// batches well below this; the limit guards against runaway payloads.
const maxSyncBatchRecords = 1000

func (h *Handler) postSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, found := utils.GetDeviceSessionFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.postSync").Msg("no device session was given")
		http.Error(w, "no device session was given", http.StatusUnauthorized)
		return
	}

	var syncRequest models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&syncRequest); err != nil {
		log.Err(err).Str("func", "*Handler.postSync").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if len(syncRequest.Records) == 0 {
		utils.WriteJSON(w, models.SyncResponse{Results: []models.SyncResult{}}, http.StatusOK)
		return
	}
	if len(syncRequest.Records) > maxSyncBatchRecords {
		log.Warn().Int("records", len(syncRequest.Records)).Msg("sync batch too large")
		http.Error(w, "sync batch too large", http.StatusRequestEntityTooLarge)
		return
	}

	response, err := h.services.Sync.Reconcile(ctx, session, syncRequest)
	if err != nil {
		log.Error().Err(err).Str("func", "*Handler.postSync").Msg("error reconciling sync batch")
		http.Error(w, "error reconciling sync batch", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
