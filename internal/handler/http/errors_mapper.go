package http

import (
	"errors"
	"net/http"

	"github.com/associo/tallysync/internal/service"
	"github.com/associo/tallysync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrCredentialExpired:       http.StatusUnauthorized,
	service.ErrInvalidCredential:       http.StatusUnauthorized,
	service.ErrInvalidLocalID:          http.StatusBadRequest,
	service.ErrEmptyCounts:             http.StatusBadRequest,
	service.ErrNegativeCounts:          http.StatusBadRequest,
	service.ErrUnknownLocality:         http.StatusBadRequest,
	service.ErrQuestionnaireOutOfScope: http.StatusForbidden,
	service.ErrSiteOutOfScope:          http.StatusForbidden,
	service.ErrQuestionnaireInactive:   http.StatusConflict,

	store.ErrQuestionnaireNotFound: http.StatusNotFound,
	store.ErrLocalityNotFound:      http.StatusNotFound,
	store.ErrUsageNotFound:         http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
