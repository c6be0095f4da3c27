package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/associo/tallysync/internal/logger"
	"github.com/associo/tallysync/internal/mock"
	"github.com/associo/tallysync/internal/service"
	"github.com/associo/tallysync/models"
)

type handlerMocks struct {
	sync     *mock.MockSyncService
	usage    *mock.MockUsageService
	config   *mock.MockConfigService
	locality *mock.MockLocalityService
	token    *mock.MockTokenService
}

func newTestRouter(t *testing.T) (*chi.Mux, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := handlerMocks{
		sync:     mock.NewMockSyncService(ctrl),
		usage:    mock.NewMockUsageService(ctrl),
		config:   mock.NewMockConfigService(ctrl),
		locality: mock.NewMockLocalityService(ctrl),
		token:    mock.NewMockTokenService(ctrl),
	}
	services := &service.Services{
		Sync:     mocks.sync,
		Usage:    mocks.usage,
		Config:   mocks.config,
		Locality: mocks.locality,
		Token:    mocks.token,
	}
	handler := NewHandler(services, "1.2.3", logger.Nop())

	return handler.Init(), mocks
}

func authorize(mocks handlerMocks) models.DeviceSession {
	session := models.DeviceSession{DeviceID: "device-1", QuestionnaireID: 1}
	mocks.token.EXPECT().ParseCredential("valid-credential").Return(session, nil)
	return session
}

func doRequest(t *testing.T, router *chi.Mux, method, target, token string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHandler_Ping(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/ping", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_Version(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/version", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body versionResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "1.2.3", body.Version)
}

func TestHandler_TraceIDHeaderIsSet(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/ping", "", nil)
	assert.NotEmpty(t, recorder.Header().Get("X-Trace-ID"))
}

func TestHandler_Sync_RequiresAuthorization(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/sync", "", []byte(`{}`))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_Sync_RejectsInvalidCredential(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.token.EXPECT().ParseCredential("bad").Return(models.DeviceSession{}, service.ErrInvalidCredential)

	recorder := doRequest(t, router, http.MethodPost, "/api/sync", "bad", []byte(`{}`))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_Sync_RejectsExpiredCredential(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.token.EXPECT().ParseCredential("expired").Return(models.DeviceSession{}, service.ErrCredentialExpired)

	recorder := doRequest(t, router, http.MethodPost, "/api/sync", "expired", []byte(`{}`))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "expired")
}

func TestHandler_Sync(t *testing.T) {
	router, mocks := newTestRouter(t)
	session := authorize(mocks)

	request := models.SyncRequest{
		Records: []models.VisitRecord{{
			LocalID:         "0c6a4b06-5a2e-4b6d-9c38-0e8f1d0a8f11",
			QuestionnaireID: 1,
			SiteID:          2,
			AdultCount:      2,
		}},
		Length: 1,
	}
	response := models.SyncResponse{
		Results: []models.SyncResult{{LocalID: request.Records[0].LocalID, Success: true, Created: true}},
		Length:  1,
	}
	mocks.sync.EXPECT().Reconcile(gomock.Any(), session, request).Return(response, nil)

	body, err := json.Marshal(request)
	require.NoError(t, err)

	recorder := doRequest(t, router, http.MethodPost, "/api/sync", "valid-credential", body)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got models.SyncResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Equal(t, response, got)
}

func TestHandler_Sync_InvalidJSON(t *testing.T) {
	router, mocks := newTestRouter(t)
	authorize(mocks)

	recorder := doRequest(t, router, http.MethodPost, "/api/sync", "valid-credential", []byte(`{not json`))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_Sync_EmptyBatchShortCircuits(t *testing.T) {
	router, mocks := newTestRouter(t)
	authorize(mocks)

	// No Reconcile expectation: an empty batch never reaches the service.
	recorder := doRequest(t, router, http.MethodPost, "/api/sync", "valid-credential", []byte(`{"records":[],"length":0}`))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got models.SyncResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Empty(t, got.Results)
}

func TestHandler_GetConfig(t *testing.T) {
	router, mocks := newTestRouter(t)
	session := authorize(mocks)

	campaignConfig := models.CampaignConfig{
		Questionnaire: models.Questionnaire{ID: 1, Name: "Spring census", Active: true},
		Sites:         []models.Site{{ID: 2, QuestionnaireID: 1, Name: "North gate"}},
	}
	mocks.config.EXPECT().BuildCampaignConfig(gomock.Any(), session).Return(campaignConfig, nil)

	recorder := doRequest(t, router, http.MethodGet, "/api/config", "valid-credential", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got models.CampaignConfig
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Equal(t, campaignConfig, got)
}

func TestHandler_GetLocalities(t *testing.T) {
	router, mocks := newTestRouter(t)
	authorize(mocks)

	localities := []models.Locality{{ID: 10, Name: "Ashford", PostalCode: "12043"}}
	mocks.locality.EXPECT().AllLocalities(gomock.Any()).Return(localities, nil)

	recorder := doRequest(t, router, http.MethodGet, "/api/localities", "valid-credential", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got []models.Locality
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Equal(t, localities, got)
}

func TestHandler_SearchLocalities(t *testing.T) {
	router, mocks := newTestRouter(t)
	authorize(mocks)

	mocks.locality.EXPECT().Search(gomock.Any(), "ash", 5).Return([]models.Locality{{ID: 10, Name: "Ashford"}}, nil)

	recorder := doRequest(t, router, http.MethodGet, "/api/localities/search?q=ash&limit=5", "valid-credential", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_SearchLocalities_InvalidLimit(t *testing.T) {
	router, mocks := newTestRouter(t)
	authorize(mocks)

	recorder := doRequest(t, router, http.MethodGet, "/api/localities/search?q=ash&limit=nope", "valid-credential", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
