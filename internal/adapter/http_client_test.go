package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/associo/tallysync/internal/config"
	"github.com/associo/tallysync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPServerAdapter(config.DeviceAdapter{
		BaseURL:        srv.URL,
		Token:          "device-token",
		RequestTimeout: 2 * time.Second,
	})
}

func TestHTTPServerAdapter_SubmitBatch(t *testing.T) {
	var gotAuth string
	var gotReq models.SyncRequest

	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/sync", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := models.SyncResponse{
			Results: []models.SyncResult{
				{LocalID: "u1", Success: true, Created: true},
			},
			Length: 1,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))

	req := models.SyncRequest{
		Records: []models.VisitRecord{{LocalID: "u1", AdultCount: 2, ChildCount: 1}},
		Length:  1,
	}
	resp, err := adapter.SubmitBatch(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Bearer device-token", gotAuth)
	assert.Equal(t, "u1", gotReq.Records[0].LocalID)
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].Created)
}

func TestHTTPServerAdapter_SubmitBatch_Unauthorized(t *testing.T) {
	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credential", http.StatusUnauthorized)
	}))

	_, err := adapter.SubmitBatch(context.Background(), models.SyncRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHTTPServerAdapter_SubmitBatch_TooLarge(t *testing.T) {
	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "sync batch too large", http.StatusRequestEntityTooLarge)
	}))

	_, err := adapter.SubmitBatch(context.Background(), models.SyncRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBatchTooLarge)
}

// A server that never answers within the timeout is a total failure: the
// engine must get an error, not a hung call.
func TestHTTPServerAdapter_SubmitBatch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	adapter := NewHTTPServerAdapter(config.DeviceAdapter{
		BaseURL:        srv.URL,
		Token:          "device-token",
		RequestTimeout: 50 * time.Millisecond,
	})

	_, err := adapter.SubmitBatch(context.Background(), models.SyncRequest{})

	require.Error(t, err)
}

func TestHTTPServerAdapter_FetchLocalities(t *testing.T) {
	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/localities", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Locality{
			{ID: 1, Name: "Springfield", PostalCode: "49001"},
			{ID: 2, Name: "Shelbyville", PostalCode: "49002"},
		})
	}))

	localities, err := adapter.FetchLocalities(context.Background())

	require.NoError(t, err)
	require.Len(t, localities, 2)
	assert.Equal(t, "Springfield", localities[0].Name)
}

func TestHTTPServerAdapter_SearchLocalities(t *testing.T) {
	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/localities/search", r.URL.Path)
		assert.Equal(t, "spring", r.URL.Query().Get("q"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Locality{{ID: 1, Name: "Springfield"}})
	}))

	localities, err := adapter.SearchLocalities(context.Background(), "spring", 10)

	require.NoError(t, err)
	require.Len(t, localities, 1)
}

func TestHTTPServerAdapter_FetchConfig(t *testing.T) {
	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/config", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.CampaignConfig{
			Questionnaire: models.Questionnaire{ID: 4, Name: "Summer count", Active: true},
		})
	}))

	cfg, err := adapter.FetchConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), cfg.Questionnaire.ID)
}

func TestHTTPServerAdapter_Ping(t *testing.T) {
	adapter := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/ping", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	assert.True(t, adapter.Ping(context.Background()))
}

func TestHTTPServerAdapter_Ping_Unreachable(t *testing.T) {
	adapter := NewHTTPServerAdapter(config.DeviceAdapter{
		BaseURL:        "http://127.0.0.1:1", // nothing listens here
		Token:          "device-token",
		RequestTimeout: 100 * time.Millisecond,
	})

	assert.False(t, adapter.Ping(context.Background()))
}
