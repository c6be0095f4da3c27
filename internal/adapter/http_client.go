package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/associo/tallysync/internal/config"
	"github.com/associo/tallysync/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. The opaque device credential is attached as a bearer
// Authorization header on every request; the adapter never looks inside
// it. Every call is bounded by cfg.RequestTimeout so a vanished server can
// never keep a sync attempt in flight forever.
func NewHTTPServerAdapter(cfg config.DeviceAdapter) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetAuthToken(cfg.Token)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SubmitBatch(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	var result models.SyncResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/sync")
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("submit batch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) FetchLocalities(ctx context.Context) ([]models.Locality, error) {
	var localities []models.Locality

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&localities).
		Get("/api/localities")
	if err != nil {
		return nil, fmt.Errorf("fetch localities request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return localities, nil
}

func (h *httpServerAdapter) SearchLocalities(ctx context.Context, query string, limit int) ([]models.Locality, error) {
	var localities []models.Locality

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&localities).
		Get("/api/localities/search")
	if err != nil {
		return nil, fmt.Errorf("search localities request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return localities, nil
}

func (h *httpServerAdapter) FetchConfig(ctx context.Context) (models.CampaignConfig, error) {
	var cfg models.CampaignConfig

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&cfg).
		Get("/api/config")
	if err != nil {
		return models.CampaignConfig{}, fmt.Errorf("fetch config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CampaignConfig{}, err
	}

	return cfg, nil
}

// Ping reports server reachability. Any 2xx answer counts; errors and
// non-2xx statuses mean "offline" and are deliberately not surfaced.
func (h *httpServerAdapter) Ping(ctx context.Context) bool {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/ping")
	if err != nil {
		return false
	}

	return resp.StatusCode() >= 200 && resp.StatusCode() < 300
}
