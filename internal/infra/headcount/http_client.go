// Package headcount implements the bulk headcount remote client over HTTP.
package headcount

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"convoytrack/config"
	"convoytrack/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 5 * time.Second

type httpClient struct {
	endpoint string
	client   *http.Client
}

// NewHTTPClient builds the bulk headcount client from config.
func NewHTTPClient(cfg *config.HeadcountConfig) service.BulkHeadcountClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &httpClient{
		endpoint: cfg.Endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type bulkRequest struct {
	ConvoyIDs []string `json:"convoy_ids"`
}

type bulkResponse struct {
	Rows []*bulkRow `json:"rows"`
}

type bulkRow struct {
	ConvoyID           string  `json:"convoy_id"`
	MaxHeadcount       float64 `json:"max_headcount"`
	LeaderPartySize    float64 `json:"leader_party_size"`
	ConfirmedHeadcount float64 `json:"confirmed_headcount"`
	PendingHeadcount   float64 `json:"pending_headcount"`
	AvailableHeadcount float64 `json:"available_headcount"`
}

// FetchBulk posts the convoy ID set and returns the raw aggregate rows. Any
// failure is returned whole so the caller can fall back to local
// computation.
func (c *httpClient) FetchBulk(ctx context.Context, convoyIDs []string) ([]*service.BulkHeadcountRow, error) {
	body, err := json.Marshal(&bulkRequest{ConvoyIDs: convoyIDs})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal bulk headcount request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build bulk headcount request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "bulk headcount request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("bulk headcount request returned status %d", resp.StatusCode)
	}

	var payload bulkResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode bulk headcount response")
	}

	rows := make([]*service.BulkHeadcountRow, 0, len(payload.Rows))
	for _, row := range payload.Rows {
		rows = append(rows, &service.BulkHeadcountRow{
			ConvoyID:           row.ConvoyID,
			MaxHeadcount:       row.MaxHeadcount,
			LeaderPartySize:    row.LeaderPartySize,
			ConfirmedHeadcount: row.ConfirmedHeadcount,
			PendingHeadcount:   row.PendingHeadcount,
			AvailableHeadcount: row.AvailableHeadcount,
		})
	}

	return rows, nil
}
