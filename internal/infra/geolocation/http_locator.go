// Package geolocation implements the merchant device locator.
package geolocation

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"convoytrack/config"
	"convoytrack/internal/domain/entity"
	"convoytrack/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 5 * time.Second

type httpLocator struct {
	endpoint string
	static   *entity.Coordinate
	client   *http.Client
}

// NewHTTPLocator builds the device locator from config. Configured static
// coordinates short-circuit the remote call entirely.
func NewHTTPLocator(cfg *config.GeolocationConfig) service.DeviceLocator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	locator := &httpLocator{
		endpoint: cfg.Endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}

	if cfg.StaticLat != nil && cfg.StaticLng != nil {
		locator.static = &entity.Coordinate{Lat: *cfg.StaticLat, Lng: *cfg.StaticLng}
	}

	return locator
}

type locateResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Locate resolves the merchant device position. Failures are returned to the
// caller, which treats the position as best effort.
func (l *httpLocator) Locate(ctx context.Context) (*entity.Coordinate, error) {
	if l.static != nil {
		coord := *l.static

		return &coord, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build locate request")
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "locate request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("locate request returned status %d", resp.StatusCode)
	}

	var payload locateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode locate response")
	}

	return &entity.Coordinate{Lat: payload.Lat, Lng: payload.Lng}, nil
}
