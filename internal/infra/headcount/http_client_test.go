package headcount

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"convoytrack/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_FetchBulk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req bulkRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"c1", "c2"}, req.ConvoyIDs)

		json.NewEncoder(w).Encode(bulkResponse{
			Rows: []*bulkRow{
				{ConvoyID: "c1", MaxHeadcount: 40, LeaderPartySize: 2, ConfirmedHeadcount: 12.5, PendingHeadcount: 3, AvailableHeadcount: 27},
			},
		})
	}))
	defer server.Close()

	client := NewHTTPClient(&config.HeadcountConfig{Endpoint: server.URL})

	rows, err := client.FetchBulk(context.Background(), []string{"c1", "c2"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Raw values pass through untouched; flooring happens downstream.
	assert.Equal(t, "c1", rows[0].ConvoyID)
	assert.Equal(t, 12.5, rows[0].ConfirmedHeadcount)
}

func TestHTTPClient_FetchBulk_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewHTTPClient(&config.HeadcountConfig{Endpoint: server.URL})

	rows, err := client.FetchBulk(context.Background(), []string{"c1"})
	assert.Error(t, err)
	assert.Nil(t, rows)
}

func TestHTTPClient_FetchBulk_UnreachableEndpoint(t *testing.T) {
	client := NewHTTPClient(&config.HeadcountConfig{Endpoint: "http://127.0.0.1:1"})

	rows, err := client.FetchBulk(context.Background(), []string{"c1"})
	assert.Error(t, err)
	assert.Nil(t, rows)
}
