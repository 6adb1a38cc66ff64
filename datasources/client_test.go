package datasources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/ports":
			// Bare array form
			w.Write([]byte(`[{"id": "p1", "name": "Shanghai", "country": "China", "annualThroughput": 47000000}]`))
		case "/api/disruptions":
			// Envelope form
			w.Write([]byte(`{"data": [{"id": "d1", "title": "Typhoon", "severity": "high", "regions": "Asia Pacific"}]}`))
		case "/api/tariffs":
			w.Write([]byte(`[{"id": "t1", "title": "Section 301", "countries": ["China"], "rate": 25, "affected_trade": "$2.3B"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	snap, err := client.FetchSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Ports, 1)
	assert.Equal(t, 47000000.0, snap.Ports[0].AnnualThroughput)

	require.Len(t, snap.Disruptions, 1)
	assert.Equal(t, []string{"Asia Pacific"}, snap.Disruptions[0].AffectedRegions)

	require.Len(t, snap.Tariffs, 1)
	assert.Equal(t, 2.3e9, snap.Tariffs[0].AffectedTrade)
}

func TestFetchSnapshotUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.FetchSnapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error 500")
}

func TestFetchSnapshotBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.FetchSnapshot(context.Background())
	assert.Error(t, err)
}

func TestFetchSnapshotContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.FetchSnapshot(ctx)
	assert.Error(t, err)
}

func TestNewClientDefaultTimeout(t *testing.T) {
	client := NewClient("http://localhost:9999", 0)
	assert.Equal(t, 30*time.Second, client.Client.Timeout)
}
