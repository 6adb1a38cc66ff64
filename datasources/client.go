// Package datasources is the boundary adapter to the upstream
// dashboard services. It fetches the ports, disruptions and tariffs
// listings and hands every record through the model normalization
// layer, so the rest of the program only ever sees canonical shapes.
package datasources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"tidewatch/model"
)

// Client talks to the upstream dashboard API.
type Client struct {
	BaseURL string
	Client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchSnapshot pulls the three listings concurrently and assembles a
// normalized snapshot. Fetching is the only concurrent part; the
// returned snapshot is fully materialized before any analysis runs.
func (c *Client) FetchSnapshot(ctx context.Context) (*model.Snapshot, error) {
	var ports, disruptions, tariffs []json.RawMessage

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ports, err = c.getList(ctx, "/api/ports")
		return err
	})
	g.Go(func() error {
		var err error
		disruptions, err = c.getList(ctx, "/api/disruptions")
		return err
	})
	g.Go(func() error {
		var err error
		tariffs, err = c.getList(ctx, "/api/tariffs")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := &model.Snapshot{
		Ports:       make([]model.Port, 0, len(ports)),
		Disruptions: make([]model.Disruption, 0, len(disruptions)),
		Tariffs:     make([]model.Tariff, 0, len(tariffs)),
	}
	for i, msg := range ports {
		p, err := model.NormalizePort(msg)
		if err != nil {
			return nil, fmt.Errorf("port record %d: %w", i, err)
		}
		snap.Ports = append(snap.Ports, p)
	}
	for i, msg := range disruptions {
		d, err := model.NormalizeDisruption(msg)
		if err != nil {
			return nil, fmt.Errorf("disruption record %d: %w", i, err)
		}
		snap.Disruptions = append(snap.Disruptions, d)
	}
	for i, msg := range tariffs {
		t, err := model.NormalizeTariff(msg)
		if err != nil {
			return nil, fmt.Errorf("tariff record %d: %w", i, err)
		}
		snap.Tariffs = append(snap.Tariffs, t)
	}
	return snap, nil
}

// getList fetches a listing endpoint. Upstream services answer either
// with a bare array or with a {"data": [...]} envelope; both are
// accepted.
func (c *Client) getList(ctx context.Context, path string) ([]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Tidewatch/1.0")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("upstream %s error %d: %s", path, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var list []json.RawMessage
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", path, err)
	}
	return envelope.Data, nil
}
