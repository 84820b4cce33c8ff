package rostergen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/okian/squads/internal/adapters/roster"
	"github.com/okian/squads/internal/domain/model"
	"github.com/okian/squads/internal/domain/types"
	"github.com/okian/squads/pkg/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client talks to a squads server.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client with a per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{baseURL: baseURL, client: &http.Client{Timeout: timeout}}
}

// StatusError reports an unexpected response status.
type StatusError struct {
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Path, e.Status, e.Body)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, want int, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read body: %w", path, err)
	}
	if resp.StatusCode != want {
		return &StatusError{Path: path, Status: resp.StatusCode, Body: string(bytes.TrimSpace(data))}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// Health checks that the server answers /healthz.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", "", nil, http.StatusOK, nil)
}

// Reset clears the server state.
func (c *Client) Reset(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/reset", "", nil, http.StatusNoContent, nil)
}

// Upload posts players as one roster document.
func (c *Client) Upload(ctx context.Context, players []model.Player) error {
	var buf bytes.Buffer
	if err := roster.Encode(&buf, players, roster.JSON); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/players", "application/json", &buf, http.StatusCreated, nil)
}

// Waiting returns the server's waiting list in pool order.
func (c *Client) Waiting(ctx context.Context) ([]types.Row, error) {
	var body struct {
		Players []types.Row `json:"players"`
	}
	if err := c.do(ctx, http.MethodGet, "/players", "", nil, http.StatusOK, &body); err != nil {
		return nil, err
	}
	return body.Players, nil
}

// Balance requests count squads with strategy.
func (c *Client) Balance(ctx context.Context, count int, strategy string) (types.Result, error) {
	payload, err := json.Marshal(map[string]any{"count": count, "strategy": strategy})
	if err != nil {
		return types.Result{}, err
	}
	var res types.Result
	err = c.do(ctx, http.MethodPost, "/squads", "application/json", bytes.NewReader(payload), http.StatusCreated, &res)
	return res, err
}

// uploadBatches posts players in batches of cfg.BatchSize using cfg.Workers
// concurrent workers. Batch order on the server is not preserved.
func uploadBatches(ctx context.Context, c *Client, cfg *Config, players []model.Player, stats *Stats) error {
	size := max(1, cfg.BatchSize)
	var batches [][]model.Player
	for start := 0; start < len(players); start += size {
		batches = append(batches, players[start:min(start+size, len(players))])
	}
	logger.Get().Info(ctx, "uploading roster",
		logger.Int("players", len(players)),
		logger.Int("batches", len(batches)),
		logger.Int("workers", cfg.Workers))

	var (
		uploaded int64
		failed   int64
		firstErr error
		errOnce  sync.Once
	)
	batchChan := make(chan []model.Player, max(1, cfg.Workers)*WorkerChannelMultiplier)
	var wg sync.WaitGroup
	for range max(1, cfg.Workers) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for batch := range batchChan {
				if err := c.Upload(ctx, batch); err != nil {
					atomic.AddInt64(&failed, 1)
					errOnce.Do(func() { firstErr = err })
					if cfg.Verbose {
						logger.Get().Warn(ctx, "batch upload failed", logger.Error(err))
					}
					continue
				}
				atomic.AddInt64(&uploaded, 1)
			}
		}()
	}

	go func() {
		defer close(batchChan)
		for _, b := range batches {
			select {
			case <-ctx.Done():
				return
			case batchChan <- b:
			}
		}
	}()
	wg.Wait()

	stats.BatchesUploaded = int(atomic.LoadInt64(&uploaded))
	stats.BatchesFailed = int(atomic.LoadInt64(&failed))
	if firstErr != nil {
		return fmt.Errorf("%d of %d batches failed: %w", stats.BatchesFailed, len(batches), firstErr)
	}
	return ctx.Err()
}
