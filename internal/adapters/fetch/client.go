// Package fetch retrieves raw character movelists from the external
// frame-data source. It owns the transport and its timeout; what happens to
// the data afterwards (validation, caching, classification) is not its
// concern.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pena92022/Tekken/internal/domain/model"
)

const (
	defaultTimeout = 10 * time.Second
	userAgent      = "tekken-matchup/1.0"
)

// moveRecord mirrors the source's JSON shape for one move.
type moveRecord struct {
	Command      string `json:"command"`
	HitLevel     string `json:"hit_level"`
	Damage       string `json:"damage"`
	Startup      string `json:"startup"`
	OnBlock      string `json:"on_block"`
	OnHit        string `json:"on_hit"`
	OnCounterHit string `json:"on_ch"`
	Notes        string `json:"notes"`
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithTimeout bounds one movelist request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithGameID selects the frame-data dialect requested from the source.
func WithGameID(id string) Option {
	return func(c *Client) {
		if id != "" {
			c.gameID = id
		}
	}
}

// Client fetches movelists over HTTP.
type Client struct {
	baseURL string
	gameID  string
	client  *http.Client
}

// NewClient creates a movelist client for the given source base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		gameID:  "tekken8",
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Movelist fetches the move list for one canonical character id. The
// signature matches repository.FetchFunc.
func (c *Client) Movelist(ctx context.Context, characterID string) ([]model.Move, error) {
	u := fmt.Sprintf("%s/api/1/%s/movelist/%s", c.baseURL, url.PathEscape(c.gameID), url.PathEscape(characterID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building movelist request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching movelist for %s: %w", characterID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("movelist source returned status %d for %s", resp.StatusCode, characterID)
	}

	var records []moveRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("parsing movelist for %s: %w", characterID, err)
	}

	moves := make([]model.Move, len(records))
	for i, r := range records {
		moves[i] = model.Move{
			Command:      r.Command,
			HitLevel:     r.HitLevel,
			Damage:       r.Damage,
			Startup:      r.Startup,
			OnBlock:      r.OnBlock,
			OnHit:        r.OnHit,
			OnCounterHit: r.OnCounterHit,
			Notes:        r.Notes,
		}
	}
	return moves, nil
}
