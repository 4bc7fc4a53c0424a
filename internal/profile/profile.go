package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// ErrPlayerNotFound means the profile API answered successfully but
// returned no player for the requested identifier.
var ErrPlayerNotFound = errors.New("profile: player not found")

// Resolver looks up a user's public display name. Failure is expected
// to be tolerated by callers; resolution is best-effort enrichment.
type Resolver interface {
	DisplayName(ctx context.Context, steamID string) (string, error)
}

const summariesPath = "/ISteamUser/GetPlayerSummaries/v0002/"

// Client resolves display names via the Steam Web API. One outbound
// request per call, bounded by the configured timeout, no retries.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	hc := cleanhttp.DefaultClient()
	hc.Timeout = timeout

	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    hc,
	}
}

type summariesEnvelope struct {
	Response struct {
		Players []struct {
			PersonaName string `json:"personaname"`
		} `json:"players"`
	} `json:"response"`
}

func (c *Client) DisplayName(ctx context.Context, steamID string) (string, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("steamids", steamID)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+summariesPath+"?"+q.Encode(),
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("profile: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("profile: fetch player summaries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("profile: player summaries returned status %d", resp.StatusCode)
	}

	var envelope summariesEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("profile: decode player summaries: %w", err)
	}

	if len(envelope.Response.Players) == 0 {
		return "", ErrPlayerNotFound
	}

	return envelope.Response.Players[0].PersonaName, nil
}
