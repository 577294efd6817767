// Package catalog fetches the awardable prize list from the MegaMU API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/config"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/domain"
)

const fetchTimeout = 10 * time.Second

// Upstream result codes on the dvapi endpoint.
const (
	resultAuthError     = -101
	resultBadParams     = -100
	resultInvalidAction = 0
)

// Client calls the dvapi.php endpoint with the operator's credentials.
type Client struct {
	baseURL    string
	settings   func() config.Settings
	httpClient *http.Client
}

func NewClient(baseURL string, settings func() config.Settings) *Client {
	return &Client{
		baseURL:    baseURL,
		settings:   settings,
		httpClient: &http.Client{Timeout: fetchTimeout},
	}
}

type apiAward struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
}

type apiResponse struct {
	Result *int       `json:"result"`
	Awards []apiAward `json:"awards"`
}

// FetchPrizes returns the current awards. An empty list is a valid success;
// upstream auth/parameter/action failures map to the catalog sentinels.
func (c *Client) FetchPrizes(ctx context.Context) ([]domain.Prize, error) {
	settings := c.settings()

	query := url.Values{}
	query.Set("dv", settings.DV)
	query.Set("key", settings.APIKey)
	query.Set("action", "getawards")
	endpoint := fmt.Sprintf("%s/dvapi.php?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	if parsed.Result != nil {
		switch *parsed.Result {
		case resultAuthError:
			return nil, domain.ErrCatalogAuth
		case resultBadParams:
			return nil, domain.ErrCatalogBadParams
		case resultInvalidAction:
			return nil, domain.ErrCatalogInvalidAction
		}
	}

	prizes := make([]domain.Prize, 0, len(parsed.Awards))
	for _, award := range parsed.Awards {
		prizes = append(prizes, domain.Prize{
			ID:   award.ID.String(),
			Name: award.Name,
		})
	}
	return prizes, nil
}
