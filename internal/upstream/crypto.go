package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mcp-demo/toolserver/internal/config"
)

// CryptoClient fetches spot prices from a crypto price source.
type CryptoClient interface {
	SimplePrice(ctx context.Context, coinID, vs string) (float64, error)
}

// cryptoClientImpl talks to the coingecko simple price API
type cryptoClientImpl struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

var _ CryptoClient = &cryptoClientImpl{}

// NewCryptoClient creates a CryptoClient against the given base URL.
func NewCryptoClient(baseURL string, logger *slog.Logger) CryptoClient {
	return &cryptoClientImpl{
		baseURL: baseURL,
		client:  &http.Client{Timeout: config.UpstreamTimeout},
		logger:  logger,
	}
}

func (c *cryptoClientImpl) SimplePrice(ctx context.Context, coinID, vs string) (float64, error) {
	url := fmt.Sprintf("%s/api/v3/simple/price?ids=%s&vs_currencies=%s", c.baseURL, coinID, vs)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("building price request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("calling price source: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return 0, fmt.Errorf("price source returned status %d", res.StatusCode)
	}

	// payload shape: {"bitcoin": {"usd": 50000.0}}
	var payload map[string]map[string]float64
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decoding price payload: %w", err)
	}

	price, ok := payload[coinID][vs]
	if !ok {
		return 0, fmt.Errorf("price payload is missing %s/%s", coinID, vs)
	}

	c.logger.Debug("fetched live price", "coin", coinID, "vs", vs)
	return price, nil
}
