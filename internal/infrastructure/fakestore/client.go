// internal/infrastructure/fakestore/client.go
package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/catalog"
)

// Client fetches products from a fakestoreapi-compatible catalog source
type Client struct {
	httpClient  *http.Client
	productsURL string
	logger      *logrus.Logger
}

// NewClient creates a catalog source client
func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Catalog.FetchTimeout,
		},
		productsURL: cfg.GetCatalogProductsURL(),
		logger:      logger,
	}
}

// FetchProducts performs the single read operation the source exposes:
// GET the products resource. Success means the body parses as the
// product schema; a non-2xx status or a parse error is a failure.
func (c *Client) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.productsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog source returned status %d", resp.StatusCode)
	}

	var products []catalog.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	c.logger.WithField("products", len(products)).Debug("Fetched products from catalog source")

	return products, nil
}
