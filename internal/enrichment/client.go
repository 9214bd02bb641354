package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"salescli/internal/config"
	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts"
	"salescli/pkg/contracts/domain"
)

// Client fetches product metadata from the catalog provider. All calls are
// bounded by the configured timeout and paced by a rate limiter.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// catalogProduct is the provider's product shape. Title is part of the
// provider contract but unused by the pipeline.
type catalogProduct struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Rating   float64 `json:"rating"`
}

type catalogResponse struct {
	Products []catalogProduct `json:"products"`
	Total    int              `json:"total"`
}

// NewClient creates a catalog client from configuration.
func NewClient(cfg config.EnrichmentConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		logger:  logger.With(slog.String("component", "enrichment_client")),
	}
}

// FetchCatalog retrieves the full product catalog in one request and builds
// the id-to-metadata mapping. On any failure the error is classified as a
// collaborator failure; callers treat it as "zero products enriched".
func (c *Client) FetchCatalog(ctx context.Context) (domain.ProductCatalog, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, apperrors.NewCollaboratorError("rate limiter wait failed", err)
	}

	url := c.baseURL + "/products?limit=0"
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.NewCollaboratorError("failed to build catalog request", err)
	}
	req.Header.Set("User-Agent", contracts.UserAgent())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.NewCollaboratorError("catalog provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewCollaboratorError(
			fmt.Sprintf("catalog provider returned status %d", resp.StatusCode), nil)
	}

	var payload catalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewCollaboratorError("malformed catalog response", err)
	}

	catalog := make(domain.ProductCatalog, len(payload.Products))
	for _, p := range payload.Products {
		if p.ID <= 0 {
			continue
		}
		catalog[p.ID] = domain.ProductMeta{
			Category: p.Category,
			Brand:    p.Brand,
			Rating:   p.Rating,
		}
	}

	c.logger.Info("Fetched product catalog",
		slog.Int("products", len(catalog)),
		slog.Duration("elapsed", time.Since(start)))

	return catalog, nil
}

// FetchProduct retrieves a single product by numeric id. A 404 is a normal
// miss, not an error.
func (c *Client) FetchProduct(ctx context.Context, id int) (domain.ProductMeta, bool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.ProductMeta{}, false, apperrors.NewCollaboratorError("rate limiter wait failed", err)
	}

	url := fmt.Sprintf("%s/products/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.ProductMeta{}, false, apperrors.NewCollaboratorError("failed to build product request", err)
	}
	req.Header.Set("User-Agent", contracts.UserAgent())

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.ProductMeta{}, false, apperrors.NewCollaboratorError("catalog provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ProductMeta{}, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return domain.ProductMeta{}, false, apperrors.NewCollaboratorError(
			fmt.Sprintf("catalog provider returned status %d", resp.StatusCode), nil)
	}

	var p catalogProduct
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return domain.ProductMeta{}, false, apperrors.NewCollaboratorError("malformed product response", err)
	}

	return domain.ProductMeta{Category: p.Category, Brand: p.Brand, Rating: p.Rating}, true, nil
}

// BuildCatalog fetches the given product ids individually and assembles a
// catalog from the hits. Failures on individual ids are logged and skipped;
// enrichment is best-effort.
func (c *Client) BuildCatalog(ctx context.Context, ids []int) domain.ProductCatalog {
	catalog := make(domain.ProductCatalog, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		meta, ok, err := c.FetchProduct(ctx, id)
		if err != nil {
			c.logger.Warn("Product fetch failed",
				slog.Int("product_id", id),
				slog.Any("error", err))
			continue
		}
		if ok {
			catalog[id] = meta
		}
	}
	return catalog
}
