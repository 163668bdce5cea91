package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/jsonapi"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/link/inventory-platform/internal/inventory/domain"
	"github.com/link/inventory-platform/pkg/document"
	"github.com/link/inventory-platform/pkg/logger"
	"github.com/link/inventory-platform/pkg/middleware"
	"github.com/link/inventory-platform/pkg/resilience"
)

// ProductServicePolicy is the name of the circuit breaker guarding the product service.
const ProductServicePolicy = "productService"

const maxErrorBody = 4 << 10

type productResource struct {
	ID          string `jsonapi:"primary,products"`
	ProductName string `jsonapi:"attr,productName"`
}

// ProductClient implements domain.ProductCatalog over the product service REST API.
type ProductClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	policy     *resilience.Policy
	cache      ProductCache
}

// NewProductClient creates a client. cache may be nil, which disables the fallback.
func NewProductClient(cfg Config, policy *resilience.Policy, cache ProductCache) *ProductClient {
	return &ProductClient{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cfg.BlockTimeout,
		},
		policy: policy,
		cache:  cache,
	}
}

// GetProduct resolves a product. Successful lookups refresh the cache; when the
// product service is unreachable or failing, a cached product is served instead.
// Not found answers are never replaced by cached data.
func (c *ProductClient) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	logger.Info(ctx).
		Uint("productId", id).
		Str("policy", c.policy.Name()).
		Msg("Calling product-service")

	product, err := resilience.Execute(ctx, c.policy, func(ctx context.Context) (*domain.Product, error) {
		return c.fetch(ctx, id)
	})
	if err == nil {
		c.remember(ctx, product)
		return product, nil
	}

	if !fallbackEligible(err) {
		return nil, err
	}
	return c.fallback(ctx, id, err)
}

func (c *ProductClient) fetch(ctx context.Context, id uint) (*domain.Product, error) {
	url := fmt.Sprintf("%s/product/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, resilience.Permanent(fmt.Errorf("failed to build product request: %w", err))
	}
	req.Header.Set(middleware.HeaderAPIKey, c.apiKey)
	req.Header.Set("Accept", document.MediaType)
	req.Header.Set("Content-Type", document.MediaType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProductServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return nil, resilience.Permanent(&domain.ProductNotFoundError{ID: id})

	case resp.StatusCode >= 500:
		return nil, &domain.ProductServiceError{StatusCode: resp.StatusCode, Message: errorMessage(resp)}

	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, resilience.Permanent(&domain.ProductServiceError{StatusCode: resp.StatusCode, Message: errorMessage(resp)})
	}

	var res productResource
	if err := jsonapi.UnmarshalPayload(resp.Body, &res); err != nil {
		return nil, resilience.Permanent(&domain.ProductServiceError{
			StatusCode: http.StatusBadGateway,
			Message:    "invalid product document: " + err.Error(),
		})
	}
	if res.ID == "" {
		return nil, resilience.Permanent(&domain.ProductServiceError{
			StatusCode: http.StatusBadGateway,
			Message:    "product document without id",
		})
	}

	productID, err := strconv.ParseUint(res.ID, 10, 64)
	if err != nil {
		return nil, resilience.Permanent(&domain.ProductServiceError{
			StatusCode: http.StatusBadGateway,
			Message:    fmt.Sprintf("invalid product id %q", res.ID),
		})
	}

	return &domain.Product{ID: uint(productID), Name: res.ProductName}, nil
}

func (c *ProductClient) remember(ctx context.Context, product *domain.Product) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, product); err != nil {
		logger.Warn(ctx).Err(err).Uint("productId", product.ID).Msg("Failed to cache product")
	}
}

func (c *ProductClient) fallback(ctx context.Context, id uint, cause error) (*domain.Product, error) {
	msg := "product service fallback"
	if errors.Is(cause, resilience.ErrCircuitOpen) {
		msg = "CIRCUIT BREAKER OPEN"
	}

	var cached *domain.Product
	if c.cache != nil {
		product, err := c.cache.Get(ctx, id)
		switch {
		case err == nil:
			cached = product
		case !errors.Is(err, ErrCacheMiss):
			logger.Warn(ctx).Err(err).Uint("productId", id).Msg("Failed to read product cache")
		}
	}

	logger.Warn(ctx).
		Err(cause).
		Uint("productId", id).
		Bool("cached", cached != nil).
		Msg(msg)

	if cached == nil {
		return nil, cause
	}
	return cached, nil
}

// fallbackEligible reports failures of the product service itself, as opposed
// to definitive answers about the product.
func fallbackEligible(err error) bool {
	var serviceErr *domain.ProductServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr.StatusCode >= 500
	}

	return errors.Is(err, resilience.ErrCircuitOpen) ||
		errors.Is(err, resilience.ErrRateLimited) ||
		errors.Is(err, resilience.ErrTimeout) ||
		errors.Is(err, domain.ErrProductServiceUnavailable)
}

func errorMessage(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var doc document.ErrorDocument
	if err := json.Unmarshal(body, &doc); err == nil && len(doc.Errors) > 0 {
		if doc.Errors[0].Detail != "" {
			return doc.Errors[0].Detail
		}
		return doc.Errors[0].Title
	}
	return http.StatusText(resp.StatusCode)
}
