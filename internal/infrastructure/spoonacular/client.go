package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/recipeview/backend/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client handles communication with the Spoonacular recipe-extraction API
// (via RapidAPI).
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	logger      *zap.Logger
}

// NewClient creates a new extraction API client. Each extraction is a
// one-shot request: no retry, no backoff, just the transport timeout.
func NewClient(apiKey, baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	// RapidAPI free tiers allow on the order of one request per second
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
		logger:      logger,
	}
}

// ExtractRecipe asks the extraction service to parse the recipe page behind
// recipeURL into a structured Recipe. A non-success status or transport
// failure yields ErrFetchFailure; the caller displays an error and performs
// no further processing for the request.
func (c *Client) ExtractRecipe(ctx context.Context, recipeURL string) (*domain.Recipe, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	endpoint := fmt.Sprintf("%s/recipes/extract", c.baseURL)
	params := url.Values{}
	params.Add("url", recipeURL)
	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", rapidAPIHost(c.baseURL))

	c.logger.Debug("extracting recipe", zap.String("url", recipeURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("extraction service returned error status",
			zap.Int("status", resp.StatusCode),
			zap.String("url", recipeURL),
		)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrFetchFailure, resp.StatusCode, string(body))
	}

	var recipe domain.Recipe
	if err := json.NewDecoder(resp.Body).Decode(&recipe); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrFetchFailure, err)
	}

	c.logger.Debug("recipe extracted",
		zap.String("title", recipe.Title),
		zap.Int("ingredients", len(recipe.ExtendedIngredients)),
	)
	return &recipe, nil
}

// rapidAPIHost derives the x-rapidapi-host header value from the base URL.
func rapidAPIHost(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return baseURL
	}
	return u.Host
}
