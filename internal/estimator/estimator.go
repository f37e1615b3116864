// Package estimator turns free-text ingredient lists into a best-effort
// nutrition estimate. A configured remote endpoint is tried at most once per
// request; on any failure the deterministic local table answers instead, so
// Estimate never returns an error.
package estimator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Nutrition is an estimated nutrient breakdown. All amounts are non-negative.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// Estimator estimates nutrition for ingredient text, remotely when an
// endpoint is configured and locally otherwise.
type Estimator struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	client  *http.Client
}

// New creates an estimator. An empty baseURL disables the remote call.
func New(baseURL, apiKey string, timeout time.Duration) *Estimator {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Estimator{
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: timeout,
		client:  &http.Client{},
	}
}

// Estimate returns a nutrition estimate for the given ingredient text. The
// remote endpoint is issued one bounded request; network errors, non-success
// statuses, timeouts, and malformed payloads all fall back to the local
// table rather than propagating.
func (e *Estimator) Estimate(ctx context.Context, ingredients string) Nutrition {
	if e.baseURL != "" {
		if n, err := e.estimateRemote(ctx, ingredients); err == nil {
			return n
		}
	}
	return EstimateLocally(ingredients)
}

// estimateRemote posts the ingredient text to the configured endpoint and
// decodes the nutrient response.
func (e *Estimator) estimateRemote(ctx context.Context, ingredients string) (Nutrition, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	reqBody, err := json.Marshal(map[string]string{"ingredients": ingredients})
	if err != nil {
		return Nutrition{}, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, e.baseURL, bytes.NewReader(reqBody),
	)
	if err != nil {
		return Nutrition{}, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if e.apiKey != "" {
		req.Header.Set("x-api-key", e.apiKey)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return Nutrition{}, fmt.Errorf("calling estimator: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Nutrition{}, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Nutrition{}, fmt.Errorf("estimator error (%d): %s", resp.StatusCode, string(respBody))
	}

	var n Nutrition
	if err := json.Unmarshal(respBody, &n); err != nil {
		return Nutrition{}, fmt.Errorf("decoding response: %w", err)
	}

	return clampNonNegative(n), nil
}

// clampNonNegative forces every nutrient amount to be >= 0.
func clampNonNegative(n Nutrition) Nutrition {
	for _, f := range []*float64{&n.Calories, &n.Protein, &n.Carbs, &n.Fat, &n.Fiber} {
		if *f < 0 {
			*f = 0
		}
	}
	return n
}
