package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"recipe-catalog/domain"
)

const DefaultEndpoint = "https://apiprovider.cphbusinessapps.dk/api/v1/ingredients/nutrition"

type (
	// Provider looks up nutrition facts for a batch of ingredient slugs.
	Provider interface {
		FetchNutrition(ctx context.Context, slugs []string) ([]domain.Nutrition, error)
	}

	httpProvider struct {
		endpoint   string
		httpClient *http.Client
	}
)

func NewHTTPProvider(endpoint string, timeout time.Duration) Provider {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpProvider{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *httpProvider) FetchNutrition(ctx context.Context, slugs []string) ([]domain.Nutrition, error) {
	if len(slugs) == 0 {
		return []domain.Nutrition{}, nil
	}

	encoded := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		encoded = append(encoded, url.QueryEscape(slug))
	}

	sep := "?"
	if strings.Contains(p.endpoint, "?") {
		sep = "&"
	}
	target := p.endpoint + sep + "slugs=" + strings.Join(encoded, ",")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build nutrition request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call nutrition provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("nutrition provider returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(bodyBytes)))
	}

	var envelope domain.NutritionListResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode nutrition response: %w", err)
	}
	if envelope.Data == nil {
		return []domain.Nutrition{}, nil
	}
	return envelope.Data, nil
}
