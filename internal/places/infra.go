package places

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	json "github.com/goccy/go-json"
)

const googleBaseURL = "https://maps.googleapis.com"

type GoogleClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGoogleClient(apiKey string) *GoogleClient {
	return &GoogleClient{
		apiKey:  apiKey,
		baseURL: googleBaseURL,
		client:  &http.Client{},
	}
}

// TextSearch — текстовый поиск с привязкой к Дели, как в оригинальном боте.
func (c *GoogleClient) TextSearch(ctx context.Context, query string) ([]Recommendation, error) {
	u := fmt.Sprintf(
		"%s/maps/api/place/textsearch/json?query=%s&key=%s",
		c.baseURL,
		url.QueryEscape(query+" in Delhi"),
		c.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("places error: %s", body)
	}

	var parsed struct {
		Status  string `json:"status"`
		Results []struct {
			Name             string  `json:"name"`
			FormattedAddress string  `json:"formatted_address"`
			Rating           float64 `json:"rating"`
		} `json:"results"`
	}

	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode places: %w", err)
	}

	if parsed.Status != "OK" && parsed.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places status: %s", parsed.Status)
	}

	out := make([]Recommendation, 0, len(parsed.Results))
	for _, p := range parsed.Results {
		out = append(out, Recommendation{
			Name:    p.Name,
			Address: p.FormattedAddress,
			Rating:  p.Rating,
		})
	}
	return out, nil
}
