package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"globe-weather/models"
)

// DefaultOpenWeatherMapURL is the base URL of the OpenWeatherMap 2.5 API
const DefaultOpenWeatherMapURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherMapProvider implements WeatherProvider against the current weather endpoint
type OpenWeatherMapProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider.
// An empty baseURL selects DefaultOpenWeatherMapURL.
func NewOpenWeatherMapProvider(apiKey, baseURL string) *OpenWeatherMapProvider {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherMapURL
	}
	return &OpenWeatherMapProvider{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithHTTPClient replaces the HTTP client used for requests
func (p *OpenWeatherMapProvider) WithHTTPClient(client *http.Client) *OpenWeatherMapProvider {
	p.httpClient = client
	return p
}

// Name returns the provider name
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

// GetWeather fetches current weather for a city
func (p *OpenWeatherMapProvider) GetWeather(ctx context.Context, city models.CityEntry) (models.WeatherResult, error) {
	// Build URL
	endpoint := fmt.Sprintf("%s/weather", p.baseURL)
	params := url.Values{}
	params.Add("q", city.Query())
	params.Add("appid", p.apiKey)
	params.Add("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return models.WeatherResult{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return models.WeatherResult{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.WeatherResult{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.WeatherResult{}, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result models.WeatherResult
	if err := json.Unmarshal(body, &result); err != nil {
		return models.WeatherResult{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if err := validateShape(body, result); err != nil {
		return models.WeatherResult{}, fmt.Errorf("unexpected response shape: %w", err)
	}

	return result, nil
}

// validateShape rejects responses missing the fields the widget renders
func validateShape(body []byte, result models.WeatherResult) error {
	var present struct {
		Main json.RawMessage `json:"main"`
		Wind json.RawMessage `json:"wind"`
		Sys  json.RawMessage `json:"sys"`
	}
	if err := json.Unmarshal(body, &present); err != nil {
		return err
	}

	switch {
	case isAbsent(present.Main):
		return errors.New("missing main")
	case isAbsent(present.Wind):
		return errors.New("missing wind")
	case isAbsent(present.Sys):
		return errors.New("missing sys")
	case len(result.Weather) == 0:
		return errors.New("empty weather")
	case result.Name == "":
		return errors.New("empty name")
	}
	return nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

var _ WeatherProvider = (*OpenWeatherMapProvider)(nil)
