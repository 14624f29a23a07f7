package datasource

import (
	"context"
	"fmt"

	"globe-weather/models"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a WeatherProvider with token bucket rate limiting
type RateLimitedProvider struct {
	provider WeatherProvider
	limiter  *rate.Limiter
	name     string
}

// NewRateLimitedProvider creates a new rate limited weather provider.
// rps is the maximum requests per second allowed (can be fractional);
// burst is the maximum burst size allowed.
func NewRateLimitedProvider(provider WeatherProvider, rps float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// GetWeather waits for the limiter, then forwards to the underlying provider
func (r *RateLimitedProvider) GetWeather(ctx context.Context, city models.CityEntry) (models.WeatherResult, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.WeatherResult{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GetWeather(ctx, city)
}

// Name returns the provider name
func (r *RateLimitedProvider) Name() string {
	return r.name
}

var _ WeatherProvider = (*RateLimitedProvider)(nil)
