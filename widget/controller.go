package widget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"globe-weather/datasource"
	"globe-weather/directory"
	"globe-weather/models"
)

var (
	// ErrNoCitySelected means the input matched no city and no suggestion was chosen
	ErrNoCitySelected = errors.New("please select a city from suggestions")

	// ErrWeatherFetchFailed wraps any provider failure, including malformed responses
	ErrWeatherFetchFailed = errors.New("weather data not found")
)

// SearchState is a snapshot of the widget state
type SearchState struct {
	InputText   string                `json:"inputText"`
	Suggestions []models.CityEntry    `json:"suggestions"`
	LastResult  *models.WeatherResult `json:"lastResult,omitempty"`
}

// Controller owns the search state and drives lookups and weather fetches.
//
// Overlapping fetches are not sequenced: whichever response arrives last
// becomes LastResult.
type Controller struct {
	directory   *directory.Directory
	provider    datasource.WeatherProvider
	defaultCity models.CityEntry
	logger      *slog.Logger

	mu          sync.RWMutex
	inputText   string
	suggestions []models.CityEntry
	lastResult  *models.WeatherResult
}

// NewController creates a controller over the given directory and provider
func NewController(dir *directory.Directory, provider datasource.WeatherProvider, defaultCity models.CityEntry, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		directory:   dir,
		provider:    provider,
		defaultCity: defaultCity,
		logger:      logger,
		suggestions: []models.CityEntry{},
	}
}

// State returns a copy of the current state
func (c *Controller) State() SearchState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	state := SearchState{
		InputText:   c.inputText,
		Suggestions: append([]models.CityEntry{}, c.suggestions...),
	}
	if c.lastResult != nil {
		result := *c.lastResult
		state.LastResult = &result
	}
	return state
}

// LastResult returns the most recent successful result, if any
func (c *Controller) LastResult() (models.WeatherResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.lastResult == nil {
		return models.WeatherResult{}, false
	}
	return *c.lastResult, true
}

// OnInputChange records the input text and recomputes suggestions
func (c *Controller) OnInputChange(text string) []models.CityEntry {
	suggestions := c.directory.Lookup(text)

	c.mu.Lock()
	c.inputText = text
	c.suggestions = suggestions
	c.mu.Unlock()

	return append([]models.CityEntry{}, suggestions...)
}

// ResolveSelection returns explicit when given, otherwise the city whose name
// matches the current input exactly (ignoring case).
func (c *Controller) ResolveSelection(explicit *models.CityEntry) (models.CityEntry, error) {
	if explicit != nil {
		return *explicit, nil
	}

	c.mu.RLock()
	input := c.inputText
	c.mu.RUnlock()

	entry, ok := c.directory.FindExact(input)
	if !ok {
		return models.CityEntry{}, ErrNoCitySelected
	}
	return entry, nil
}

// FetchWeather issues one request for city. On success the result is stored
// and the input and suggestions are cleared; on failure nothing changes.
func (c *Controller) FetchWeather(ctx context.Context, city models.CityEntry) (models.WeatherResult, error) {
	result, err := c.provider.GetWeather(ctx, city)
	if err != nil {
		c.logger.Error("weather fetch failed",
			"city", city.Query(),
			"provider", c.provider.Name(),
			"error", err)
		return models.WeatherResult{}, fmt.Errorf("%w: %s: %w", ErrWeatherFetchFailed, city.Query(), err)
	}

	c.mu.Lock()
	c.lastResult = &result
	c.inputText = ""
	c.suggestions = []models.CityEntry{}
	c.mu.Unlock()

	c.logger.Info("weather updated",
		"city", city.Query(),
		"provider", c.provider.Name(),
		"temp", result.Main.Temp)
	return result, nil
}

// Submit resolves the current input and fetches its weather, as the enter key
// or search button would.
func (c *Controller) Submit(ctx context.Context) (models.WeatherResult, error) {
	city, err := c.ResolveSelection(nil)
	if err != nil {
		c.logger.Debug("submit without a resolvable city", "input", c.State().InputText)
		return models.WeatherResult{}, err
	}
	return c.FetchWeather(ctx, city)
}

// SelectSuggestion handles a click on a suggestion row
func (c *Controller) SelectSuggestion(ctx context.Context, city models.CityEntry) (models.WeatherResult, error) {
	c.mu.Lock()
	c.inputText = city.Name
	c.mu.Unlock()

	selected, err := c.ResolveSelection(&city)
	if err != nil {
		return models.WeatherResult{}, err
	}
	return c.FetchWeather(ctx, selected)
}

// Activate loads the default city without user interaction
func (c *Controller) Activate(ctx context.Context) (models.WeatherResult, error) {
	c.logger.Info("activating widget", "default_city", c.defaultCity.Query())
	return c.FetchWeather(ctx, c.defaultCity)
}
