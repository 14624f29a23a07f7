package widget

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"globe-weather/models"
)

func TestRoundedTemp(t *testing.T) {
	cases := map[float64]int{25.4: 25, 25.5: 26, -0.4: 0, -2.5: -2, -2.6: -3, 0: 0}
	for in, want := range cases {
		if got := RoundedTemp(in); got != want {
			t.Errorf("RoundedTemp(%v) = %d want %d", in, got, want)
		}
	}
}

func TestNewWeatherView(t *testing.T) {
	var result models.WeatherResult
	result.Name = "Dubai"
	result.Sys.Country = "AE"
	result.Main.Temp = 38.7
	result.Main.FeelsLike = 41.2
	result.Main.Humidity = 22
	result.Main.Pressure = 1004
	result.Wind.Speed = 5.14
	result.Weather = []models.Condition{{Main: "Haze", Description: "haze over the sea"}}

	view := NewWeatherView(result)
	want := WeatherView{
		Temperature: "39°C",
		Locality:    "Dubai, AE",
		Description: "Haze Over The Sea",
		Condition:   "Haze",
		Humidity:    "22%",
		Pressure:    "1004 hPa",
		Wind:        "5.14 m/s",
		FeelsLike:   "41°C",
	}
	if view != want {
		t.Fatalf("got %+v\nwant %+v", view, want)
	}

	text := view.String()
	for _, part := range []string{"39°C", "Dubai, AE", "Humidity: 22%", "Feels Like: 41°C"} {
		if !strings.Contains(text, part) {
			t.Errorf("rendered text missing %q:\n%s", part, text)
		}
	}
}

func TestNewWeatherViewWithoutConditions(t *testing.T) {
	view := NewWeatherView(models.WeatherResult{})
	if view.Description != "" || view.Condition != "" {
		t.Fatalf("expected empty condition, got %+v", view)
	}
}

func TestUserMessage(t *testing.T) {
	if UserMessage(nil) != "" {
		t.Fatal("nil error has no message")
	}
	wrapped := fmt.Errorf("%w: Quetta,PK: %w", ErrWeatherFetchFailed, errors.New("timeout"))
	if UserMessage(wrapped) != WeatherFetchFailedMessage {
		t.Fatalf("got %q", UserMessage(wrapped))
	}
	if UserMessage(ErrNoCitySelected) != NoCitySelectedMessage {
		t.Fatalf("got %q", UserMessage(ErrNoCitySelected))
	}
}
