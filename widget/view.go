package widget

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"globe-weather/models"
)

// User-facing notices for the two failure kinds
const (
	NoCitySelectedMessage     = "Please select a city from suggestions."
	WeatherFetchFailedMessage = "Weather data not found."
)

// WeatherView holds the display values for a weather result
type WeatherView struct {
	Temperature string `json:"temperature"`
	Locality    string `json:"locality"`
	Description string `json:"description"`
	Condition   string `json:"condition"`
	Humidity    string `json:"humidity"`
	Pressure    string `json:"pressure"`
	Wind        string `json:"wind"`
	FeelsLike   string `json:"feelsLike"`
}

// RoundedTemp rounds to the nearest degree, halves rounding up (-2.5 becomes -2)
func RoundedTemp(celsius float64) int {
	return int(math.Floor(celsius + 0.5))
}

// NewWeatherView formats a result for display
func NewWeatherView(result models.WeatherResult) WeatherView {
	view := WeatherView{
		Temperature: fmt.Sprintf("%d°C", RoundedTemp(result.Main.Temp)),
		Locality:    fmt.Sprintf("%s, %s", result.Name, result.Sys.Country),
		Humidity:    fmt.Sprintf("%d%%", result.Main.Humidity),
		Pressure:    fmt.Sprintf("%d hPa", result.Main.Pressure),
		Wind:        fmt.Sprintf("%g m/s", result.Wind.Speed),
		FeelsLike:   fmt.Sprintf("%d°C", RoundedTemp(result.Main.FeelsLike)),
	}
	if cond, ok := result.PrimaryCondition(); ok {
		view.Condition = cond.Main
		view.Description = capitalize(cond.Description)
	}
	return view
}

// String renders the view as a block of text
func (v WeatherView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", v.Temperature)
	fmt.Fprintf(&b, "%s\n", v.Locality)
	if v.Description != "" {
		fmt.Fprintf(&b, "%s\n", v.Description)
	}
	fmt.Fprintf(&b, "Humidity: %s | Pressure: %s | Wind: %s | Feels Like: %s",
		v.Humidity, v.Pressure, v.Wind, v.FeelsLike)
	return b.String()
}

// UserMessage maps an operation error to the notice shown to the user
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoCitySelected):
		return NoCitySelectedMessage
	default:
		return WeatherFetchFailedMessage
	}
}

// capitalize upper-cases the first letter of each word
func capitalize(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
