package models

import "fmt"

// CityEntry identifies a searchable location by name and ISO country code
type CityEntry struct {
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
}

// Query returns the provider query string, e.g. "Islamabad,PK"
func (c CityEntry) Query() string {
	return fmt.Sprintf("%s,%s", c.Name, c.CountryCode)
}

// String returns the label shown in a suggestion row
func (c CityEntry) String() string {
	return fmt.Sprintf("%s, %s", c.Name, c.CountryCode)
}

// WeatherResult mirrors the OpenWeatherMap current weather response.
// It is consumed as-is and never normalized.
type WeatherResult struct {
	Main struct {
		Temp      float64 `json:"temp"`       // in Celsius
		FeelsLike float64 `json:"feels_like"` // in Celsius
		Humidity  int     `json:"humidity"`   // percentage
		Pressure  int     `json:"pressure"`   // in hPa
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"` // in m/s
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Weather []Condition `json:"weather"`
	Name    string      `json:"name"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
	Dt int64 `json:"dt"`
}

// Condition is one entry of the provider's weather array
type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// PrimaryCondition returns the first reported condition, if any
func (w WeatherResult) PrimaryCondition() (Condition, bool) {
	if len(w.Weather) == 0 {
		return Condition{}, false
	}
	return w.Weather[0], true
}
