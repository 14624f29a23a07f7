package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the widget API")
	query := flag.String("q", "isl", "Text to type into the search box")
	flag.Parse()

	fmt.Println("Weather Widget API Client Example")
	fmt.Println("=================================")

	// Type into the search box
	fmt.Printf("\nTyping %q...\n", *query)
	suggestionsResp, err := http.Get(fmt.Sprintf("%s/api/suggestions?q=%s", *baseURL, url.QueryEscape(*query)))
	if err != nil {
		fmt.Printf("Error fetching suggestions: %v\n", err)
		os.Exit(1)
	}
	defer suggestionsResp.Body.Close()

	var suggestionsData struct {
		Suggestions []struct {
			Name        string `json:"name"`
			CountryCode string `json:"countryCode"`
		} `json:"suggestions"`
	}
	if err := json.NewDecoder(suggestionsResp.Body).Decode(&suggestionsData); err != nil {
		fmt.Printf("Error decoding suggestions: %v\n", err)
		os.Exit(1)
	}

	if len(suggestionsData.Suggestions) == 0 {
		fmt.Println("No suggestions. Try another prefix.")
		return
	}
	for i, s := range suggestionsData.Suggestions {
		fmt.Printf("  %d. %s, %s\n", i+1, s.Name, s.CountryCode)
	}

	// Click the first suggestion
	selected := suggestionsData.Suggestions[0]
	fmt.Printf("\nSelecting %s, %s...\n", selected.Name, selected.CountryCode)

	body, err := json.Marshal(selected)
	if err != nil {
		fmt.Printf("Error encoding selection: %v\n", err)
		os.Exit(1)
	}
	weatherResp, err := http.Post(*baseURL+"/api/select", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error fetching weather: %v\n", err)
		os.Exit(1)
	}
	defer weatherResp.Body.Close()

	weatherBody, err := io.ReadAll(weatherResp.Body)
	if err != nil {
		fmt.Printf("Error reading weather response: %v\n", err)
		os.Exit(1)
	}
	if weatherResp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (status %d): %s\n", weatherResp.StatusCode, string(weatherBody))
		os.Exit(1)
	}

	// Pretty print the result
	view, err := prettyView(weatherBody)
	if err != nil {
		fmt.Printf("Error decoding weather response: %v\n%s\n", err, string(weatherBody))
		os.Exit(1)
	}
	fmt.Printf("\nWeather for %s:\n%s\n", selected.Name, view)
}

// prettyView extracts and indents the "view" object of a weather response
func prettyView(body []byte) (string, error) {
	var weatherData map[string]json.RawMessage
	if err := json.Unmarshal(body, &weatherData); err != nil {
		return "", err
	}
	raw, ok := weatherData["view"]
	if !ok || string(raw) == "null" {
		return "", fmt.Errorf("response has no view")
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "  "); err != nil {
		return "", err
	}
	return indented.String(), nil
}
