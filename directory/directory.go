package directory

import (
	"strings"

	"globe-weather/models"
)

// MaxSuggestions caps the number of entries returned by Lookup
const MaxSuggestions = 8

// cities is the searchable city list, in display order
var cities = []models.CityEntry{
	// Pakistan
	{Name: "Karachi", CountryCode: "PK"},
	{Name: "Lahore", CountryCode: "PK"},
	{Name: "Islamabad", CountryCode: "PK"},
	{Name: "Rawalpindi", CountryCode: "PK"},
	{Name: "Faisalabad", CountryCode: "PK"},
	{Name: "Multan", CountryCode: "PK"},
	{Name: "Peshawar", CountryCode: "PK"},
	{Name: "Quetta", CountryCode: "PK"},
	{Name: "Sialkot", CountryCode: "PK"},
	{Name: "Gujranwala", CountryCode: "PK"},

	// India
	{Name: "Delhi", CountryCode: "IN"},
	{Name: "Mumbai", CountryCode: "IN"},
	{Name: "Bengaluru", CountryCode: "IN"},
	{Name: "Chennai", CountryCode: "IN"},
	{Name: "Kolkata", CountryCode: "IN"},
	{Name: "Pune", CountryCode: "IN"},

	// International
	{Name: "London", CountryCode: "GB"},
	{Name: "New York", CountryCode: "US"},
	{Name: "Paris", CountryCode: "FR"},
	{Name: "Tokyo", CountryCode: "JP"},
	{Name: "Sydney", CountryCode: "AU"},
	{Name: "Dubai", CountryCode: "AE"},
	{Name: "Toronto", CountryCode: "CA"},
	{Name: "Berlin", CountryCode: "DE"},
}

// Directory is an immutable, ordered list of cities
type Directory struct {
	entries []models.CityEntry
}

// Default returns the built-in city directory
func Default() *Directory {
	return New(cities)
}

// New creates a directory over a copy of entries. Duplicates are kept.
func New(entries []models.CityEntry) *Directory {
	cp := make([]models.CityEntry, len(entries))
	copy(cp, entries)
	return &Directory{entries: cp}
}

// All returns a copy of every entry in directory order
func (d *Directory) All() []models.CityEntry {
	out := make([]models.CityEntry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Lookup returns, in directory order, the entries whose name starts with query
// (case-insensitive), truncated to MaxSuggestions. An empty query matches nothing.
func (d *Directory) Lookup(query string) []models.CityEntry {
	if query == "" {
		return []models.CityEntry{}
	}

	prefix := strings.ToLower(query)
	matches := make([]models.CityEntry, 0, MaxSuggestions)
	for _, entry := range d.entries {
		if !strings.HasPrefix(strings.ToLower(entry.Name), prefix) {
			continue
		}
		matches = append(matches, entry)
		if len(matches) == MaxSuggestions {
			break
		}
	}
	return matches
}

// FindExact returns the first entry whose name equals name, ignoring case.
// Case is compared the same way Lookup compares it.
func (d *Directory) FindExact(name string) (models.CityEntry, bool) {
	target := strings.ToLower(name)
	for _, entry := range d.entries {
		if strings.ToLower(entry.Name) == target {
			return entry, true
		}
	}
	return models.CityEntry{}, false
}
