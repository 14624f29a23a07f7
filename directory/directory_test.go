package directory

import (
	"strings"
	"testing"

	"globe-weather/models"
)

func TestLookupEmptyQuery(t *testing.T) {
	got := Default().Lookup("")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestLookupPrefixCaseInsensitive(t *testing.T) {
	d := Default()
	for _, q := range []string{"isl", "ISL", "Isl"} {
		got := d.Lookup(q)
		if len(got) != 1 {
			t.Fatalf("Lookup(%q): expected 1 match, got %d", q, len(got))
		}
		want := models.CityEntry{Name: "Islamabad", CountryCode: "PK"}
		if got[0] != want {
			t.Fatalf("Lookup(%q): got %+v want %+v", q, got[0], want)
		}
	}
}

func TestLookupMatchesExactlyThePrefixedEntries(t *testing.T) {
	d := Default()
	all := d.All()

	for _, q := range []string{"a", "b", "k", "l", "p", "s", "t", "new", "mu", "zzz", "Karachi", "karachix"} {
		got := d.Lookup(q)
		if len(got) > MaxSuggestions {
			t.Fatalf("Lookup(%q): %d results exceeds cap", q, len(got))
		}

		var want []models.CityEntry
		for _, e := range all {
			if strings.HasPrefix(strings.ToLower(e.Name), strings.ToLower(q)) {
				want = append(want, e)
			}
		}
		if len(want) > MaxSuggestions {
			want = want[:MaxSuggestions]
		}

		if len(got) != len(want) {
			t.Fatalf("Lookup(%q): got %d results want %d", q, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Lookup(%q)[%d]: got %+v want %+v", q, i, got[i], want[i])
			}
		}
	}
}

func TestLookupPreservesOrder(t *testing.T) {
	got := Default().Lookup("p")
	want := []string{"Peshawar", "Pune", "Paris"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d: got %s want %s", i, got[i].Name, name)
		}
	}
}

func TestLookupTruncates(t *testing.T) {
	entries := make([]models.CityEntry, 0, 12)
	for i := 0; i < 12; i++ {
		entries = append(entries, models.CityEntry{Name: "Springfield", CountryCode: "US"})
	}
	got := New(entries).Lookup("spr")
	if len(got) != MaxSuggestions {
		t.Fatalf("expected %d results, got %d", MaxSuggestions, len(got))
	}
}

func TestFindExact(t *testing.T) {
	d := Default()

	entry, ok := d.FindExact("new york")
	if !ok || entry.CountryCode != "US" {
		t.Fatalf("expected New York,US; got %+v ok=%v", entry, ok)
	}

	if _, ok := d.FindExact("New"); ok {
		t.Fatal("prefix must not resolve as an exact match")
	}
}

func TestNewCopiesEntries(t *testing.T) {
	entries := []models.CityEntry{{Name: "Oslo", CountryCode: "NO"}}
	d := New(entries)
	entries[0].Name = "Bergen"

	if _, ok := d.FindExact("Oslo"); !ok {
		t.Fatal("directory must not alias caller slice")
	}
}

func TestFindExactAgreesWithLookup(t *testing.T) {
	d := Default()

	// U+017F LATIN SMALL LETTER LONG S case-folds to "s" but lower-cases to itself
	longS := "\u017fialkot"
	if got := d.Lookup(longS); len(got) != 0 {
		t.Fatalf("Lookup(%q) = %v, expected no matches", longS, got)
	}
	if entry, ok := d.FindExact(longS); ok {
		t.Fatalf("FindExact(%q) = %+v, must agree with Lookup", longS, entry)
	}

	if _, ok := d.FindExact("SIALKOT"); !ok {
		t.Fatal("FindExact must still ignore ASCII case")
	}
}
