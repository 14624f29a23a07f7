package main

import (
	"strings"
	"testing"
)

func TestPrettyView(t *testing.T) {
	view, err := prettyView([]byte(`{"result": {}, "view": {"temperature": "25°C"}}`))
	if err != nil {
		t.Fatalf("prettyView failed: %v", err)
	}
	if !strings.Contains(view, `"temperature": "25°C"`) {
		t.Fatalf("unexpected view %q", view)
	}
}

func TestPrettyViewRejectsBadBodies(t *testing.T) {
	for _, body := range []string{`not json`, `{"result": {}}`, `{"view": null}`} {
		if _, err := prettyView([]byte(body)); err == nil {
			t.Fatalf("prettyView(%q) should fail", body)
		}
	}
}
