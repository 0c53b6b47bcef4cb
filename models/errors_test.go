package models

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	nf := fmt.Errorf("resolve: %w", &NotFoundError{Kind: "city", Name: "Atlantis"})
	if !IsNotFound(nf) {
		t.Error("Expected wrapped NotFoundError to be classified as not found")
	}
	if IsNetwork(nf) {
		t.Error("NotFoundError classified as network error")
	}

	cause := errors.New("connection refused")
	ne := fmt.Errorf("fetch: %w", &NetworkError{Op: "GET /weather", Err: cause})
	if !IsNetwork(ne) {
		t.Error("Expected wrapped NetworkError to be classified as network")
	}
	if !errors.Is(ne, cause) {
		t.Error("NetworkError does not unwrap to its cause")
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Kind: "city", Name: "Atlantis", Reason: "city not found"}
	want := `city "Atlantis" not found: city not found`
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"current", "domestic", "foreign"} {
		if _, err := ParseMode(s); err != nil {
			t.Errorf("ParseMode(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseMode("mars"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}
