package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewDOIFormat(t *testing.T) {
	doi := NewDOI()
	if !strings.HasPrefix(doi, "RNCE-") {
		t.Fatalf("expected RNCE- prefix, got %q", doi)
	}
	if _, err := uuid.Parse(strings.TrimPrefix(doi, "RNCE-")); err != nil {
		t.Fatalf("suffix is not a uuid: %v", err)
	}
}

func TestNewDOIUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		doi := NewDOI()
		if seen[doi] {
			t.Fatalf("duplicate doi %q", doi)
		}
		seen[doi] = true
	}
}
