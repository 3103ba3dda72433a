package invoice

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestNextDocumentNumber(t *testing.T) {
	cases := map[string]string{
		"INV-101":     "INV-102",
		"INV-2022435": "INV-2022436",
		"INV-007":     "INV-008",
		"2024":        "2025",
		"A9":          "A10",
		"INV-099":     "INV-100",
	}
	for prev, want := range cases {
		if got := NextDocumentNumber(prev); got != want {
			t.Fatalf("NextDocumentNumber(%q) = %q, want %q", prev, got, want)
		}
	}
}

func TestNextDocumentNumberFallback(t *testing.T) {
	want := fmt.Sprintf("INV-%d-001", time.Now().Year())
	for _, prev := range []string{"NONUMBER", "", "   "} {
		if got := NextDocumentNumber(prev); got != want {
			t.Fatalf("NextDocumentNumber(%q) = %q, want %q", prev, got, want)
		}
	}
}

func TestNextDocumentNumberOverlongDigits(t *testing.T) {
	prev := "INV-" + strings.Repeat("9", 30)
	got := NextDocumentNumber(prev)
	if !strings.HasPrefix(got, "INV-") {
		t.Fatalf("prefix lost: %q", got)
	}
	if got == prev {
		t.Fatalf("number did not advance: %q", got)
	}
}
