package invoice

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NextDocumentNumber extracts the trailing run of decimal digits from the
// previous document number, increments it, and re-concatenates it with the
// original prefix, preserving zero padding ("INV-007" -> "INV-008"). Numbers
// without trailing digits fall back to a fixed yearly pattern. This is a
// convenience suggestion, not a uniqueness guarantee; uniqueness is enforced
// at save time.
func NextDocumentNumber(previous string) string {
	prev := strings.TrimSpace(previous)
	i := len(prev)
	for i > 0 && prev[i-1] >= '0' && prev[i-1] <= '9' {
		i--
	}
	digits := prev[i:]
	if digits == "" {
		return fmt.Sprintf("INV-%d-001", time.Now().Year())
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		// Trailing run too long to parse; keep the prefix and restart.
		return prev[:i] + "1"
	}
	next := strconv.FormatUint(n+1, 10)
	if pad := len(digits) - len(next); pad > 0 {
		next = strings.Repeat("0", pad) + next
	}
	return prev[:i] + next
}
