package import_feature

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Accepted spreadsheet date layouts, tried in order.
var dateLayouts = []string{"2006-01-02", "02/01/2006"}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or DD/MM/YYYY)", raw)
}

// splitList splits a cell on commas, or on semicolons when no comma is
// present. Tokens are trimmed, empties dropped, order preserved.
func splitList(raw string) []string {
	sep := ","
	if !strings.Contains(raw, ",") {
		sep = ";"
	}

	var tokens []string
	for _, part := range strings.Split(raw, sep) {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
