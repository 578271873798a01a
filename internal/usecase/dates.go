package usecase

import (
	"fmt"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// parseDay accepts the canonical YYYY-MM-DD form and full RFC 3339
// timestamps, which legacy backups mix freely.
func parseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if t, err := time.Parse(dayLayout, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD", ErrValidation, s)
}

func validDay(s string) bool {
	_, err := parseDay(s)
	return err == nil
}

func formatDay(t time.Time) string {
	return t.UTC().Format(dayLayout)
}
