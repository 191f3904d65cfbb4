package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reRole     = regexp.MustCompile(`^(user|admin)$`)
	rePriority = regexp.MustCompile(`^(low|medium|high)$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Role validates the user role enum.
func Role(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reRole.MatchString(s)
}

// Priority validates the task priority enum.
func Priority(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePriority.MatchString(s)
}

// Q validates a search query: non-blank after trimming, capped length.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 100 {
		s = s[:100]
	}
	return s, true
}

// ID parses a positive integer path/query parameter.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Limit parses an optional limit query value; 0 means "no limit".
func Limit(s string, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0
	}
	if max > 0 && n > max {
		return max
	}
	return n
}

// IntOr parses s or falls back to def; clamps to [1, max] when max > 0.
func IntOr(s string, def, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		n = def
	}
	if max > 0 && n > max {
		n = max
	}
	return n
}
