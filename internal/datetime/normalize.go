// Package datetime canonicalizes the date and time representations that
// arrive from the backend and from legacy client caches. Appointment dates
// are compared and stored as yyyy-MM-dd and times as 24h HH:mm; everything
// crossing an ingestion boundary passes through here first, otherwise
// string-equality filters silently never match.
package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is the structured time shape some sources deliver.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// NormalizeTime converts any supported time representation to "HH:mm".
// Unrecognized input degrades to "" rather than an error so callers can
// render a blank field instead of failing.
func NormalizeTime(input any) string {
	switch v := input.(type) {
	case nil:
		return ""
	case string:
		return normalizeTimeString(v)
	case TimeOfDay:
		return formatClock(v.Hour, v.Minute)
	case *TimeOfDay:
		if v == nil {
			return ""
		}
		return formatClock(v.Hour, v.Minute)
	case int:
		return normalizeTimeString(strconv.Itoa(v))
	default:
		return ""
	}
}

func normalizeTimeString(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	upper := strings.ToUpper(s)
	if strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		return normalizeMeridiem(upper)
	}

	if h, m, ok := splitClock(s); ok {
		return formatClock(h, m)
	}

	// Bare digits are read as HHMM after left-padding to 4; a 3-digit
	// value has an implicit leading zero hour ("150" -> "01:50").
	if isDigits(s) && len(s) >= 3 && len(s) <= 4 {
		padded := strings.Repeat("0", 4-len(s)) + s
		h, _ := strconv.Atoi(padded[:2])
		m, _ := strconv.Atoi(padded[2:])
		return formatClock(h, m)
	}

	return ""
}

func normalizeMeridiem(s string) string {
	meridiem := s[len(s)-2:]
	body := strings.TrimSpace(s[:len(s)-2])

	h, m, ok := splitClock(body)
	if !ok || h < 1 || h > 12 {
		return ""
	}

	if meridiem == "PM" && h != 12 {
		h += 12
	}
	if meridiem == "AM" && h == 12 {
		h = 0
	}
	return formatClock(h, m)
}

func splitClock(s string) (int, int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || !isDigits(parts[0]) || !isDigits(parts[1]) {
		return 0, 0, false
	}
	if len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, 0, false
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h, m, true
}

func formatClock(h, m int) string {
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// NormalizeDate converts any supported date representation to "yyyy-MM-dd".
// A string no pattern matches is returned unchanged; unsupported types
// degrade to "". Callers treat the result as best effort.
func NormalizeDate(input any) string {
	switch v := input.(type) {
	case nil:
		return ""
	case time.Time:
		return v.Format("2006-01-02")
	case string:
		return normalizeDateString(v)
	case [3]int:
		return formatDate(v[0], v[1], v[2], "")
	case []int:
		if len(v) == 3 {
			return formatDate(v[0], v[1], v[2], "")
		}
		return ""
	default:
		return ""
	}
}

func normalizeDateString(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}

	if isDigits(trimmed) && len(trimmed) == 8 {
		y, _ := strconv.Atoi(trimmed[:4])
		m, _ := strconv.Atoi(trimmed[4:6])
		d, _ := strconv.Atoi(trimmed[6:])
		return formatDate(y, m, d, s)
	}

	for _, sep := range []string{"-", "/", "."} {
		parts := strings.Split(trimmed, sep)
		if len(parts) != 3 {
			continue
		}
		for _, p := range parts {
			if !isDigits(p) {
				return s
			}
		}
		// The 4-length segment decides which end holds the year.
		switch {
		case len(parts[0]) == 4:
			y, _ := strconv.Atoi(parts[0])
			m, _ := strconv.Atoi(parts[1])
			d, _ := strconv.Atoi(parts[2])
			return formatDate(y, m, d, s)
		case len(parts[2]) == 4:
			d, _ := strconv.Atoi(parts[0])
			m, _ := strconv.Atoi(parts[1])
			y, _ := strconv.Atoi(parts[2])
			return formatDate(y, m, d, s)
		}
		return s
	}

	return s
}

func formatDate(y, m, d int, fallback string) string {
	if y < 1000 || y > 9999 || m < 1 || m > 12 || d < 1 || d > 31 {
		return fallback
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

// IsCanonicalDate reports whether s is already in yyyy-MM-dd form with a
// plausible month and day.
func IsCanonicalDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	if !isDigits(s[:4]) || !isDigits(s[5:7]) || !isDigits(s[8:]) {
		return false
	}
	m, _ := strconv.Atoi(s[5:7])
	d, _ := strconv.Atoi(s[8:])
	return m >= 1 && m <= 12 && d >= 1 && d <= 31
}

// To12Hour renders a canonical "HH:mm" as "h:mm AM/PM" for display.
func To12Hour(hhmm string) string {
	h, m, ok := splitClock(hhmm)
	if !ok || h > 23 || m > 59 {
		return hhmm
	}

	meridiem := "AM"
	if h >= 12 {
		meridiem = "PM"
	}
	if h == 0 {
		h = 12
	} else if h > 12 {
		h -= 12
	}
	return fmt.Sprintf("%d:%02d %s", h, m, meridiem)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
