package patterns

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	amountCleaner = strings.NewReplacer(",", "", " ", "", "\u00a0", "")

	reNumericDate = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4}|\d{2})$`)
	reISODate     = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	reDateParts   = regexp.MustCompile(`[\s,\-.]+`)
	reOrdinal     = regexp.MustCompile(`(?i)^(\d{1,2})(?:st|nd|rd|th)$`)
)

// NormalizeAmount strips currency markers and thousands separators and renders the
// value with exactly two fractional digits: "₹12,345.67" -> "12345.67", "Rs. 12345" -> "12345.00".
func NormalizeAmount(s string) (string, bool) {
	s = reAmountMarker.ReplaceAllString(strings.TrimSpace(s), "")
	s = amountCleaner.Replace(s)
	if s == "" {
		return "", false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", false
	}
	return d.StringFixed(2), true
}

// NormalizeDate returns the display form of a matched date: whitespace collapsed and
// trailing punctuation removed. It is idempotent, so every supported form round-trips.
func NormalizeDate(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimRight(s, ",.")
}

// ParseDate interprets a matched date for chronology checks. Numeric dates are day-first;
// two-digit years are taken as 20xx.
func ParseDate(s string) (time.Time, bool) {
	s = NormalizeDate(s)
	if m := reISODate.FindStringSubmatch(s); m != nil {
		return civil(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	if m := reNumericDate.FindStringSubmatch(s); m != nil {
		return civil(year(m[3]), atoi(m[2]), atoi(m[1]))
	}

	var day, mon, yr int
	for _, part := range reDateParts.Split(s, -1) {
		if part == "" {
			continue
		}
		if m := reOrdinal.FindStringSubmatch(part); m != nil {
			part = m[1]
		}
		if n, err := strconv.Atoi(part); err == nil {
			if day == 0 && len(part) <= 2 {
				day = n
			} else {
				yr = year(part)
			}
			continue
		}
		if m, ok := monthOf(part); ok {
			mon = m
		}
	}
	if day == 0 || mon == 0 || yr == 0 {
		return time.Time{}, false
	}
	return civil(yr, mon, day)
}

func monthOf(s string) (int, bool) {
	if len(s) < 3 {
		return 0, false
	}
	switch strings.ToLower(s[:3]) {
	case "jan":
		return 1, true
	case "feb":
		return 2, true
	case "mar":
		return 3, true
	case "apr":
		return 4, true
	case "may":
		return 5, true
	case "jun":
		return 6, true
	case "jul":
		return 7, true
	case "aug":
		return 8, true
	case "sep":
		return 9, true
	case "oct":
		return 10, true
	case "nov":
		return 11, true
	case "dec":
		return 12, true
	}
	return 0, false
}

func civil(y, m, d int) (time.Time, bool) {
	if m < 1 || m > 12 || d < 1 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date rolls 31 Feb into March; reject instead
	if t.Day() != d || int(t.Month()) != m {
		return time.Time{}, false
	}
	return t, true
}

func year(s string) int {
	y := atoi(s)
	if len(s) == 2 {
		y += 2000
	}
	return y
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
