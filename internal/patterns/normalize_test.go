package patterns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"₹12,345.67", "12345.67", true},
		{"Rs. 12345", "12345.00", true},
		{"Rs.500", "500.00", true},
		{"INR 1,23,456", "123456.00", true},
		{"$ 1,234,567.8", "1234567.80", true},
		{"35018.00", "35018.00", true},
		{"0", "0.00", true},
		{"12.345", "12.35", true},
		{"Rs.", "", false},
		{"", "", false},
		{"twelve", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizeAmount(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeAmount_MatchedValues(t *testing.T) {
	text := "Total ₹12,345.67 then Rs. 12345"
	ms := Default().Amount.FindAll(text)

	var got []string
	for _, m := range ms {
		v, ok := NormalizeAmount(m.Value)
		assert.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, []string{"12345.67", "12345.00"}, got)
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "09 Oct 2025", NormalizeDate("  09   Oct 2025 "))
	assert.Equal(t, "Oct 09, 2025", NormalizeDate("Oct 09, 2025,"))
	assert.Equal(t, "", NormalizeDate(""))
}

func TestParseDate(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		in     string
		want   time.Time
		wantOK bool
	}{
		{"09/10/2025", day(2025, time.October, 9), true},
		{"9-1-25", day(2025, time.January, 9), true},
		{"2025-10-29", day(2025, time.October, 29), true},
		{"09 Oct 2025", day(2025, time.October, 9), true},
		{"29-OCT-25", day(2025, time.October, 29), true},
		{"Oct 9, 2025", day(2025, time.October, 9), true},
		{"1st September 2025", day(2025, time.September, 1), true},
		{"31/02/2025", time.Time{}, false},
		{"13/13/2025", time.Time{}, false},
		{"IMMEDIATE", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}
