package patterns

import (
	"regexp"
	"strings"
)

const monthNames = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`

var (
	// 2025-10-09 | 09/10/2025, 09-10-25, 09.10.2025 | 09 Oct 2025, 9-Oct-25, 09 October, 2025 | Oct 09, 2025.
	// Blank runs between parts are allowed; "Dec 2025" is a month, not a date.
	reDate = regexp.MustCompile(`(?i)` + strings.Join([]string{
		`\b\d{4}-\d{1,2}-\d{1,2}\b`,
		`\b\d{1,2}[/\-.]\d{1,2}[/\-.](?:\d{4}|\d{2})\b`,
		`\b\d{1,2}(?:st|nd|rd|th)?[ \t\-]*(?:` + monthNames + `)\.?,?[ \t\-]*(?:\d{4}|\d{2})\b`,
		`\b(?:` + monthNames + `)\.?[ \t\-]+\d{1,2}(?:st|nd|rd|th)?(?:,[ \t\-]*|[ \t\-]+)(?:\d{4}|\d{2})\b`,
	}, "|"))

	// the value group drops the marker: "Rs. 1,23,456.00" -> "1,23,456.00"
	reAmount = regexp.MustCompile(`(?:(?i:₹|\brs\.?|\binr|\$)\s*|\b)(\d{1,3}(?:,\d{2,3})+(?:\.\d+)?|\d+(?:\.\d+)?)`)

	// "XXXX-1234", "25XX XXXX 3458", "530562******9004", "•••• 1234"; group 1 is the number itself,
	// the leading class keeps masks inside ordinary words ("Maxx") out. At most one plain
	// 4-digit group may follow the last mask, so "XXXX 5981 2000.00" stops at 5981.
	reMasked = regexp.MustCompile(`(?:^|[^\p{L}\p{N}*•])(` +
		`(?:\d+[ \-]?)*` +
		`(?:\d*[*Xx•]{2,}[*Xx•\d]*[ \-]?)*` +
		`\d*[*Xx•]{2,}(?:(?:[*Xx•\d]*[*Xx•])?\d{0,3}[ \-]?\d{4}\b|[*Xx•\d]*)` +
		`)`)

	reAmountMarker = regexp.MustCompile(`(?i)₹|\brs\.?|\binr\b|\$`)
)

// IsMask reports whether r hides a card digit.
func IsMask(r rune) bool {
	return r == '*' || r == 'X' || r == 'x' || r == '•'
}
