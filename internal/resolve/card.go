package resolve

import (
	"strings"

	"github.com/joseph-ayodele/statement-extractor/internal/patterns"
)

// cardLast4 picks a masked number ending in exactly four digits. Numbers whose mask runs
// right up to those digits come first; within a tier the one nearest a card keyword wins,
// otherwise the first in the text.
func cardLast4(in Input) (string, bool) {
	var tiers [2][]Candidate
	var digits [2][]string
	for _, c := range in.Candidates.Masked {
		last, adjacent := terminalDigits(c.Value)
		if len(last) != 4 {
			continue
		}
		t := 1
		if adjacent {
			t = 0
		}
		tiers[t] = append(tiers[t], c)
		digits[t] = append(digits[t], last)
	}

	for t := range tiers {
		if len(tiers[t]) == 0 {
			continue
		}
		best := 0
		if len(in.CardKeywords) > 0 {
			bestDist := -1
			for i, c := range tiers[t] {
				d := nearest(c, in.CardKeywords)
				if bestDist < 0 || d < bestDist {
					best, bestDist = i, d
				}
			}
		}
		return digits[t][best], true
	}
	return "", false
}

// terminalDigits returns the trailing digit run of v and whether a masking character
// precedes it (separators ignored).
func terminalDigits(v string) (string, bool) {
	v = strings.TrimRight(v, " -")
	i := len(v)
	for i > 0 && v[i-1] >= '0' && v[i-1] <= '9' {
		i--
	}
	last := v[i:]
	rest := strings.TrimRight(v[:i], " -")
	if rest == "" {
		return last, false
	}
	r := []rune(rest)
	return last, patterns.IsMask(r[len(r)-1])
}

func nearest(c Candidate, keywords []Candidate) int {
	best := -1
	for _, k := range keywords {
		var d int
		switch {
		case k.End <= c.Offset:
			d = c.Offset - k.End
		case c.End <= k.Offset:
			d = k.Offset - c.End
		}
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}
