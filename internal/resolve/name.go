package resolve

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/joseph-ayodele/statement-extractor/constants"
)

const (
	nameLeadLines = 12
	nameMaxWords  = 6
)

var (
	reLabelSep = regexp.MustCompile(`^[ \t]*[:\-][ \t]*`)
	reWideGap  = regexp.MustCompile(`[ \t]{2,}`)
	reNameWord = regexp.MustCompile(`^\p{L}[\p{L}.'\-]*$`)
)

// nameByLabel reads the rest of the label's line. A one-word label ("Name") must be
// followed by ':' or '-' so column headers such as "Merchant Name" don't count.
func (r *Resolver) nameByLabel(in Input) (string, bool) {
	for _, hit := range in.hitsFor(constants.CardholderName) {
		line := in.lineOf(hit.Offset)
		_, end := in.lineSpan(line)
		if next, ok := in.nextLabelAfter(line, hit.End); ok {
			end = next.Offset
		}
		rest := in.Text[hit.End:end]
		sep := reLabelSep.FindString(rest)
		if sep == "" && len(strings.Fields(hit.Label)) == 1 {
			continue
		}
		if v, ok := nameValue(rest[len(sep):], 1, nameMaxWords, r.lib.Labels.IsNameStop); ok {
			return v, true
		}
	}
	return "", false
}

// nameFromLeadingLines looks for a person-like line near the top, where statements print
// the mailing address. Layout columns are split apart first.
func (r *Resolver) nameFromLeadingLines(in Input) (string, bool) {
	seen := 0
	for n := 0; n < in.lineCount() && seen < nameLeadLines; n++ {
		start, end := in.lineSpan(n)
		line := strings.TrimSpace(in.Text[start:end])
		if line == "" {
			continue
		}
		seen++
		for _, cell := range reWideGap.Split(line, -1) {
			if strings.ContainsAny(cell, "0123456789") || r.lib.Labels.IsBoilerplate(cell) {
				continue
			}
			if v, ok := nameValue(cell, 2, 5, nil); ok && hasCapitalized(v) {
				return v, true
			}
		}
	}
	return "", false
}

// nameValue cuts s at a wide gap or a digit and accepts it if it is made of
// minWords..maxWords name-like words. With stop set, the name ends at the first word
// that is not name-like or that stop reports; without it such a word rejects s.
func nameValue(s string, minWords, maxWords int, stop func(word string) bool) (string, bool) {
	s = strings.TrimLeft(s, " \t")
	if loc := reWideGap.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	if i := strings.IndexFunc(s, unicode.IsDigit); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimRight(s, " \t,:-")
	words := strings.Fields(s)
	for i, w := range words {
		if reNameWord.MatchString(w) && (stop == nil || !stop(w)) {
			continue
		}
		if stop == nil {
			return "", false
		}
		words = words[:i]
		break
	}
	if len(words) < minWords || len(words) > maxWords {
		return "", false
	}
	return strings.Join(words, " "), true
}

func hasCapitalized(s string) bool {
	for _, w := range strings.Fields(s) {
		if r := []rune(w); unicode.IsUpper(r[0]) {
			return true
		}
	}
	return false
}
