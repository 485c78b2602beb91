package patterns

import (
	"strings"
	"unicode"

	"github.com/cloudflare/ahocorasick"
)

// Boilerplate spots header words in a candidate name line with a single Aho-Corasick pass.
// Words are matched whole: "BANK" does not hit "BANKIM".
type Boilerplate struct {
	matcher *ahocorasick.Matcher
}

func NewBoilerplate(words []string) *Boilerplate {
	pats := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		pats = append(pats, " "+strings.ToUpper(w)+" ")
	}
	if len(pats) == 0 {
		return &Boilerplate{}
	}
	return &Boilerplate{matcher: ahocorasick.NewStringMatcher(pats)}
}

func (b *Boilerplate) Contains(s string) bool {
	if b == nil || b.matcher == nil {
		return false
	}
	words := strings.FieldsFunc(strings.ToUpper(s), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if len(words) == 0 {
		return false
	}
	return len(b.matcher.Match([]byte(" "+strings.Join(words, " ")+" "))) > 0
}
