package patterns

import (
	"regexp"
)

// Family identifies what a Matcher looks for.
type Family int

const (
	Date Family = iota
	Amount
	MaskedNumber
)

func (f Family) String() string {
	switch f {
	case Date:
		return "date"
	case Amount:
		return "amount"
	case MaskedNumber:
		return "masked"
	default:
		return "unknown"
	}
}

// Match is one hit of a Matcher. Value is the captured value (an amount without its
// currency marker, for example); Offset and End are byte offsets of the whole hit.
type Match struct {
	Value  string
	Offset int
	End    int
}

// Matcher finds every non-overlapping hit of one family, in order of appearance.
type Matcher interface {
	Family() Family
	FindAll(text string) []Match
}

type regexMatcher struct {
	family Family
	re     *regexp.Regexp
	value  int // submatch holding Value, 0 = whole match
	span   int // submatch holding Offset/End, 0 = whole match
}

func (m regexMatcher) Family() Family { return m.family }

func (m regexMatcher) FindAll(text string) []Match {
	locs := m.re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	out := make([]Match, 0, len(locs))
	for _, loc := range locs {
		vs, ve := loc[2*m.value], loc[2*m.value+1]
		ss, se := loc[2*m.span], loc[2*m.span+1]
		if vs < 0 || ss < 0 {
			continue
		}
		out = append(out, Match{Value: text[vs:ve], Offset: ss, End: se})
	}
	return out
}

// Library bundles the value matchers with the label catalogue. It is safe for
// concurrent use; nothing in it changes after construction.
type Library struct {
	Date   Matcher
	Amount Matcher
	Masked Matcher
	Labels *LabelCatalog
}

var defaultLibrary = New(NewLabelCatalog(DefaultCatalogConfig()))

// Default returns the shared library built from the built-in catalogue.
func Default() *Library { return defaultLibrary }

// New builds a library around a custom label catalogue.
func New(labels *LabelCatalog) *Library {
	return &Library{
		Date:   regexMatcher{family: Date, re: reDate},
		Amount: regexMatcher{family: Amount, re: reAmount, value: 1},
		Masked: regexMatcher{family: MaskedNumber, re: reMasked, value: 1, span: 1},
		Labels: labels,
	}
}

// Matchers lists the value matchers in scan order.
func (l *Library) Matchers() []Matcher {
	return []Matcher{l.Date, l.Amount, l.Masked}
}
