package patterns

import (
	"regexp"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/joseph-ayodele/statement-extractor/constants"
)

// Synonyms lists the labels of one field, most specific first.
type Synonyms struct {
	Field  constants.Field
	Labels []string
}

// CatalogConfig is the raw keyword data behind a LabelCatalog. Supporting a new
// statement layout should only ever mean adding entries here.
type CatalogConfig struct {
	Fields []Synonyms
	// Shadows are labels of values we never extract ("Minimum Amount Due"). They hide
	// field labels they contain and take part in layout detection.
	Shadows      []string
	Immediate    []string
	CardKeywords []string
	Boilerplate  []string
	// NameStops end a labelled name that runs into the next item on the line
	// ("Name: JOHN DOE Card No: ...").
	NameStops []string
}

// DefaultCatalogConfig returns the built-in keyword data.
func DefaultCatalogConfig() CatalogConfig {
	return CatalogConfig{
		Fields: []Synonyms{
			{constants.TotalAmountDue, []string{
				"Total Amount Due", "Your Total Amount Due", "Total Payment Due", "Total Amount Payable",
				"Amount Payable", "Outstanding Balance", "Total Outstanding", "Total Dues", "Total Due",
			}},
			{constants.PaymentDueDate, []string{"Payment Due Date", "Due Date", "Pay By Date", "Payment Due"}},
			{constants.StatementDate, []string{
				"Statement Date", "Statement Generation Date", "Bill Date",
				"Statement Period", "Billing Period", "Statement For",
			}},
			{constants.CardholderName, []string{"Cardholder Name", "Card Holder Name", "Customer Name", "Name"}},
		},
		Shadows: []string{
			"Minimum Amount Due", "Minimum Payment Due", "Minimum Due", "Min Amount Due",
			"Credit Limit", "Available Credit Limit", "Cash Limit", "Available Cash Limit",
			"Previous Balance", "Opening Balance",
		},
		Immediate:    []string{"Immediate", "Immediately", "Immediat", "Due Now", "Upon Receipt"},
		CardKeywords: []string{"Card Number", "Card No", "Card Account", "Credit Card", "Card"},
		Boilerplate: []string{
			"statement", "statements", "payment", "payments", "due", "account", "page", "customer",
			"bank", "credit", "card", "cards", "limit", "balance", "total", "summary", "reward", "rewards",
			"points", "address", "dear", "date", "amount", "minimum", "number", "bill", "period",
			"transaction", "transactions", "details", "service", "tax", "gst", "email", "phone", "mobile",
			"limited", "ltd", "www", "http", "https", "important", "message", "offer", "welcome",
			"name", "holder", "cardholder", "merchant",
		},
		NameStops: []string{
			"card", "account", "acct", "customer", "client", "member", "relationship",
			"statement", "mobile", "phone", "email", "address",
		},
	}
}

// LabelHit is a located field label.
type LabelHit struct {
	Field  constants.Field `json:"field,omitempty"`
	Label  string          `json:"label"`
	Rank   int             `json:"rank"` // synonym position in the catalogue
	Offset int             `json:"offset"`
	End    int             `json:"end"`
	Fuzzy  bool            `json:"fuzzy,omitempty"`
	Shadow bool            `json:"shadow,omitempty"`
}

type phrase struct {
	field  constants.Field
	label  string
	rank   int
	shadow bool
	re     *regexp.Regexp
}

// LabelCatalog is the compiled, read-only form of a CatalogConfig.
type LabelCatalog struct {
	phrases     []phrase
	immediate   *regexp.Regexp
	card        *regexp.Regexp
	boilerplate *Boilerplate
	nameStops   *Boilerplate
}

const (
	fuzzyMinLabel   = 10
	fuzzyCharsPerOp = 10
)

var reToken = regexp.MustCompile(`[^\s:]+`)

func NewLabelCatalog(cfg CatalogConfig) *LabelCatalog {
	c := &LabelCatalog{}
	for _, s := range cfg.Fields {
		for i, l := range s.Labels {
			c.phrases = append(c.phrases, phrase{field: s.Field, label: l, rank: i, re: phraseRegexp(l)})
		}
	}
	for _, l := range cfg.Shadows {
		c.phrases = append(c.phrases, phrase{label: l, shadow: true, re: phraseRegexp(l)})
	}
	c.immediate = anyPhraseRegexp(cfg.Immediate)
	c.card = anyPhraseRegexp(cfg.CardKeywords)
	c.boilerplate = NewBoilerplate(cfg.Boilerplate)
	c.nameStops = NewBoilerplate(cfg.NameStops)
	return c
}

// phraseRegexp matches label words case-insensitively with any run of blanks between them.
func phraseRegexp(label string) *regexp.Regexp {
	words := strings.Fields(label)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b` + strings.Join(words, `[ \t]+`) + `\b`)
}

func anyPhraseRegexp(labels []string) *regexp.Regexp {
	if len(labels) == 0 {
		return nil
	}
	// longest first so "Immediately" wins over "Immediate"
	sorted := append([]string(nil), labels...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	parts := make([]string, len(sorted))
	for i, l := range sorted {
		words := strings.Fields(l)
		for j, w := range words {
			words[j] = regexp.QuoteMeta(w)
		}
		parts[i] = strings.Join(words, `[ \t]+`)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(parts, "|") + `)\b`)
}

// Find returns every label hit in text ordered by offset. A hit lying inside a longer
// hit is dropped ("Due Date" within "Payment Due Date"). Fields without any exact hit
// get OCR-tolerant fuzzy hits.
func (c *LabelCatalog) Find(text string) []LabelHit {
	var hits []LabelHit
	for _, p := range c.phrases {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			hits = append(hits, LabelHit{
				Field: p.field, Label: p.label, Rank: p.rank,
				Offset: loc[0], End: loc[1], Shadow: p.shadow,
			})
		}
	}
	hits = dropContained(hits)

	found := map[constants.Field]bool{}
	for _, h := range hits {
		found[h.Field] = true
	}
	hits = append(hits, c.fuzzyHits(text, found, hits)...)

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Offset != hits[j].Offset {
			return hits[i].Offset < hits[j].Offset
		}
		return hits[i].End > hits[j].End
	})
	return hits
}

func dropContained(hits []LabelHit) []LabelHit {
	out := hits[:0:0]
	for i, h := range hits {
		inside := false
		for j, o := range hits {
			if i == j {
				continue
			}
			longer := o.End-o.Offset > h.End-h.Offset
			if longer && o.Offset <= h.Offset && h.End <= o.End {
				inside = true
				break
			}
		}
		if !inside {
			out = append(out, h)
		}
	}
	return out
}

type token struct {
	text       string
	start, end int
}

func (c *LabelCatalog) fuzzyHits(text string, found map[constants.Field]bool, exact []LabelHit) []LabelHit {
	var lines [][]token
	lineStart := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		var toks []token
		for _, loc := range reToken.FindAllStringIndex(line, -1) {
			toks = append(toks, token{
				text:  strings.ToLower(line[loc[0]:loc[1]]),
				start: lineStart + loc[0],
				end:   lineStart + loc[1],
			})
		}
		lines = append(lines, toks)
		lineStart += len(line)
	}

	var out []LabelHit
	for _, p := range c.phrases {
		if p.shadow || found[p.field] || len(p.label) < fuzzyMinLabel {
			continue
		}
		want := strings.ToLower(strings.Join(strings.Fields(p.label), " "))
		n := len(strings.Fields(p.label))
		allowed := len(want) / fuzzyCharsPerOp
		for _, toks := range lines {
			for i := 0; i+n <= len(toks); i++ {
				parts := make([]string, n)
				for k := 0; k < n; k++ {
					parts[k] = toks[i+k].text
				}
				got := strings.Join(parts, " ")
				if fuzzy.LevenshteinDistance(got, want) > allowed {
					continue
				}
				h := LabelHit{Field: p.field, Label: p.label, Rank: p.rank,
					Offset: toks[i].start, End: toks[i+n-1].end, Fuzzy: true}
				if !overlapsAny(h, exact) && !overlapsAny(h, out) {
					out = append(out, h)
				}
			}
		}
	}
	return out
}

func overlapsAny(h LabelHit, hits []LabelHit) bool {
	for _, o := range hits {
		if h.Offset < o.End && o.Offset < h.End {
			return true
		}
	}
	return false
}

// FindImmediate returns every "pay immediately" phrase in text.
func (c *LabelCatalog) FindImmediate(text string) []Match {
	return findPhrases(c.immediate, text)
}

// FindCardKeywords returns every card-related keyword in text.
func (c *LabelCatalog) FindCardKeywords(text string) []Match {
	return findPhrases(c.card, text)
}

// IsBoilerplate reports whether s contains a header/boilerplate word.
func (c *LabelCatalog) IsBoilerplate(s string) bool {
	return c.boilerplate.Contains(s)
}

// IsNameStop reports whether word ends a labelled name.
func (c *LabelCatalog) IsNameStop(word string) bool {
	return c.nameStops.Contains(word)
}

func findPhrases(re *regexp.Regexp, text string) []Match {
	if re == nil {
		return nil
	}
	var out []Match
	for _, loc := range re.FindAllStringIndex(text, -1) {
		out = append(out, Match{Value: text[loc[0]:loc[1]], Offset: loc[0], End: loc[1]})
	}
	return out
}
