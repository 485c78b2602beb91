package candidates

import (
	"github.com/joseph-ayodele/statement-extractor/internal/patterns"
)

// Candidate is a verbatim pattern hit; Offset and End are byte offsets into the scanned text.
type Candidate struct {
	Value  string `json:"value"`
	Offset int    `json:"offset"`
	End    int    `json:"end"`
}

// CandidateSet holds every hit per family in order of appearance. Entries are never
// deduplicated, within or across families.
type CandidateSet struct {
	Dates   []Candidate `json:"dates"`
	Amounts []Candidate `json:"amounts"`
	Masked  []Candidate `json:"masked"`
}

// Clone returns a deep copy with non-nil slices.
func (s CandidateSet) Clone() CandidateSet {
	return CandidateSet{
		Dates:   clone(s.Dates),
		Amounts: clone(s.Amounts),
		Masked:  clone(s.Masked),
	}
}

func (s CandidateSet) Len() int {
	return len(s.Dates) + len(s.Amounts) + len(s.Masked)
}

func clone(in []Candidate) []Candidate {
	out := make([]Candidate, len(in))
	copy(out, in)
	return out
}

// LabelHit is a located field label (FieldLabelHit).
type LabelHit = patterns.LabelHit

// Scan is everything the resolver needs about one page of text.
type Scan struct {
	Text         string
	Candidates   CandidateSet
	Labels       []LabelHit
	Immediate    []Candidate
	CardKeywords []Candidate
}

// Extract runs each pattern family over text once.
func Extract(lib *patterns.Library, text string) Scan {
	if lib == nil {
		lib = patterns.Default()
	}
	s := Scan{Text: text}
	for _, m := range lib.Matchers() {
		found := fromMatches(m.FindAll(text))
		switch m.Family() {
		case patterns.Date:
			s.Candidates.Dates = found
		case patterns.Amount:
			s.Candidates.Amounts = found
		case patterns.MaskedNumber:
			s.Candidates.Masked = found
		}
	}
	s.Candidates = s.Candidates.Clone()
	s.Labels = lib.Labels.Find(text)
	s.Immediate = fromMatches(lib.Labels.FindImmediate(text))
	s.CardKeywords = fromMatches(lib.Labels.FindCardKeywords(text))
	return s
}

func fromMatches(ms []patterns.Match) []Candidate {
	out := make([]Candidate, len(ms))
	for i, m := range ms {
		out[i] = Candidate{Value: m.Value, Offset: m.Offset, End: m.End}
	}
	return out
}
