package resolve

import (
	"sort"
	"unicode/utf8"

	"github.com/joseph-ayodele/statement-extractor/constants"
	"github.com/joseph-ayodele/statement-extractor/internal/candidates"
)

type (
	Candidate = candidates.Candidate
	LabelHit  = candidates.LabelHit
)

// Input is what every strategy sees: the page text, its candidates and label hits.
// Strategies must treat it as read-only.
type Input struct {
	Text         string
	Candidates   candidates.CandidateSet
	Labels       []LabelHit
	Immediate    []Candidate
	CardKeywords []Candidate

	lineStarts []int
}

// NewInput copies a scan into a resolver input.
func NewInput(s candidates.Scan) Input {
	in := Input{
		Text:         s.Text,
		Candidates:   s.Candidates.Clone(),
		Labels:       append([]LabelHit(nil), s.Labels...),
		Immediate:    append([]Candidate(nil), s.Immediate...),
		CardKeywords: append([]Candidate(nil), s.CardKeywords...),
		lineStarts:   []int{0},
	}
	for i := 0; i < len(s.Text); i++ {
		if s.Text[i] == '\n' {
			in.lineStarts = append(in.lineStarts, i+1)
		}
	}
	return in
}

func (in Input) lineCount() int { return len(in.lineStarts) }

func (in Input) lineOf(off int) int {
	return sort.Search(len(in.lineStarts), func(i int) bool { return in.lineStarts[i] > off }) - 1
}

// lineSpan returns the byte range of line n without its newline.
func (in Input) lineSpan(n int) (int, int) {
	start, end := in.lineStarts[n], len(in.Text)
	if n+1 < len(in.lineStarts) {
		end = in.lineStarts[n+1] - 1
	}
	return start, end
}

// column is the rune column of off within its line.
func (in Input) column(off int) int {
	start, _ := in.lineSpan(in.lineOf(off))
	return utf8.RuneCountInString(in.Text[start:off])
}

// hitsFor lists the labels of field in trial order: exact before fuzzy, then
// catalogue synonym order, then text order.
func (in Input) hitsFor(f constants.Field) []LabelHit {
	var out []LabelHit
	for _, h := range in.Labels {
		if h.Field == f && !h.Shadow {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Fuzzy != out[j].Fuzzy {
			return !out[i].Fuzzy
		}
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].Offset < out[j].Offset
	})
	return out
}

// labelsOnLine returns every label hit, shadows included, that starts on line n.
func (in Input) labelsOnLine(n int) []LabelHit {
	start, end := in.lineSpan(n)
	var out []LabelHit
	for _, h := range in.Labels {
		if h.Offset >= start && h.Offset < end {
			out = append(out, h)
		}
	}
	return out
}

// nextLabelAfter returns the first label on the same line that starts at or after off.
func (in Input) nextLabelAfter(line, off int) (LabelHit, bool) {
	for _, h := range in.labelsOnLine(line) {
		if h.Offset >= off {
			return h, true
		}
	}
	return LabelHit{}, false
}

func firstIn(cands []Candidate, from, to int) (Candidate, bool) {
	for _, c := range cands {
		if c.Offset >= from && c.Offset < to {
			return c, true
		}
	}
	return Candidate{}, false
}

func overlaps(c Candidate, others []Candidate) bool {
	for _, o := range others {
		if c.Offset < o.End && o.Offset < c.End {
			return true
		}
	}
	return false
}
