package resolve

import (
	"math"
	"strings"

	"github.com/joseph-ayodele/statement-extractor/constants"
)

const (
	dateWindow   = 140
	amountWindow = 200

	rowsBelow   = 3
	columnSlack = 2
)

// stage says how a label-scoped value was found; lower is closer to the label.
type stage int

const (
	stageInline stage = iota
	stageColumn
	stageWindow
)

func (s stage) String() string {
	switch s {
	case stageInline:
		return "inline"
	case stageColumn:
		return "column"
	default:
		return "window"
	}
}

// scope bounds the search after a label. Labels of rival fields (and shadow labels)
// end the window early.
type scope struct {
	window int
	rivals map[constants.Field]bool
}

var (
	dateScope = scope{window: dateWindow, rivals: map[constants.Field]bool{
		constants.StatementDate: true, constants.PaymentDueDate: true,
	}}
	amountScope = scope{window: amountWindow, rivals: map[constants.Field]bool{
		constants.TotalAmountDue: true,
	}}
)

// scoped finds the candidate belonging to hit: first on the rest of the label's own line,
// then in the label's column when the line is a header row, then anywhere in the window.
func (in Input) scoped(hit LabelHit, cands []Candidate, sc scope) (Candidate, stage, bool) {
	if c, ok := in.inline(hit, cands); ok {
		return c, stageInline, true
	}
	if c, ok := in.below(hit, cands); ok {
		return c, stageColumn, true
	}
	if c, ok := in.within(hit, cands, sc); ok {
		return c, stageWindow, true
	}
	return Candidate{}, 0, false
}

func (in Input) inline(hit LabelHit, cands []Candidate) (Candidate, bool) {
	line := in.lineOf(hit.Offset)
	_, end := in.lineSpan(line)
	if next, ok := in.nextLabelAfter(line, hit.End); ok {
		end = next.Offset
	}
	return firstIn(cands, hit.End, end)
}

// below handles "-layout" header rows where several labels share a line and their
// values sit underneath.
func (in Input) below(hit LabelHit, cands []Candidate) (Candidate, bool) {
	line := in.lineOf(hit.Offset)
	if len(in.labelsOnLine(line)) < 2 {
		return Candidate{}, false
	}
	from := in.column(hit.Offset) - columnSlack
	to := math.MaxInt
	if next, ok := in.nextLabelAfter(line, hit.End); ok {
		to = in.column(next.Offset)
	}
	inColumn := func(start, end int) bool {
		return in.column(start) < to && in.column(end) > from
	}

	for n, seen := line+1, 0; n < in.lineCount() && seen < rowsBelow; n++ {
		start, end := in.lineSpan(n)
		if strings.TrimSpace(in.Text[start:end]) == "" {
			continue
		}
		seen++
		for _, h := range in.labelsOnLine(n) {
			if inColumn(h.Offset, h.End) {
				return Candidate{}, false
			}
		}
		for _, c := range cands {
			if c.Offset >= start && c.Offset < end && inColumn(c.Offset, c.End) {
				return c, true
			}
		}
	}
	return Candidate{}, false
}

func (in Input) within(hit LabelHit, cands []Candidate, sc scope) (Candidate, bool) {
	limit := hit.End + sc.window
	for _, o := range in.Labels {
		if o == hit || o.Offset < hit.End || o.Offset >= limit {
			continue
		}
		if o.Shadow || sc.rivals[o.Field] {
			limit = o.Offset
		}
	}
	return firstIn(cands, hit.End, limit)
}
