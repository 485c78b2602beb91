package resolve

import (
	"github.com/joseph-ayodele/statement-extractor/constants"
	"github.com/joseph-ayodele/statement-extractor/internal/patterns"
)

const spreadCandidates = 3

func statementByLabel(in Input) (string, bool) {
	for _, hit := range in.hitsFor(constants.StatementDate) {
		if c, _, ok := in.scoped(hit, in.Candidates.Dates, dateScope); ok {
			return patterns.NormalizeDate(c.Value), true
		}
	}
	return "", false
}

func statementFirstDate(in Input) (string, bool) {
	if len(in.Candidates.Dates) == 0 {
		return "", false
	}
	return patterns.NormalizeDate(in.Candidates.Dates[0].Value), true
}

// dueByLabel checks for "pay immediately" phrasing before taking a date. An immediate
// phrase wins unless the date sits strictly closer to the label.
func (r *Resolver) dueByLabel(in Input) (string, bool) {
	for _, hit := range in.hitsFor(constants.PaymentDueDate) {
		imm, immStage, immOK := in.scoped(hit, in.Immediate, dateScope)
		date, dateStage, dateOK := in.scoped(hit, in.Candidates.Dates, dateScope)
		switch {
		case immOK && (!dateOK || immStage < dateStage || (immStage == dateStage && imm.Offset < date.Offset)):
			return constants.Immediate, true
		case dateOK:
			return patterns.NormalizeDate(date.Value), true
		}
	}
	return "", false
}

// dueBySpread is the label-free fallback: among the earliest dates take the furthest one
// that differs from the first, and only if it is chronologically later.
func dueBySpread(in Input) (string, bool) {
	dates := in.Candidates.Dates
	if len(dates) > spreadCandidates {
		dates = dates[:spreadCandidates]
	}
	if len(dates) < 2 {
		return "", false
	}
	first := patterns.NormalizeDate(dates[0].Value)
	for i := len(dates) - 1; i > 0; i-- {
		v := patterns.NormalizeDate(dates[i].Value)
		if v == first {
			continue
		}
		a, okA := patterns.ParseDate(first)
		b, okB := patterns.ParseDate(v)
		if okA && okB && !b.After(a) {
			return "", false
		}
		return v, true
	}
	return "", false
}
