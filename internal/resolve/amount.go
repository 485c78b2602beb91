package resolve

import (
	"github.com/joseph-ayodele/statement-extractor/constants"
	"github.com/joseph-ayodele/statement-extractor/internal/patterns"
)

// totalByLabel never guesses: without a total-due label the field stays unresolved.
func totalByLabel(in Input) (string, bool) {
	amounts := in.standaloneAmounts()
	for _, hit := range in.hitsFor(constants.TotalAmountDue) {
		c, _, ok := in.scoped(hit, amounts, amountScope)
		if !ok {
			continue
		}
		if v, ok := patterns.NormalizeAmount(c.Value); ok {
			return v, true
		}
	}
	return "", false
}

// standaloneAmounts drops amount hits that are really pieces of a date or a card number.
func (in Input) standaloneAmounts() []Candidate {
	var out []Candidate
	for _, a := range in.Candidates.Amounts {
		if overlaps(a, in.Candidates.Dates) || overlaps(a, in.Candidates.Masked) {
			continue
		}
		out = append(out, a)
	}
	return out
}
