package extract

import (
	"fmt"

	"github.com/joseph-ayodele/statement-extractor/constants"
	"github.com/joseph-ayodele/statement-extractor/internal/candidates"
	"github.com/joseph-ayodele/statement-extractor/internal/resolve"
)

// Result is the ExtractionResult of one document. Every field is always present;
// unresolved ones carry constants.NotFound.
type Result struct {
	DocumentID     string                  `json:"document_id"`
	Path           string                  `json:"path"`
	CardholderName string                  `json:"cardholder_name"`
	StatementDate  string                  `json:"statement_date"`
	PaymentDueDate string                  `json:"payment_due_date"`
	TotalAmountDue string                  `json:"total_amount_due"`
	CardLast4      string                  `json:"card_last4"`
	Candidates     candidates.CandidateSet `json:"candidates"`
	Source         constants.Method        `json:"source"`
	Degraded       bool                    `json:"degraded"`
	ResolvedVia    map[string]string       `json:"resolved_via"`
	Diagnostics    []string                `json:"diagnostics"`
}

// Field returns the value stored for f.
func (r Result) Field(f constants.Field) string {
	switch f {
	case constants.CardholderName:
		return r.CardholderName
	case constants.StatementDate:
		return r.StatementDate
	case constants.PaymentDueDate:
		return r.PaymentDueDate
	case constants.TotalAmountDue:
		return r.TotalAmountDue
	case constants.CardLast4:
		return r.CardLast4
	}
	return constants.NotFound
}

// Assemble packages the resolved fields, a copy of the raw candidates and the
// acquisition diagnostics. It draws no conclusions of its own.
func Assemble(documentID, path string, text TextExtractionResult, set candidates.CandidateSet, res resolve.Resolution) Result {
	out := Result{
		DocumentID:     documentID,
		Path:           path,
		CardholderName: res.Fields.CardholderName,
		StatementDate:  res.Fields.StatementDate,
		PaymentDueDate: res.Fields.PaymentDueDate,
		TotalAmountDue: res.Fields.TotalAmountDue,
		CardLast4:      res.Fields.CardLast4,
		Candidates:     set.Clone(),
		Source:         text.Method,
		Degraded:       text.Degraded,
		ResolvedVia:    map[string]string{},
		Diagnostics:    append([]string{}, text.Warnings...),
	}
	if out.Source == "" {
		out.Source = constants.MethodNone
	}
	for f, via := range res.Via {
		out.ResolvedVia[string(f)] = via
	}
	for _, f := range res.Unresolved() {
		out.Diagnostics = append(out.Diagnostics, fmt.Sprintf("%s: not found", f))
	}
	return out
}
