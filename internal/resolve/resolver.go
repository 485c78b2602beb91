package resolve

import (
	"log/slog"

	"github.com/joseph-ayodele/statement-extractor/constants"
	"github.com/joseph-ayodele/statement-extractor/internal/candidates"
	"github.com/joseph-ayodele/statement-extractor/internal/patterns"
)

// Strategy proposes a value for one field. It must not modify in.
type Strategy func(in Input) (string, bool)

type step struct {
	name string
	run  Strategy
}

// Fields are the five resolved values; unresolved ones hold constants.NotFound.
type Fields struct {
	CardholderName string `json:"cardholder_name"`
	StatementDate  string `json:"statement_date"`
	PaymentDueDate string `json:"payment_due_date"`
	TotalAmountDue string `json:"total_amount_due"`
	CardLast4      string `json:"card_last4"`
}

func unresolved() Fields {
	return Fields{
		CardholderName: constants.NotFound,
		StatementDate:  constants.NotFound,
		PaymentDueDate: constants.NotFound,
		TotalAmountDue: constants.NotFound,
		CardLast4:      constants.NotFound,
	}
}

func (f *Fields) ptr(field constants.Field) *string {
	switch field {
	case constants.CardholderName:
		return &f.CardholderName
	case constants.StatementDate:
		return &f.StatementDate
	case constants.PaymentDueDate:
		return &f.PaymentDueDate
	case constants.TotalAmountDue:
		return &f.TotalAmountDue
	case constants.CardLast4:
		return &f.CardLast4
	}
	return nil
}

// Get returns the value of field, or NotFound for an unknown field.
func (f Fields) Get(field constants.Field) string {
	if p := f.ptr(field); p != nil {
		return *p
	}
	return constants.NotFound
}

// Resolution is the resolver output: the values plus the strategy that produced each.
type Resolution struct {
	Fields Fields
	Via    map[constants.Field]string
}

// Unresolved lists the fields left at NotFound, in output order.
func (r Resolution) Unresolved() []constants.Field {
	var out []constants.Field
	for _, f := range constants.AllFields() {
		if !constants.IsResolved(r.Fields.Get(f)) {
			out = append(out, f)
		}
	}
	return out
}

// Resolver runs an ordered strategy chain per field; the first strategy that succeeds wins.
type Resolver struct {
	lib    *patterns.Library
	chains map[constants.Field][]step
	logger *slog.Logger
}

func New(lib *patterns.Library, logger *slog.Logger) *Resolver {
	if lib == nil {
		lib = patterns.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	r := &Resolver{lib: lib, logger: logger}
	r.chains = map[constants.Field][]step{
		constants.CardholderName: {
			{"label", r.nameByLabel},
			{"leading-lines", r.nameFromLeadingLines},
		},
		constants.StatementDate: {
			{"label", statementByLabel},
			{"first-date", statementFirstDate},
		},
		constants.PaymentDueDate: {
			{"label", r.dueByLabel},
			{"date-spread", dueBySpread},
		},
		constants.TotalAmountDue: {
			{"label", totalByLabel},
		},
		constants.CardLast4: {
			{"masked", cardLast4},
		},
	}
	return r
}

// Chain returns the strategy names tried for field, in order.
func (r *Resolver) Chain(field constants.Field) []string {
	var names []string
	for _, s := range r.chains[field] {
		names = append(names, s.name)
	}
	return names
}

func (r *Resolver) Resolve(in Input) Resolution {
	res := Resolution{Fields: unresolved(), Via: map[constants.Field]string{}}
	for _, field := range constants.AllFields() {
		for _, s := range r.chains[field] {
			v, ok := s.run(in)
			if !ok || v == "" {
				continue
			}
			*res.Fields.ptr(field) = v
			res.Via[field] = s.name
			break
		}
		r.logger.Debug("resolve.field", "field", field, "value", res.Fields.Get(field), "via", res.Via[field])
	}
	return res
}

// ResolveScan is Resolve over a fresh Input built from s.
func (r *Resolver) ResolveScan(s candidates.Scan) Resolution {
	return r.Resolve(NewInput(s))
}
