package constants

// Field is the canonical key of an extracted statement field.
type Field string

const (
	CardholderName Field = "cardholder_name"
	StatementDate  Field = "statement_date"
	PaymentDueDate Field = "payment_due_date"
	TotalAmountDue Field = "total_amount_due"
	CardLast4      Field = "card_last4"
)

var allFields = []Field{
	CardholderName,
	StatementDate,
	PaymentDueDate,
	TotalAmountDue,
	CardLast4,
}

// AllFields returns the fields in output order.
func AllFields() []Field {
	out := make([]Field, len(allFields))
	copy(out, allFields)
	return out
}

// AsStringSlice returns the field keys as plain strings.
func AsStringSlice() []string {
	result := make([]string, len(allFields))
	for i, f := range allFields {
		result[i] = string(f)
	}
	return result
}

const (
	// NotFound marks a field that could not be resolved with enough confidence.
	NotFound = "NOT_FOUND"
	// Immediate replaces the payment due date when the statement asks for immediate payment.
	Immediate = "IMMEDIATE"
)

// IsResolved reports whether v holds a real value rather than the NotFound sentinel.
func IsResolved(v string) bool {
	return v != "" && v != NotFound
}
