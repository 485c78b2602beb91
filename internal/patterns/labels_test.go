package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/statement-extractor/constants"
)

func hitLabels(hits []LabelHit) []string {
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.Label
	}
	return out
}

func TestLabelCatalog_Find(t *testing.T) {
	cat := Default().Labels

	t.Run("longest label wins", func(t *testing.T) {
		text := "Payment Due Date: 29 Oct 2025\nTotal Payment Due  35,018.00\nCardholder Name: A B"
		hits := cat.Find(text)

		assert.Equal(t, []string{"Payment Due Date", "Total Payment Due", "Cardholder Name"}, hitLabels(hits))
		assert.Equal(t, constants.PaymentDueDate, hits[0].Field)
		assert.Equal(t, constants.TotalAmountDue, hits[1].Field)
		assert.Equal(t, 2, hits[1].Rank)
		assert.Equal(t, constants.CardholderName, hits[2].Field)
	})

	t.Run("case and spacing tolerant", func(t *testing.T) {
		text := "TOTAL   AMOUNT DUE\tRs 500"
		hits := cat.Find(text)

		require.Len(t, hits, 1)
		assert.Equal(t, "Total Amount Due", hits[0].Label)
		assert.Equal(t, 0, hits[0].Offset)
		assert.Equal(t, len("TOTAL   AMOUNT DUE"), hits[0].End)
	})

	t.Run("shadow labels hide contained labels", func(t *testing.T) {
		hits := cat.Find("Minimum Payment Due 1,751.00")

		require.Len(t, hits, 1)
		assert.True(t, hits[0].Shadow)
		assert.Empty(t, hits[0].Field)
	})

	t.Run("fuzzy hit only when no exact hit", func(t *testing.T) {
		hits := cat.Find("Tota1 Amount Due: 500\nStatement Date 09 Oct 2025")

		var total []LabelHit
		for _, h := range hits {
			if h.Field == constants.TotalAmountDue {
				total = append(total, h)
			}
		}
		require.Len(t, total, 1)
		assert.True(t, total[0].Fuzzy)
		assert.Equal(t, 0, total[0].Offset)
		assert.Equal(t, len("Tota1 Amount Due"), total[0].End)

		exact := cat.Find("Total Amount Due: 500 and Tota1 Amount Due: 600")
		for _, h := range exact {
			assert.False(t, h.Fuzzy)
		}
	})

	t.Run("sorted by offset", func(t *testing.T) {
		hits := cat.Find("Statement Date      Payment Due Date     Total Amount Due")
		assert.Equal(t, []string{"Statement Date", "Payment Due Date", "Total Amount Due"}, hitLabels(hits))
		for i := 1; i < len(hits); i++ {
			assert.Less(t, hits[i-1].Offset, hits[i].Offset)
		}
	})

	t.Run("no labels", func(t *testing.T) {
		assert.Empty(t, cat.Find(""))
		assert.Empty(t, cat.Find("hello world"))
	})
}

func TestLabelCatalog_Phrases(t *testing.T) {
	cat := Default().Labels

	imm := cat.FindImmediate("Payment Due Date: IMMEDIATELY payable")
	require.Len(t, imm, 1)
	assert.Equal(t, "IMMEDIATELY", imm[0].Value)

	cards := cat.FindCardKeywords("Credit Card Statement / Card No XXXX")
	assert.Equal(t, []string{"Credit Card", "Card No"}, values(cards))

	assert.True(t, cat.IsNameStop("Card"))
	assert.True(t, cat.IsNameStop("ACCOUNT"))
	assert.False(t, cat.IsNameStop("Bill"))
}

func TestBoilerplate(t *testing.T) {
	b := NewBoilerplate([]string{"bank", "statement", "credit"})

	tests := []struct {
		line string
		want bool
	}{
		{"HDFC BANK", true},
		{"Credit Card Statement", true},
		{"statement-of-account", true},
		{"BANKIM CHANDRA", false},
		{"SOMNATH SAWANT", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Contains(tt.line))
		})
	}

	var empty *Boilerplate
	assert.False(t, empty.Contains("bank"))
}

func TestCustomCatalog(t *testing.T) {
	cfg := DefaultCatalogConfig()
	cfg.Fields = append(cfg.Fields, Synonyms{Field: constants.TotalAmountDue, Labels: []string{"Net Payable"}})
	lib := New(NewLabelCatalog(cfg))

	hits := lib.Labels.Find("Net Payable 1,000")
	require.Len(t, hits, 1)
	assert.Equal(t, constants.TotalAmountDue, hits[0].Field)
}
