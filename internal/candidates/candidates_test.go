package candidates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/statement-extractor/internal/patterns"
)

func valuesOf(cs []Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Value
	}
	return out
}

func TestExtract(t *testing.T) {
	text := "Card No: XXXX XXXX XXXX 5981\n" +
		"Statement Date: 09 Oct 2025\n" +
		"Payment Due Date: 29 Oct 2025\n" +
		"Total Amount Due: Rs. 35,018.00\n" +
		"Minimum Amount Due: 1,751.00"

	s := Extract(patterns.Default(), text)

	assert.Equal(t, text, s.Text)
	assert.Equal(t, []string{"09 Oct 2025", "29 Oct 2025"}, valuesOf(s.Candidates.Dates))
	assert.Equal(t, []string{"XXXX XXXX XXXX 5981"}, valuesOf(s.Candidates.Masked))
	assert.Contains(t, valuesOf(s.Candidates.Amounts), "35,018.00")
	assert.Contains(t, valuesOf(s.Candidates.Amounts), "1,751.00")
	assert.Len(t, s.CardKeywords, 1)
	assert.Empty(t, s.Immediate)

	for _, group := range [][]Candidate{s.Candidates.Dates, s.Candidates.Amounts, s.Candidates.Masked} {
		for i := 1; i < len(group); i++ {
			assert.Less(t, group[i-1].Offset, group[i].Offset)
		}
	}
	require.NotEmpty(t, s.Labels)
	assert.Equal(t, "Statement Date", s.Labels[0].Label)
}

func TestExtract_KeepsDuplicates(t *testing.T) {
	s := Extract(nil, "Due 29 Oct 2025 ... again 29 Oct 2025")

	assert.Equal(t, []string{"29 Oct 2025", "29 Oct 2025"}, valuesOf(s.Candidates.Dates))
	// the year also matches the amount family; families are independent
	assert.Contains(t, valuesOf(s.Candidates.Amounts), "2025")
}

func TestExtract_EmptyText(t *testing.T) {
	s := Extract(nil, "")

	assert.Equal(t, 0, s.Candidates.Len())
	assert.NotNil(t, s.Candidates.Dates)
	assert.NotNil(t, s.Candidates.Amounts)
	assert.NotNil(t, s.Candidates.Masked)
	assert.Empty(t, s.Labels)
}

func TestCandidateSet_Clone(t *testing.T) {
	orig := CandidateSet{Dates: []Candidate{{Value: "09 Oct 2025", Offset: 3, End: 14}}}
	cp := orig.Clone()
	cp.Dates[0].Value = "changed"

	assert.Equal(t, "09 Oct 2025", orig.Dates[0].Value)
	assert.NotNil(t, cp.Amounts)
}
