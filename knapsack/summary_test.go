package knapsack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_EmptyList_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	assert.Zero(t, summary.ItemCount)
	assert.Zero(t, summary.TotalCalories)
	assert.Zero(t, summary.TotalWeight)
	assert.Empty(t, summary.Lines)
	assert.Equal(t, "[empty food list]", summary.String())
}

func TestSummarize_PopulatedList(t *testing.T) {
	summary := Summarize(testCatalog(t))

	assert.Equal(t, 3, summary.ItemCount)
	assert.Equal(t, 310.0, summary.TotalCalories)
	assert.Equal(t, 12.0, summary.TotalWeight)
	assert.Equal(t, []string{
		"bread: 100 calories, 4 oz",
		"wine: 150 calories, 5 oz",
		"cheese: 60 calories, 3 oz",
	}, summary.Lines)
}

func TestSummary_String_ContainsTotals(t *testing.T) {
	s := Summarize(testCatalog(t)).String()
	assert.Contains(t, s, "bread: 100 calories, 4 oz")
	assert.Contains(t, s, "total: 3 items, 310 calories, 12 oz")
}
