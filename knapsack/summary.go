// summary.go
//
// Human-readable aggregation of a selected food list.

package knapsack

import (
	"fmt"
	"strings"
)

// Summary aggregates a FoodList for reporting.
type Summary struct {
	ItemCount     int
	TotalCalories float64
	TotalWeight   float64
	Lines         []string // one rendered line per item, in list order
}

// Summarize computes aggregate statistics for a food list.
// Safe for nil or empty lists (returns zero-value fields).
func Summarize(foods FoodList) *Summary {
	summary := &Summary{ItemCount: len(foods)}
	if len(foods) == 0 {
		return summary
	}
	summary.TotalCalories, summary.TotalWeight = foods.Totals()
	summary.Lines = make([]string, len(foods))
	for i, item := range foods {
		summary.Lines[i] = fmt.Sprintf("%s: %g calories, %g oz", item.Description, item.Calories, item.Weight)
	}
	return summary
}

// String renders the summary the way the CLI prints it.
func (s *Summary) String() string {
	if s.ItemCount == 0 {
		return "[empty food list]"
	}
	var b strings.Builder
	for _, line := range s.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "total: %d items, %g calories, %g oz", s.ItemCount, s.TotalCalories, s.TotalWeight)
	return b.String()
}
