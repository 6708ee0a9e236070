// dp.go
//
// Exact 0/1-knapsack solver via dynamic programming over integer calorie
// levels. Pseudo-polynomial: O(n * budget) time and space.

package knapsack

import "math"

// dpCell records, for one (item-prefix, calorie-level) pair, the best
// achievable total weight and which item was added to reach it (-1 if none).
type dpCell struct {
	bestWeight float64
	chosen     int
}

// MaxWeightDP selects the subset of foods maximizing total weight subject to
// the calorie budget, using dynamic programming. The budget is rounded
// half-up to an integer table capacity, and each item's calorie cost is
// truncated to an integer when indexing the table, so results can differ from
// MaxWeightExhaustive when fractional calories are involved.
//
// The returned list preserves the catalog's original item order. It is always
// valid, possibly empty; there are no failure modes.
func MaxWeightDP(foods FoodList, calorieBudget float64) FoodList {
	capacity := int(math.Floor(calorieBudget + 0.5))
	if capacity < 0 {
		capacity = 0
	}

	// Row i covers the prefix foods[:i]; row 0 is the empty prefix.
	table := make([][]dpCell, len(foods)+1)
	for i := range table {
		table[i] = make([]dpCell, capacity+1)
		for level := range table[i] {
			table[i][level].chosen = -1
		}
	}

	for i, item := range foods {
		cost := int(item.Calories)
		prev, row := table[i], table[i+1]
		for level := 0; level <= capacity; level++ {
			row[level].bestWeight = prev[level].bestWeight
			if cost > level {
				continue
			}
			candidate := prev[level-cost].bestWeight + item.Weight
			// Strict comparison: the earlier assignment wins ties.
			if candidate > prev[level].bestWeight {
				row[level].bestWeight = candidate
				row[level].chosen = i
			}
		}
	}

	// Walk the rows backward from the top calorie level. The walk discovers
	// later items first, so reverse to restore catalog order.
	result := FoodList{}
	level := capacity
	for i := len(foods); i > 0; i-- {
		if chosen := table[i][level].chosen; chosen >= 0 {
			result = append(result, foods[chosen])
			level -= int(foods[chosen].Calories)
		}
	}
	for left, right := 0, len(result)-1; left < right; left, right = left+1, right-1 {
		result[left], result[right] = result[right], result[left]
	}
	return result
}
