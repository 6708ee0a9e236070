// exhaustive.go
//
// Ground-truth knapsack solver by full subset enumeration. Exponential in
// catalog size; pre-filter the catalog (see Filter) to keep it tractable.

package knapsack

import (
	"errors"
	"fmt"
)

// maxExhaustiveItems bounds the catalog size so that every subset fits in a
// uint64 bitmask.
const maxExhaustiveItems = 63

// ErrCatalogTooLarge is returned when a catalog exceeds the subset-bitmask
// limit of the exhaustive solver.
var ErrCatalogTooLarge = errors.New("catalog too large for exhaustive search")

// MaxWeightExhaustive selects the subset of foods maximizing total weight
// subject to the calorie budget by enumerating all 2^n subsets. Unlike
// MaxWeightDP it compares calories un-rounded, so it is exact for fractional
// costs. Among equally heavy subsets the lowest enumeration bit pattern wins,
// and the returned list preserves the catalog's original item order.
//
// Catalogs with more than 63 items are rejected outright.
func MaxWeightExhaustive(foods FoodList, calorieBudget float64) (FoodList, error) {
	if len(foods) > maxExhaustiveItems {
		return nil, fmt.Errorf("%w: %d items, limit %d", ErrCatalogTooLarge, len(foods), maxExhaustiveItems)
	}

	best := FoodList{}
	bestWeight := 0.0
	subsetCount := uint64(1) << len(foods)
	for mask := uint64(0); mask < subsetCount; mask++ {
		calories, weight := 0.0, 0.0
		for j := range foods {
			if mask&(uint64(1)<<j) != 0 {
				calories += foods[j].Calories
				weight += foods[j].Weight
			}
		}
		if calories > calorieBudget || weight <= bestWeight {
			continue
		}
		subset := make(FoodList, 0, len(foods))
		for j := range foods {
			if mask&(uint64(1)<<j) != 0 {
				subset = append(subset, foods[j])
			}
		}
		best = subset
		bestWeight = weight
	}
	return best, nil
}
