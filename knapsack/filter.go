// filter.go
//
// Weight-range catalog filter. Its second job is capping catalog size before
// handing it to the exhaustive solver, whose cost is exponential in item count.

package knapsack

// Filter returns the items of src whose weight lies in [minWeight, maxWeight]
// (inclusive both ends), preserving source order and stopping once maxItems
// have been accepted. The result is a fresh list aliasing src's items; src is
// never modified.
func Filter(src FoodList, minWeight, maxWeight float64, maxItems int) FoodList {
	if maxItems <= 0 {
		return FoodList{}
	}
	result := make(FoodList, 0, maxItems)
	for _, item := range src {
		if item.Weight >= minWeight && item.Weight <= maxWeight {
			result = append(result, item)
			if len(result) == maxItems {
				break
			}
		}
	}
	return result
}
