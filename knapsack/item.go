// item.go
//
// Defines the FoodItem record and the FoodList collection shared by the
// filter, the solvers, and the catalog loader.

package knapsack

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// FoodItem is one food available for selection. Items are immutable after
// construction and shared by pointer between the catalog and every result
// list, so no field may be written after NewFoodItem returns.
type FoodItem struct {
	Description string  // Human-readable name, e.g. "spicy chicken breast"
	Calories    float64 // Calorie cost; always positive
	Weight      float64 // Weight in ounces; expected non-negative
}

// NewFoodItem validates and constructs a FoodItem.
// The description must be non-empty and calories strictly positive.
func NewFoodItem(description string, calories, weight float64) (*FoodItem, error) {
	if description == "" {
		return nil, fmt.Errorf("food item: empty description")
	}
	if calories <= 0 {
		return nil, fmt.Errorf("food item %q: calories must be positive, got %v", description, calories)
	}
	return &FoodItem{Description: description, Calories: calories, Weight: weight}, nil
}

// FoodList is an ordered collection of shared FoodItem handles. Solver and
// filter results are fresh FoodLists whose elements alias the source catalog.
type FoodList []*FoodItem

// Totals returns the summed calories and weight over the list.
func (fl FoodList) Totals() (calories, weight float64) {
	if len(fl) == 0 {
		return 0, 0
	}
	cals := make([]float64, len(fl))
	weights := make([]float64, len(fl))
	for i, item := range fl {
		cals[i] = item.Calories
		weights[i] = item.Weight
	}
	return floats.Sum(cals), floats.Sum(weights)
}
