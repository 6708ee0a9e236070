package knapsack

import "testing"

// mustItem builds a FoodItem or fails the test.
func mustItem(t *testing.T, description string, calories, weight float64) *FoodItem {
	t.Helper()
	item, err := NewFoodItem(description, calories, weight)
	if err != nil {
		t.Fatalf("building %s: %v", description, err)
	}
	return item
}

// testCatalog is the three-item catalog used across solver tests:
// bread (100 cal, 4 oz), wine (150 cal, 5 oz), cheese (60 cal, 3 oz).
func testCatalog(t *testing.T) FoodList {
	t.Helper()
	return FoodList{
		mustItem(t, "bread", 100, 4),
		mustItem(t, "wine", 150, 5),
		mustItem(t, "cheese", 60, 3),
	}
}

// descriptions projects a FoodList onto its item names, in order.
func descriptions(foods FoodList) []string {
	names := make([]string, len(foods))
	for i, item := range foods {
		names[i] = item.Description
	}
	return names
}
