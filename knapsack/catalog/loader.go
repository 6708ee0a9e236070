// loader.go
//
// Loads the caret-delimited food database. Each record after the header row
// has three fields: description ^ calories ^ weight.

package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/maxweight/maxweight/knapsack"
)

// fieldCount is the exact number of caret-separated fields per record.
const fieldCount = 3

// ErrFieldCount is returned when a record does not have exactly three fields.
// A wrong field count aborts the whole load; no partial catalog is returned.
var ErrFieldCount = errors.New("invalid field count")

// Load reads the food database at path and returns the catalog in file order.
//
// The first line is always treated as a header and skipped. Records whose
// numeric fields fail to parse, or that fail FoodItem validation, are skipped
// with a debug log. A record with a field count other than three makes the
// whole load fail.
func Load(path string) (knapsack.FoodList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open food database: %w", err)
	}
	defer f.Close()

	var foods knapsack.FoodList
	scanner := bufio.NewScanner(f)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if lineNumber == 1 {
			continue
		}
		line := scanner.Text()

		fields := strings.Split(line, "^")
		if len(fields) != fieldCount {
			return nil, fmt.Errorf("%w at line %d: want %d fields, got %d", ErrFieldCount, lineNumber, fieldCount, len(fields))
		}

		calories, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			logrus.Debugf("skipping line %d: bad calories %q", lineNumber, fields[1])
			continue
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			logrus.Debugf("skipping line %d: bad weight %q", lineNumber, fields[2])
			continue
		}

		item, err := knapsack.NewFoodItem(fields[0], calories, weight)
		if err != nil {
			logrus.Debugf("skipping line %d: %v", lineNumber, err)
			continue
		}
		foods = append(foods, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read food database: %w", err)
	}

	logrus.Infof("Loaded food database %s: %d items", path, len(foods))
	return foods, nil
}
