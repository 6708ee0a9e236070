package cmd

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/maxweight/maxweight/knapsack"
	"github.com/maxweight/maxweight/knapsack/catalog"
)

var (
	// CLI flags for the solve command
	databasePath string  // Path to the caret-delimited food database
	budget       float64 // Calorie budget bounding the selection
	algorithm    string  // Solver to use: dp or exhaustive
	logLevel     string  // Log verbosity level

	// Pre-filter flags, mainly to keep the exhaustive solver tractable
	minWeight float64 // Minimum item weight to consider
	maxWeight float64 // Maximum item weight to consider
	maxItems  int     // Cap on catalog size after filtering (0 = no filtering)

	scenarioName string // Named preset from the scenarios file, overrides the flags above
	scenarioPath string // Path to the scenarios yaml file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "maxweight",
	Short: "Calorie-bounded weight maximization over a food database",
}

// solveCmd loads the database, optionally filters it, and runs the selected solver
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Select the foods maximizing total weight within a calorie budget",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if databasePath == "" {
			logrus.Fatalf("Food database path not provided. Exiting.")
		}

		if scenarioName != "" {
			scenario, err := LoadScenario(scenarioPath, scenarioName)
			if err != nil {
				logrus.Fatalf("Could not load scenario %q: %v", scenarioName, err)
			}
			budget = scenario.Budget
			algorithm = scenario.Algorithm
			minWeight = scenario.MinWeight
			maxWeight = scenario.MaxWeight
			maxItems = scenario.MaxItems
		}

		foods, err := catalog.Load(databasePath)
		if err != nil {
			logrus.Fatalf("Failed to load food database: %v", err)
		}

		if maxItems > 0 {
			foods = knapsack.Filter(foods, minWeight, maxWeight, maxItems)
			logrus.Infof("Filtered catalog to %d items (weight range [%g, %g])", len(foods), minWeight, maxWeight)
		}

		logrus.Infof("Solving with %s: %d items, budget=%g calories", algorithm, len(foods), budget)
		startTime := time.Now()

		var selection knapsack.FoodList
		switch algorithm {
		case "dp":
			selection = knapsack.MaxWeightDP(foods, budget)
		case "exhaustive":
			selection, err = knapsack.MaxWeightExhaustive(foods, budget)
			if err != nil {
				logrus.Fatalf("Exhaustive solve failed: %v (use --max-items to pre-filter)", err)
			}
		default:
			logrus.Fatalf("Unknown algorithm %q: want dp or exhaustive", algorithm)
		}

		fmt.Println(knapsack.Summarize(selection))
		logrus.Infof("Solve complete in %v.", time.Since(startTime))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	solveCmd.Flags().StringVar(&databasePath, "database", "", "Path to the caret-delimited food database")
	solveCmd.Flags().Float64Var(&budget, "budget", 2000, "Calorie budget")
	solveCmd.Flags().StringVar(&algorithm, "algorithm", "dp", "Solver algorithm (dp, exhaustive)")
	solveCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	solveCmd.Flags().Float64Var(&minWeight, "min-weight", 0, "Minimum item weight considered by the pre-filter")
	solveCmd.Flags().Float64Var(&maxWeight, "max-weight", math.Inf(1), "Maximum item weight considered by the pre-filter")
	solveCmd.Flags().IntVar(&maxItems, "max-items", 0, "Pre-filter catalog size cap; 0 disables filtering")

	solveCmd.Flags().StringVar(&scenarioName, "scenario", "", "Named scenario preset overriding budget/filter flags")
	solveCmd.Flags().StringVar(&scenarioPath, "scenarios-file", "scenarios.yaml", "Path to the scenario presets file")

	rootCmd.AddCommand(solveCmd)
}
