// Command cost-regression fits an ordinary-least-squares model over twelve
// months of synthetic security-cost data and reports MSE and R² on the
// training rows.
package main

import (
	"fmt"
	"os"

	"github.com/mikey/phishing-classifier/internal/regression"
)

// Twelve months of synthetic observations: incidents handled, awareness
// training hours, managed endpoints, and the resulting monthly cost.
var observations = []regression.Observation{
	{Incidents: 12, TrainingHours: 40, Endpoints: 220, Cost: 18400},
	{Incidents: 9, TrainingHours: 32, Endpoints: 225, Cost: 16750},
	{Incidents: 15, TrainingHours: 44, Endpoints: 230, Cost: 20100},
	{Incidents: 7, TrainingHours: 28, Endpoints: 232, Cost: 15200},
	{Incidents: 11, TrainingHours: 36, Endpoints: 238, Cost: 17900},
	{Incidents: 18, TrainingHours: 52, Endpoints: 240, Cost: 22300},
	{Incidents: 14, TrainingHours: 48, Endpoints: 245, Cost: 19800},
	{Incidents: 6, TrainingHours: 24, Endpoints: 248, Cost: 14600},
	{Incidents: 10, TrainingHours: 36, Endpoints: 252, Cost: 17300},
	{Incidents: 16, TrainingHours: 50, Endpoints: 255, Cost: 21200},
	{Incidents: 13, TrainingHours: 42, Endpoints: 260, Cost: 19100},
	{Incidents: 8, TrainingHours: 30, Endpoints: 264, Cost: 15900},
}

func main() {
	model := regression.NewCostModel()
	if err := model.Fit(observations); err != nil {
		fmt.Printf("Failed to fit model: %v\n", err)
		os.Exit(1)
	}

	predicted, err := model.Predict(observations)
	if err != nil {
		fmt.Printf("Failed to predict: %v\n", err)
		os.Exit(1)
	}

	actual := make([]float64, len(observations))
	for i, o := range observations {
		actual[i] = o.Cost
	}

	fmt.Printf("=== Monthly Security Cost Model ===\n")
	fmt.Printf("%-8s %12s %12s\n", "Month", "Actual", "Predicted")
	for i := range observations {
		fmt.Printf("%-8d %12.0f %12.2f\n", i+1, actual[i], predicted[i])
	}

	r2, err := model.R2(observations)
	if err != nil {
		fmt.Printf("Failed to score model: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nMSE: %.2f\n", regression.MSE(actual, predicted))
	fmt.Printf("R²:  %.4f\n", r2)
}
