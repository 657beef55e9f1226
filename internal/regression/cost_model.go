// Package regression fits an ordinary-least-squares model predicting a
// monthly security-cost figure from three numeric features. Fitting and
// scoring are delegated to scigo's linear model over gonum matrices.
package regression

import (
	"fmt"

	"github.com/ezoic/scigo/linear"
	"gonum.org/v1/gonum/mat"
)

// Observation is one month of security-cost data
type Observation struct {
	Incidents     float64 // security incidents handled
	TrainingHours float64 // staff awareness-training hours
	Endpoints     float64 // managed endpoints
	Cost          float64 // total monthly security cost
}

// CostModel wraps a fitted linear regression over cost observations
type CostModel struct {
	model  *linear.LinearRegression
	fitted bool
}

// NewCostModel creates an unfitted cost model
func NewCostModel() *CostModel {
	return &CostModel{model: linear.NewLinearRegression()}
}

func designMatrix(obs []Observation) (*mat.Dense, *mat.Dense) {
	x := mat.NewDense(len(obs), 3, nil)
	y := mat.NewDense(len(obs), 1, nil)
	for i, o := range obs {
		x.Set(i, 0, o.Incidents)
		x.Set(i, 1, o.TrainingHours)
		x.Set(i, 2, o.Endpoints)
		y.Set(i, 0, o.Cost)
	}
	return x, y
}

// Fit estimates the OLS coefficients from the observations
func (m *CostModel) Fit(obs []Observation) error {
	if len(obs) == 0 {
		return fmt.Errorf("cannot fit on an empty dataset")
	}
	x, y := designMatrix(obs)
	if err := m.model.Fit(x, y); err != nil {
		return fmt.Errorf("failed to fit cost model: %w", err)
	}
	m.fitted = true
	return nil
}

// Predict returns the predicted cost for each observation
func (m *CostModel) Predict(obs []Observation) ([]float64, error) {
	if !m.fitted {
		return nil, fmt.Errorf("cost model is not fitted")
	}
	x, _ := designMatrix(obs)
	preds, err := m.model.Predict(x)
	if err != nil {
		return nil, fmt.Errorf("failed to predict costs: %w", err)
	}

	rows, _ := preds.Dims()
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = preds.At(i, 0)
	}
	return out, nil
}

// R2 returns the coefficient of determination on the observations
func (m *CostModel) R2(obs []Observation) (float64, error) {
	if !m.fitted {
		return 0, fmt.Errorf("cost model is not fitted")
	}
	x, y := designMatrix(obs)
	score, err := m.model.Score(x, y)
	if err != nil {
		return 0, fmt.Errorf("failed to score cost model: %w", err)
	}
	return score, nil
}

// MSE returns the mean squared error between actual and predicted values
func MSE(actual, predicted []float64) float64 {
	if len(actual) == 0 || len(actual) != len(predicted) {
		return 0
	}
	var sum float64
	for i := range actual {
		d := actual[i] - predicted[i]
		sum += d * d
	}
	return sum / float64(len(actual))
}
