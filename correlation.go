package ndstats

import (
	"fmt"
	"math"

	"github.com/gonum/matrix/mat64"
)

// Covariance returns the covariance matrix of a 2-D observation array with
// rows as variables and columns as observations, divided by n - ddof
// (ddof 1 for the unbiased sample estimate). The result is a symmetric
// vars x vars matrix.
//
// Fails with ErrDimensionMismatch unless obs is 2-D, ErrEmptyInput with
// zero observations and ErrDegenerateSample when n - ddof <= 0.
func Covariance(obs *Array[float64], ddof float64) (*mat64.Dense, error) {
	if obs.NDim() != 2 {
		return nil, fmt.Errorf("%w: observations must be 2-D, got %d-D", ErrDimensionMismatch, obs.NDim())
	}
	vars, n := obs.shape[0], obs.shape[1]
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if float64(n)-ddof <= 0 {
		return nil, fmt.Errorf("%w: %d observations with ddof %v", ErrDegenerateSample, n, ddof)
	}

	centered := make([][]float64, vars)
	for i := 0; i < vars; i++ {
		row := make([]float64, n)
		obs.readLane(1, i, row)
		mean, _ := Mean(row)
		for j := range row {
			row[j] -= mean
		}
		centered[i] = row
	}

	out := mat64.NewDense(vars, vars, nil)
	for i := 0; i < vars; i++ {
		for j := 0; j <= i; j++ {
			c := 0.0
			for k := 0; k < n; k++ {
				c += centered[i][k] * centered[j][k]
			}
			c /= float64(n) - ddof
			out.Set(i, j, c)
			out.Set(j, i, c)
		}
	}
	return out, nil
}

// PearsonCorrelation returns the matrix of Pearson correlation coefficients
// of a 2-D observation array (rows as variables, columns as observations),
// with unit diagonal. Fails with ErrDegenerateSample when any variable has
// zero variance.
func PearsonCorrelation(obs *Array[float64]) (*mat64.Dense, error) {
	cov, err := Covariance(obs, 1)
	if err != nil {
		return nil, err
	}
	vars, _ := cov.Dims()
	for i := 0; i < vars; i++ {
		if cov.At(i, i) == 0 {
			return nil, fmt.Errorf("%w: variable %d has zero variance", ErrDegenerateSample, i)
		}
	}
	out := mat64.NewDense(vars, vars, nil)
	for i := 0; i < vars; i++ {
		for j := 0; j < vars; j++ {
			out.Set(i, j, cov.At(i, j)/math.Sqrt(cov.At(i, i)*cov.At(j, j)))
		}
	}
	return out, nil
}
