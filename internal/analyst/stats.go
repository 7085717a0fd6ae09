package analyst

import (
	"math"

	ierr "github.com/NoahZinter/black-thursday/internal/errors"
)

// Mean returns the arithmetic mean of the values
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ierr.NewError("mean of an empty data set is undefined").
			Mark(ierr.ErrInvalidOperation)
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// SampleStdDev returns the sample standard deviation of the values, with the
// n-1 divisor. The divisor is deliberate: several fixed thresholds in the
// analyst depend on it, so it must not be "corrected" to the population form.
func SampleStdDev(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, ierr.NewError("standard deviation needs at least two values").
			Mark(ierr.ErrInvalidOperation)
	}

	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}

	sumSquares := 0.0
	for _, v := range values {
		sumSquares += (v - mean) * (v - mean)
	}
	return math.Sqrt(sumSquares / float64(len(values)-1)), nil
}

// Round2 rounds to 2 decimal places, the precision every reported statistic
// uses
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// StandardDeviationsOfMean returns the threshold n standard deviations above
// the mean. Negative n yields a below-mean threshold.
func StandardDeviationsOfMean(mean, stddev, n float64) float64 {
	return mean + n*stddev
}
