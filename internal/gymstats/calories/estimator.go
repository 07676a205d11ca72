package calories

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidDuration = errors.New("invalid duration")
)

// Estimate returns the number of calories burned in durationMinutes of the
// given category, rounded to the nearest integer (halves round up).
// Duration must be a positive finite number.
func Estimate(durationMinutes float64, category Category) (int, error) {
	rate, err := category.Rate()
	if err != nil {
		return 0, err
	}

	if math.IsNaN(durationMinutes) || math.IsInf(durationMinutes, 0) || durationMinutes <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDuration, durationMinutes)
	}

	return int(math.Floor(durationMinutes*rate + 0.5)), nil
}
