package tracker

import (
	"math"
	"strconv"
	"time"

	"github.com/vfit-app/vfit/internal/gymstats/calories"
)

// DisplayTimeLayout is how entry timestamps are shown in the history tables.
const DisplayTimeLayout = "1/2/2006, 3:04:05 PM"

type Workout struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	DurationMinutes float64           `json:"durationMinutes"`
	Category        calories.Category `json:"category"`
	Calories        int               `json:"calories"`
	Timestamp       string            `json:"timestamp"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// WorkoutForm is the raw "Add Workout" form submission.
type WorkoutForm struct {
	Name     TextValue `json:"name"`
	Duration TextValue `json:"duration"`
	Category TextValue `json:"category"`
}

type workoutInput struct {
	name     string
	duration float64
	category calories.Category
}

// parse rejects empty, non-numeric, zero and negative durations before they
// reach the estimator. An empty category falls back to cardio, the form default.
func (f WorkoutForm) parse() (workoutInput, error) {
	formErr := &FormError{}
	in := workoutInput{
		name:     f.Name.Trimmed(),
		category: calories.CategoryCardio,
	}

	if in.name == "" {
		formErr.add("name", "name is required")
	}

	durationText := f.Duration.Trimmed()
	if durationText == "" {
		formErr.add("duration", "duration is required")
	} else if duration, err := strconv.ParseFloat(durationText, 64); err != nil {
		formErr.add("duration", "duration must be a number")
	} else if math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		formErr.add("duration", "duration must be a positive number of minutes")
	} else {
		in.duration = duration
	}

	if categoryText := f.Category.Trimmed(); categoryText != "" {
		category, err := calories.ParseCategory(categoryText)
		if err != nil {
			formErr.add("category", "unknown category "+strconv.Quote(categoryText))
		} else {
			in.category = category
		}
	}

	return in, formErr.errOrNil()
}
