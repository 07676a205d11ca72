package tracker

import (
	"strconv"
	"time"
)

type Meal struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Calories  int       `json:"calories"`
	Timestamp string    `json:"timestamp"`
	CreatedAt time.Time `json:"createdAt"`
}

type MealForm struct {
	Name     TextValue `json:"name"`
	Calories TextValue `json:"calories"`
}

type mealInput struct {
	name     string
	calories int
}

func (f MealForm) parse() (mealInput, error) {
	formErr := &FormError{}
	in := mealInput{name: f.Name.Trimmed()}

	if in.name == "" {
		formErr.add("name", "name is required")
	}

	caloriesText := f.Calories.Trimmed()
	if caloriesText == "" {
		formErr.add("calories", "calories are required")
	} else if cals, err := strconv.Atoi(caloriesText); err != nil {
		formErr.add("calories", "calories must be a whole number")
	} else if cals < 0 {
		formErr.add("calories", "calories must not be negative")
	} else {
		in.calories = cals
	}

	return in, formErr.errOrNil()
}
