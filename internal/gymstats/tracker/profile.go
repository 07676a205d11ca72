package tracker

import (
	"strconv"
)

const maxAge = 150

type Profile struct {
	Name     string  `json:"name"`
	Age      int     `json:"age,omitempty"`
	WeightKg float64 `json:"weightKg,omitempty"`
	HeightCm float64 `json:"heightCm,omitempty"`
	Goal     string  `json:"goal,omitempty"`
}

// ProfileForm fields other than name may be left empty.
type ProfileForm struct {
	Name     TextValue `json:"name"`
	Age      TextValue `json:"age"`
	WeightKg TextValue `json:"weightKg"`
	HeightCm TextValue `json:"heightCm"`
	Goal     TextValue `json:"goal"`
}

func (f ProfileForm) parse() (Profile, error) {
	formErr := &FormError{}
	p := Profile{
		Name: f.Name.Trimmed(),
		Goal: f.Goal.Trimmed(),
	}

	if p.Name == "" {
		formErr.add("name", "name is required")
	}

	if ageText := f.Age.Trimmed(); ageText != "" {
		age, err := strconv.Atoi(ageText)
		if err != nil || age <= 0 || age >= maxAge {
			formErr.add("age", "age must be a whole number between 1 and 149")
		} else {
			p.Age = age
		}
	}

	p.WeightKg = parsePositive(formErr, "weightKg", f.WeightKg)
	p.HeightCm = parsePositive(formErr, "heightCm", f.HeightCm)

	return p, formErr.errOrNil()
}

func parsePositive(formErr *FormError, field string, v TextValue) float64 {
	text := v.Trimmed()
	if text == "" {
		return 0
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil || !(n > 0) || n > 1e6 {
		formErr.add(field, field+" must be a positive number")
		return 0
	}
	return n
}
