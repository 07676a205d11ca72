package calories

import (
	"fmt"
	"strings"
)

// Category can be one of:
//   - cardio
//   - strength
//   - flexibility
//   - sports
type Category string

const (
	CategoryCardio      Category = "cardio"
	CategoryStrength    Category = "strength"
	CategoryFlexibility Category = "flexibility"
	CategorySports      Category = "sports"
)

// caloriesPerMinute must hold an entry for every Category above.
var caloriesPerMinute = map[Category]float64{
	CategoryCardio:      10,
	CategoryStrength:    8,
	CategoryFlexibility: 3,
	CategorySports:      7,
}

// Categories lists all known categories in display order.
func Categories() []Category {
	return []Category{
		CategoryCardio,
		CategoryStrength,
		CategoryFlexibility,
		CategorySports,
	}
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	_, ok := caloriesPerMinute[c]
	return ok
}

// Rate returns calories burned per minute for the category.
func (c Category) Rate() (float64, error) {
	rate, ok := caloriesPerMinute[c]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, string(c))
	}
	return rate, nil
}

// ParseCategory is case-insensitive and ignores surrounding whitespace.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, raw)
	}
	return c, nil
}
