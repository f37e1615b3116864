package model

import (
	"encoding/json"
	"time"
)

// Meal type constants.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// MealTypes lists the recognized meal types in display order.
var MealTypes = []string{
	MealTypeBreakfast,
	MealTypeLunch,
	MealTypeDinner,
	MealTypeSnack,
}

// DayFormat is the canonical calendar-day layout used for Meal.Date.
// Days are timezone-naive: two meals belong to the same day exactly when
// their date strings are equal.
const DayFormat = "2006-01-02"

// Meal is a single logged meal. Nutrient amounts are per serving; the
// effective contribution of a meal to a day is each amount times Quantity.
type Meal struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Date     string  `json:"date"`
	Quantity float64 `json:"quantity,omitempty"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// ValidMealType reports whether t is one of the recognized meal types.
func ValidMealType(t string) bool {
	for _, mt := range MealTypes {
		if t == mt {
			return true
		}
	}
	return false
}

// FormatDay renders a time as a canonical day string.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay parses a canonical day string.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

// UnmarshalJSON decodes a meal and normalizes it at the boundary: absent or
// negative nutrient amounts become 0 and a missing or non-positive quantity
// becomes 1, so aggregation never has to coalesce fields itself.
func (m *Meal) UnmarshalJSON(data []byte) error {
	type alias Meal
	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = Meal(raw)
	m.Normalize()
	return nil
}

// Normalize clamps nutrient amounts to non-negative values and defaults the
// quantity multiplier to 1.
func (m *Meal) Normalize() {
	if m.Quantity <= 0 {
		m.Quantity = 1
	}
	for _, f := range []*float64{&m.Calories, &m.Protein, &m.Carbs, &m.Fat, &m.Fiber} {
		if *f < 0 {
			*f = 0
		}
	}
}

// SampleMeals returns the demonstration meals used to seed a fresh store.
func SampleMeals() []Meal {
	return []Meal{
		{
			ID:       "9f0c2a4e-1b3d-4c5f-8a6e-7d8091a2b3c4",
			Name:     "Oatmeal with Berries",
			Type:     MealTypeBreakfast,
			Date:     "2025-08-08",
			Quantity: 1,
			Calories: 320,
			Protein:  12,
			Carbs:    58,
			Fat:      6,
			Fiber:    8,
		},
		{
			ID:       "2c4d6e8f-0a1b-4c2d-9e3f-4a5b6c7d8e9f",
			Name:     "Grilled Chicken Salad",
			Type:     MealTypeLunch,
			Date:     "2025-08-08",
			Quantity: 1,
			Calories: 450,
			Protein:  35,
			Carbs:    25,
			Fat:      18,
			Fiber:    12,
		},
		{
			ID:       "7a8b9c0d-1e2f-4a3b-8c4d-5e6f7a8b9c0d",
			Name:     "Greek Yogurt",
			Type:     MealTypeSnack,
			Date:     "2025-08-07",
			Quantity: 1,
			Calories: 150,
			Protein:  20,
			Carbs:    15,
			Fat:      0,
			Fiber:    0,
		},
	}
}
