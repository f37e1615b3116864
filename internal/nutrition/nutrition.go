// Package nutrition contains the pure aggregation and goal arithmetic for
// the tracker: per-day totals, multi-day series, and goal-relative display
// values. Everything here is a function of the meal collection passed in;
// nothing is cached.
package nutrition

import (
	"fmt"

	"github.com/nhle/yumyum/internal/model"
)

// Recognized nutrient names.
const (
	NutrientCalories = "calories"
	NutrientProtein  = "protein"
	NutrientCarbs    = "carbs"
	NutrientFat      = "fat"
	NutrientFiber    = "fiber"
)

// Nutrients lists the tracked nutrient names in display order.
var Nutrients = []string{
	NutrientCalories,
	NutrientProtein,
	NutrientCarbs,
	NutrientFat,
	NutrientFiber,
}

// dailyGoals holds the fixed per-nutrient daily targets. Process-wide
// constant; goal editing is a future extension.
var dailyGoals = map[string]float64{
	NutrientCalories: 1500,
	NutrientProtein:  80,
	NutrientCarbs:    201,
	NutrientFat:      42,
	NutrientFiber:    25,
}

// ConfigurationError reports a nutrient name outside the recognized set.
// It indicates a programming error in the caller, not bad user input.
type ConfigurationError struct {
	Nutrient string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unrecognized nutrient %q", e.Nutrient)
}

// Totals is the summed nutrient contribution of a set of meals.
type Totals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}

// Value returns the named nutrient's amount.
func (t Totals) Value(nutrient string) (float64, error) {
	switch nutrient {
	case NutrientCalories:
		return t.Calories, nil
	case NutrientProtein:
		return t.Protein, nil
	case NutrientCarbs:
		return t.Carbs, nil
	case NutrientFat:
		return t.Fat, nil
	case NutrientFiber:
		return t.Fiber, nil
	default:
		return 0, &ConfigurationError{Nutrient: nutrient}
	}
}

// IsZero reports whether no nutrient was logged at all.
func (t Totals) IsZero() bool {
	return t.Calories == 0 && t.Protein == 0 && t.Carbs == 0 &&
		t.Fat == 0 && t.Fiber == 0
}

// DayTotals pairs a calendar day with its totals, forming one entry of a
// trend series.
type DayTotals struct {
	Date string
	Totals
}

// DailyTotals sums field*quantity over all meals whose date equals date.
// A quantity of zero is treated as an unset multiplier of 1. Returns all-zero
// totals when no meals match.
func DailyTotals(meals []model.Meal, date string) Totals {
	var t Totals
	for _, m := range meals {
		if m.Date != date {
			continue
		}
		q := m.Quantity
		if q <= 0 {
			q = 1
		}
		t.Calories += m.Calories * q
		t.Protein += m.Protein * q
		t.Carbs += m.Carbs * q
		t.Fat += m.Fat * q
		t.Fiber += m.Fiber * q
	}
	return t
}

// RangeSeries maps DailyTotals over each date in the given order. Dates with
// no matching meals appear as zero-valued entries, so the series length
// always equals len(dates).
func RangeSeries(meals []model.Meal, dates []string) []DayTotals {
	series := make([]DayTotals, len(dates))
	for i, d := range dates {
		series[i] = DayTotals{Date: d, Totals: DailyTotals(meals, d)}
	}
	return series
}

// Average returns the arithmetic mean of the nutrient's values across every
// series entry. Days with nothing logged count as zero, matching the trend
// chart's fixed window. An empty series yields 0.
func Average(series []DayTotals, nutrient string) (float64, error) {
	if len(series) == 0 {
		return 0, nil
	}
	var sum float64
	for _, entry := range series {
		v, err := entry.Value(nutrient)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum / float64(len(series)), nil
}

// GoalFor returns the fixed daily target for nutrient.
func GoalFor(nutrient string) (float64, error) {
	goal, ok := dailyGoals[nutrient]
	if !ok {
		return 0, &ConfigurationError{Nutrient: nutrient}
	}
	return goal, nil
}

// Percentage returns how far current is toward goal, capped to [0,100].
// A zero goal is defined as 100 when anything was logged and 0 otherwise.
func Percentage(current, goal float64) float64 {
	if goal == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	p := 100 * current / goal
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// Remaining returns the amount left before reaching goal, never negative.
func Remaining(current, goal float64) float64 {
	if r := goal - current; r > 0 {
		return r
	}
	return 0
}

// GoalStatus classifies a day's intake relative to a goal.
type GoalStatus int

const (
	StatusUnder GoalStatus = iota
	StatusNear
	StatusOver
)

// String returns the lowercase status name.
func (s GoalStatus) String() string {
	switch s {
	case StatusUnder:
		return "under"
	case StatusNear:
		return "near"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Status classifies current against goal: over when the goal is exceeded,
// near at 90% or above, under otherwise.
func Status(current, goal float64) GoalStatus {
	if current > goal {
		return StatusOver
	}
	if Percentage(current, goal) >= 90 {
		return StatusNear
	}
	return StatusUnder
}
