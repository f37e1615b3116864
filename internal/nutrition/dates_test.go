package nutrition

import (
	"reflect"
	"testing"
	"time"

	"github.com/nhle/yumyum/internal/model"
)

func TestLastNDays(t *testing.T) {
	ref := time.Date(2025, 8, 8, 15, 30, 0, 0, time.UTC)

	got := LastNDays(ref, 3)
	want := []string{"2025-08-06", "2025-08-07", "2025-08-08"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LastNDays = %v, want %v", got, want)
	}
}

func TestLastNDaysCrossesMonthBoundary(t *testing.T) {
	ref := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	got := LastNDays(ref, 3)
	want := []string{"2025-08-30", "2025-08-31", "2025-09-01"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LastNDays = %v, want %v", got, want)
	}
}

func TestLastNDaysCrossesYearBoundary(t *testing.T) {
	ref := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	got := LastNDays(ref, 4)
	want := []string{"2025-12-30", "2025-12-31", "2026-01-01", "2026-01-02"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LastNDays = %v, want %v", got, want)
	}
}

func TestLastNDaysNonPositive(t *testing.T) {
	if got := LastNDays(time.Now(), 0); got != nil {
		t.Errorf("LastNDays(_, 0) = %v, want nil", got)
	}
	if got := LastNDays(time.Now(), -1); got != nil {
		t.Errorf("LastNDays(_, -1) = %v, want nil", got)
	}
}

func TestAllDatesWithMeals(t *testing.T) {
	meals := []model.Meal{
		mealOn("2025-08-09", 1, 100, 5),
		mealOn("2025-08-07", 1, 100, 5),
		mealOn("2025-08-09", 2, 200, 10),
		mealOn("2025-08-08", 1, 150, 8),
	}

	got := AllDatesWithMeals(meals)
	want := []string{"2025-08-07", "2025-08-08", "2025-08-09"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AllDatesWithMeals = %v, want %v", got, want)
	}
}

func TestAllDatesWithMealsEmpty(t *testing.T) {
	if got := AllDatesWithMeals(nil); len(got) != 0 {
		t.Errorf("AllDatesWithMeals(nil) = %v, want empty", got)
	}
}
