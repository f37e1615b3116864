package model

import (
	"encoding/json"
	"testing"
)

func TestMealUnmarshalDefaults(t *testing.T) {
	raw := `{"id":"1","name":"Toast","type":"breakfast","date":"2025-08-08"}`

	var m Meal
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if m.Quantity != 1 {
		t.Errorf("Quantity = %v, want 1 (missing quantity defaults)", m.Quantity)
	}
	if m.Calories != 0 || m.Protein != 0 || m.Carbs != 0 || m.Fat != 0 || m.Fiber != 0 {
		t.Errorf("missing nutrients should be zero, got %+v", m)
	}
}

func TestMealUnmarshalClampsNegatives(t *testing.T) {
	raw := `{"id":"1","name":"Odd","type":"snack","date":"2025-08-08",` +
		`"quantity":-2,"calories":-50,"protein":10}`

	var m Meal
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if m.Quantity != 1 {
		t.Errorf("Quantity = %v, want 1 (non-positive quantity defaults)", m.Quantity)
	}
	if m.Calories != 0 {
		t.Errorf("Calories = %v, want 0 (negative clamped)", m.Calories)
	}
	if m.Protein != 10 {
		t.Errorf("Protein = %v, want 10", m.Protein)
	}
}

func TestValidMealType(t *testing.T) {
	for _, mt := range MealTypes {
		if !ValidMealType(mt) {
			t.Errorf("ValidMealType(%q) = false, want true", mt)
		}
	}
	for _, bad := range []string{"", "brunch", "Breakfast"} {
		if ValidMealType(bad) {
			t.Errorf("ValidMealType(%q) = true, want false", bad)
		}
	}
}

func TestFormatParseDayRoundTrip(t *testing.T) {
	day, err := ParseDay("2025-08-08")
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	if got := FormatDay(day); got != "2025-08-08" {
		t.Errorf("FormatDay = %q, want %q", got, "2025-08-08")
	}

	if _, err := ParseDay("08/08/2025"); err == nil {
		t.Error("expected error for non-canonical date layout")
	}
}

func TestSampleMeals(t *testing.T) {
	samples := SampleMeals()
	if len(samples) != 3 {
		t.Fatalf("len(SampleMeals) = %d, want 3", len(samples))
	}
	seen := make(map[string]bool)
	for _, m := range samples {
		if m.ID == "" || seen[m.ID] {
			t.Errorf("sample meal %q has missing or duplicate id %q", m.Name, m.ID)
		}
		seen[m.ID] = true
		if !ValidMealType(m.Type) {
			t.Errorf("sample meal %q has invalid type %q", m.Name, m.Type)
		}
		if _, err := ParseDay(m.Date); err != nil {
			t.Errorf("sample meal %q has invalid date %q", m.Name, m.Date)
		}
	}
}
