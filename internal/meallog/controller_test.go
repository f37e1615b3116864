package meallog_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/nhle/yumyum/internal/meallog"
	"github.com/nhle/yumyum/internal/model"
	"github.com/nhle/yumyum/internal/nutrition"
	"github.com/nhle/yumyum/internal/store"
	"github.com/nhle/yumyum/tests/testutil"
)

func newController(t *testing.T, seed []model.Meal) (*meallog.Controller, *store.MealStore) {
	t.Helper()
	ctx := context.Background()
	s := testutil.NewTestMealStore(t)
	s.Save(ctx, seed)
	return meallog.NewController(ctx, s), s
}

func TestCommitAddsMeal(t *testing.T) {
	ctrl, s := newController(t, []model.Meal{})
	ctx := context.Background()

	ctrl.BeginAdd()
	meal, err := ctrl.Commit(ctx, meallog.Fields{
		Name:     "Eggs",
		Type:     model.MealTypeBreakfast,
		Quantity: 2,
		Calories: 140,
		Protein:  12,
	}, "2025-08-08")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if meal.ID == "" {
		t.Error("committed meal has no id")
	}
	if meal.Date != "2025-08-08" {
		t.Errorf("Date = %q, want selected date", meal.Date)
	}

	totals := nutrition.DailyTotals(ctrl.Meals(), "2025-08-08")
	if totals.Calories != 280 {
		t.Errorf("Calories = %v, want 280 (140 x 2)", totals.Calories)
	}
	if totals.Protein != 24 {
		t.Errorf("Protein = %v, want 24 (12 x 2)", totals.Protein)
	}

	// Commit persists synchronously.
	persisted := s.Load(ctx)
	if !reflect.DeepEqual(persisted, ctrl.Meals()) {
		t.Errorf("persisted = %+v, want in-memory collection %+v", persisted, ctrl.Meals())
	}

	if editing, _ := ctrl.Editing(); editing {
		t.Error("session should be closed after commit")
	}
}

func TestCommitEmptyNameRejected(t *testing.T) {
	ctrl, s := newController(t, []model.Meal{})
	ctx := context.Background()

	ctrl.BeginAdd()
	_, err := ctrl.Commit(ctx, meallog.Fields{
		Name: "   ",
		Type: model.MealTypeLunch,
	}, "2025-08-08")

	var vErr *meallog.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if vErr.Field != "name" {
		t.Errorf("Field = %q, want %q", vErr.Field, "name")
	}

	if len(ctrl.Meals()) != 0 {
		t.Error("rejected commit must not mutate the collection")
	}
	if got := s.Load(ctx); len(got) != 0 {
		t.Error("rejected commit must not touch the store")
	}
	if editing, _ := ctrl.Editing(); !editing {
		t.Error("session should remain open for correction")
	}
}

func TestCommitInvalidTypeRejected(t *testing.T) {
	ctrl, _ := newController(t, []model.Meal{})

	ctrl.BeginAdd()
	_, err := ctrl.Commit(context.Background(), meallog.Fields{
		Name: "Mystery",
		Type: "brunch",
	}, "2025-08-08")

	var vErr *meallog.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if vErr.Field != "type" {
		t.Errorf("Field = %q, want %q", vErr.Field, "type")
	}
}

func TestCommitEditPreservesIDAndDate(t *testing.T) {
	seed := []model.Meal{
		{ID: "keep-me", Name: "Toast", Type: model.MealTypeBreakfast,
			Date: "2025-08-07", Quantity: 1, Calories: 200},
	}
	ctrl, _ := newController(t, seed)
	ctx := context.Background()

	if _, err := ctrl.BeginEdit("keep-me"); err != nil {
		t.Fatalf("BeginEdit: %v", err)
	}
	got, err := ctrl.Commit(ctx, meallog.Fields{
		Name:     "Toast with Jam",
		Type:     model.MealTypeBreakfast,
		Quantity: 1,
		Calories: 250,
	}, "2025-08-08")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if got.ID != "keep-me" {
		t.Errorf("ID = %q, want %q", got.ID, "keep-me")
	}
	if got.Date != "2025-08-07" {
		t.Errorf("Date = %q, want original date, not the selected one", got.Date)
	}
	if got.Calories != 250 || got.Name != "Toast with Jam" {
		t.Errorf("fields not replaced: %+v", got)
	}
	if len(ctrl.Meals()) != 1 {
		t.Errorf("edit must replace, not append: %d meals", len(ctrl.Meals()))
	}
}

func TestCommitEditUnchangedIsIdempotent(t *testing.T) {
	seed := []model.Meal{
		{ID: "x", Name: "Soup", Type: model.MealTypeDinner,
			Date: "2025-08-08", Quantity: 1, Calories: 220, Protein: 9},
	}
	ctrl, s := newController(t, seed)
	ctx := context.Background()

	before := s.Load(ctx)

	meal, err := ctrl.BeginEdit("x")
	if err != nil {
		t.Fatalf("BeginEdit: %v", err)
	}
	if _, err := ctrl.Commit(ctx, meallog.Fields{
		Name:     meal.Name,
		Type:     meal.Type,
		Quantity: meal.Quantity,
		Calories: meal.Calories,
		Protein:  meal.Protein,
		Carbs:    meal.Carbs,
		Fat:      meal.Fat,
		Fiber:    meal.Fiber,
	}, "2025-08-08"); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	after := s.Load(ctx)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("unchanged edit altered persisted state:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestBeginEditUnknownID(t *testing.T) {
	ctrl, _ := newController(t, []model.Meal{})

	_, err := ctrl.BeginEdit("nope")
	var nfErr *meallog.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
	if nfErr.ID != "nope" {
		t.Errorf("ID = %q, want %q", nfErr.ID, "nope")
	}
	if editing, _ := ctrl.Editing(); editing {
		t.Error("failed BeginEdit must not open a session")
	}
}

func TestDelete(t *testing.T) {
	seed := []model.Meal{
		{ID: "a", Name: "Eggs", Type: model.MealTypeBreakfast, Date: "2025-08-08", Quantity: 1},
		{ID: "b", Name: "Yogurt", Type: model.MealTypeSnack, Date: "2025-08-07", Quantity: 1},
	}
	ctrl, s := newController(t, seed)
	ctx := context.Background()

	if err := ctrl.Delete(ctx, "b"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if len(ctrl.Meals()) != 1 || ctrl.Meals()[0].ID != "a" {
		t.Errorf("Meals = %+v, want only meal a", ctrl.Meals())
	}

	// The deleted meal's day disappears from the logged-date set.
	dates := nutrition.AllDatesWithMeals(ctrl.Meals())
	if !reflect.DeepEqual(dates, []string{"2025-08-08"}) {
		t.Errorf("AllDatesWithMeals = %v, want [2025-08-08]", dates)
	}

	if got := s.Load(ctx); len(got) != 1 {
		t.Errorf("persisted = %+v, want one meal", got)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	ctrl, _ := newController(t, []model.Meal{})

	err := ctrl.Delete(context.Background(), "ghost")
	var nfErr *meallog.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
}

func TestDeleteClosesMatchingSession(t *testing.T) {
	seed := []model.Meal{
		{ID: "a", Name: "Eggs", Type: model.MealTypeBreakfast, Date: "2025-08-08", Quantity: 1},
	}
	ctrl, _ := newController(t, seed)
	ctx := context.Background()

	if _, err := ctrl.BeginEdit("a"); err != nil {
		t.Fatalf("BeginEdit: %v", err)
	}
	if err := ctrl.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if editing, _ := ctrl.Editing(); editing {
		t.Error("deleting the meal under edit must end the session")
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2", 2},
		{"2.5", 2.5},
		{" 140 ", 140},
		{"", 0},
		{"abc", 0},
		{"-5", 0},
	}
	for _, tt := range tests {
		if got := meallog.ParseAmount(tt.in); got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
