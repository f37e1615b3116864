package store_test

import (
	"context"
	"io"
	"log"
	"reflect"
	"testing"

	"github.com/nhle/yumyum/internal/model"
	"github.com/nhle/yumyum/internal/store"
	"github.com/nhle/yumyum/tests/testutil"
)

func newMealStore(t *testing.T) (*store.MealStore, *store.SQLiteStore) {
	t.Helper()
	db := testutil.NewTestStore(t)
	return store.NewMealStore(db, log.New(io.Discard, "", 0)), db
}

func TestLoadSeedsFreshStore(t *testing.T) {
	s, _ := newMealStore(t)
	ctx := context.Background()

	got := s.Load(ctx)
	want := model.SampleMeals()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fresh Load = %+v, want sample meals", got)
	}

	// The recovery state must also have been persisted.
	again := s.Load(ctx)
	if !reflect.DeepEqual(again, want) {
		t.Errorf("second Load = %+v, want sample meals", again)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := newMealStore(t)
	ctx := context.Background()

	meals := []model.Meal{
		{ID: "a", Name: "Eggs", Type: model.MealTypeBreakfast, Date: "2025-08-08",
			Quantity: 2, Calories: 140, Protein: 12},
		{ID: "b", Name: "Soup", Type: model.MealTypeDinner, Date: "2025-08-08",
			Quantity: 1, Calories: 220, Protein: 9, Carbs: 30, Fat: 5, Fiber: 3},
	}
	s.Save(ctx, meals)

	got := s.Load(ctx)
	if !reflect.DeepEqual(got, meals) {
		t.Errorf("Load = %+v, want %+v (order preserved)", got, meals)
	}
}

func TestSaveEmptyCollection(t *testing.T) {
	s, _ := newMealStore(t)
	ctx := context.Background()

	s.Save(ctx, []model.Meal{})

	got := s.Load(ctx)
	if len(got) != 0 {
		t.Errorf("Load after saving empty = %+v, want empty (no reseed)", got)
	}
}

func TestLoadReseedsOnCorruptBlob(t *testing.T) {
	s, db := newMealStore(t)
	ctx := context.Background()

	if err := db.Set(ctx, "yumyum-meals", "{not json"); err != nil {
		t.Fatalf("seeding corrupt blob: %v", err)
	}

	got := s.Load(ctx)
	want := model.SampleMeals()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load over corrupt blob = %+v, want sample meals", got)
	}

	// The corrupt payload must have been replaced durably.
	raw, ok, err := db.Get(ctx, "yumyum-meals")
	if err != nil || !ok {
		t.Fatalf("Get after reseed: ok=%v err=%v", ok, err)
	}
	if raw == "{not json" {
		t.Error("corrupt blob was not overwritten")
	}
}

func TestMealsForDate(t *testing.T) {
	s, _ := newMealStore(t)
	ctx := context.Background()

	meals := []model.Meal{
		{ID: "a", Name: "Eggs", Type: model.MealTypeBreakfast, Date: "2025-08-08", Quantity: 1},
		{ID: "b", Name: "Toast", Type: model.MealTypeBreakfast, Date: "2025-08-07", Quantity: 1},
		{ID: "c", Name: "Soup", Type: model.MealTypeDinner, Date: "2025-08-08", Quantity: 1},
	}
	s.Save(ctx, meals)

	got := s.MealsForDate(ctx, "2025-08-08")
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("MealsForDate = %+v, want meals a and c in order", got)
	}

	if got := s.MealsForDate(ctx, "2025-01-01"); len(got) != 0 {
		t.Errorf("MealsForDate for empty day = %+v, want empty", got)
	}
}

func TestBlobStoreUpsert(t *testing.T) {
	db := testutil.NewTestStore(t)
	ctx := context.Background()

	if _, ok, err := db.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get missing key: ok=%v err=%v, want ok=false err=nil", ok, err)
	}

	if err := db.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	got, ok, err := db.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got != "v2" {
		t.Errorf("Get = %q, want %q", got, "v2")
	}
}
