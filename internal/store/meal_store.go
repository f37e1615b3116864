package store

import (
	"context"
	"encoding/json"
	"log"

	"github.com/nhle/yumyum/internal/model"
)

// mealsKey is the single blob key holding the JSON-serialized meal collection.
const mealsKey = "yumyum-meals"

// MealStore owns the durable meal collection. It serializes the whole
// collection as one JSON blob; there is no partial or incremental
// persistence.
type MealStore struct {
	blobs  BlobStore
	logger *log.Logger
}

// NewMealStore creates a MealStore over the given blob store. A nil logger
// defaults to the standard logger.
func NewMealStore(blobs BlobStore, logger *log.Logger) *MealStore {
	if logger == nil {
		logger = log.Default()
	}
	return &MealStore{blobs: blobs, logger: logger}
}

// Load returns the persisted meal collection. An absent key or unparsable
// payload is treated as "no data": the store re-initializes with the sample
// meals, persists that recovery state, and returns it. Load never fails.
func (s *MealStore) Load(ctx context.Context) []model.Meal {
	raw, ok, err := s.blobs.Get(ctx, mealsKey)
	if err != nil {
		s.logger.Printf("meal store: reading %q: %v", mealsKey, err)
		return s.reset(ctx)
	}
	if !ok {
		return s.reset(ctx)
	}

	var meals []model.Meal
	if err := json.Unmarshal([]byte(raw), &meals); err != nil {
		s.logger.Printf("meal store: unparsable data under %q, reseeding: %v", mealsKey, err)
		return s.reset(ctx)
	}
	if meals == nil {
		meals = []model.Meal{}
	}
	return meals
}

// Save replaces the entire persisted collection. A write failure is logged
// and swallowed: the caller's in-memory collection remains authoritative for
// the rest of the session.
func (s *MealStore) Save(ctx context.Context, meals []model.Meal) {
	data, err := json.Marshal(meals)
	if err != nil {
		s.logger.Printf("meal store: encoding meals: %v", err)
		return
	}
	if err := s.blobs.Set(ctx, mealsKey, string(data)); err != nil {
		s.logger.Printf("meal store: persisting meals: %v", err)
	}
}

// MealsForDate returns the persisted meals whose date exactly equals date,
// in insertion order.
func (s *MealStore) MealsForDate(ctx context.Context, date string) []model.Meal {
	return FilterByDate(s.Load(ctx), date)
}

// FilterByDate returns the meals whose date exactly equals date, preserving
// order.
func FilterByDate(meals []model.Meal, date string) []model.Meal {
	var out []model.Meal
	for _, m := range meals {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return out
}

// reset seeds the store with the sample meals and persists them.
func (s *MealStore) reset(ctx context.Context) []model.Meal {
	meals := model.SampleMeals()
	s.Save(ctx, meals)
	return meals
}
