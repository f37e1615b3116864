package testutil

import (
	"io"
	"log"
	"testing"

	"github.com/nhle/yumyum/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// NewTestMealStore creates a MealStore backed by an in-memory SQLiteStore
// with logging silenced.
func NewTestMealStore(t *testing.T) *store.MealStore {
	t.Helper()
	return store.NewMealStore(NewTestStore(t), log.New(io.Discard, "", 0))
}
