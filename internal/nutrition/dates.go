package nutrition

import (
	"sort"
	"time"

	"github.com/nhle/yumyum/internal/model"
)

// LastNDays returns the n calendar days ending at ref inclusive, in ascending
// chronological order. Uses calendar arithmetic, so month and year boundaries
// advance correctly.
func LastNDays(ref time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	dates := make([]string, n)
	for i := 0; i < n; i++ {
		dates[i] = model.FormatDay(ref.AddDate(0, 0, i-(n-1)))
	}
	return dates
}

// AllDatesWithMeals returns the distinct dates present in the meal
// collection, ascending, without duplicates.
func AllDatesWithMeals(meals []model.Meal) []string {
	seen := make(map[string]bool, len(meals))
	var dates []string
	for _, m := range meals {
		if !seen[m.Date] {
			seen[m.Date] = true
			dates = append(dates, m.Date)
		}
	}
	sort.Strings(dates)
	return dates
}
