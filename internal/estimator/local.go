package estimator

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// tableEntry pairs an ingredient keyword with per-portion nutrition values.
type tableEntry struct {
	keyword string
	Nutrition
}

// localTable holds ingredient keywords with per-portion nutrition values.
// Matching is by substring, so "grilled chicken breast" hits "chicken".
// Order matters: the first matching entry wins, keeping estimates
// deterministic for lines that mention several known ingredients.
var localTable = []tableEntry{
	{"chicken", Nutrition{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0}},
	{"bread", Nutrition{Calories: 265, Protein: 9, Carbs: 49, Fat: 3.2, Fiber: 2.7}},
	{"rice", Nutrition{Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Fiber: 0.4}},
	{"egg", Nutrition{Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, Fiber: 0}},
	{"olive oil", Nutrition{Calories: 884, Protein: 0, Carbs: 0, Fat: 100, Fiber: 0}},
	{"oat", Nutrition{Calories: 389, Protein: 17, Carbs: 66, Fat: 7, Fiber: 10.6}},
	{"banana", Nutrition{Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, Fiber: 2.6}},
	{"apple", Nutrition{Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, Fiber: 2.4}},
	{"yogurt", Nutrition{Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4, Fiber: 0}},
	{"berries", Nutrition{Calories: 57, Protein: 0.7, Carbs: 14, Fat: 0.3, Fiber: 2.4}},
}

// baseEstimate is returned when no ingredient line matches the table.
var baseEstimate = Nutrition{Calories: 250, Protein: 15, Carbs: 30, Fat: 8, Fiber: 4}

// lineRe extracts an optional quantity with an optional unit, then the
// ingredient text, e.g. "2 cups rice" -> 2, "rice".
var lineRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:cup|tbsp|oz|slice|medium|large|small)?\s*(.*)`)

// EstimateLocally computes a deterministic estimate from the fallback table.
// Each non-empty input line contributes quantity * 0.5 portions of the first
// matching table entry; lines with no match contribute nothing. When nothing
// matches at all, a base estimate is returned. Amounts are rounded to one
// decimal place.
func EstimateLocally(ingredients string) Nutrition {
	var total Nutrition

	for _, line := range strings.Split(strings.ToLower(ingredients), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		quantity := 1.0
		name := line
		if m := lineRe.FindStringSubmatch(line); m != nil {
			if q, err := strconv.ParseFloat(m[1], 64); err == nil && q > 0 {
				quantity = q
			}
			name = strings.TrimSpace(m[2])
		}

		entry, ok := lookup(name)
		if !ok {
			continue
		}

		// Rough portion adjustment: table values describe a full
		// reference serving.
		mult := quantity * 0.5
		total.Calories += entry.Calories * mult
		total.Protein += entry.Protein * mult
		total.Carbs += entry.Carbs * mult
		total.Fat += entry.Fat * mult
		total.Fiber += entry.Fiber * mult
	}

	if total.Calories == 0 {
		total = baseEstimate
	}

	total.Calories = round1(total.Calories)
	total.Protein = round1(total.Protein)
	total.Carbs = round1(total.Carbs)
	total.Fat = round1(total.Fat)
	total.Fiber = round1(total.Fiber)
	return total
}

// lookup finds the first table entry whose keyword occurs in name.
func lookup(name string) (Nutrition, bool) {
	for _, entry := range localTable {
		if strings.Contains(name, entry.keyword) {
			return entry.Nutrition, true
		}
	}
	return Nutrition{}, false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
