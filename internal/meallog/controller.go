// Package meallog coordinates the add/edit/delete lifecycle of meals against
// the store. Each mutation is atomic from the caller's perspective: the
// in-memory collection is updated all-or-nothing and persisted synchronously
// before the call returns.
package meallog

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/nhle/yumyum/internal/model"
	"github.com/nhle/yumyum/internal/store"
)

// sessionState tracks the transient edit session preceding a commit.
type sessionState int

const (
	stateIdle sessionState = iota
	stateEditing
)

// Fields carries the user-supplied values for a meal commit. Numeric values
// are expected to be coerced already (see ParseAmount); an unparsable number
// never fails validation, it becomes zero.
type Fields struct {
	Name     string
	Type     string
	Quantity float64
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}

// Controller owns the in-memory meal collection and the single edit session.
// It is the only component that mutates the store.
type Controller struct {
	store *store.MealStore
	meals []model.Meal

	state  sessionState
	editID string // empty while adding
}

// NewController loads the persisted collection and returns a controller in
// the idle state.
func NewController(ctx context.Context, s *store.MealStore) *Controller {
	return &Controller{
		store: s,
		meals: s.Load(ctx),
	}
}

// Meals returns the current in-memory collection.
func (c *Controller) Meals() []model.Meal {
	return c.meals
}

// MealsForDate returns the meals logged on date, in insertion order.
func (c *Controller) MealsForDate(date string) []model.Meal {
	return store.FilterByDate(c.meals, date)
}

// Editing reports whether an edit session is open, and for which meal id
// (empty for an add session).
func (c *Controller) Editing() (bool, string) {
	return c.state == stateEditing, c.editID
}

// BeginAdd opens a blank edit session for a new meal.
func (c *Controller) BeginAdd() {
	c.state = stateEditing
	c.editID = ""
}

// BeginEdit opens an edit session on an existing meal and returns it for
// pre-populating the form.
func (c *Controller) BeginEdit(id string) (model.Meal, error) {
	for _, m := range c.meals {
		if m.ID == id {
			c.state = stateEditing
			c.editID = id
			return m, nil
		}
	}
	return model.Meal{}, &NotFoundError{ID: id}
}

// Cancel discards the open session without mutating the store.
func (c *Controller) Cancel() {
	c.state = stateIdle
	c.editID = ""
}

// Commit validates fields and applies them: an add session appends a meal
// with a fresh id and the selected date, an edit session replaces every field
// of the existing meal except its id and date. The collection is persisted
// before Commit returns and the session always ends, successful or not on
// the persistence side. Validation failure leaves store and session intact.
func (c *Controller) Commit(ctx context.Context, fields Fields, selectedDate string) (model.Meal, error) {
	if strings.TrimSpace(fields.Name) == "" {
		return model.Meal{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !model.ValidMealType(fields.Type) {
		return model.Meal{}, &ValidationError{Field: "type", Reason: "must be one of " + strings.Join(model.MealTypes, ", ")}
	}

	meal := model.Meal{
		Name:     strings.TrimSpace(fields.Name),
		Type:     fields.Type,
		Quantity: fields.Quantity,
		Calories: fields.Calories,
		Protein:  fields.Protein,
		Carbs:    fields.Carbs,
		Fat:      fields.Fat,
		Fiber:    fields.Fiber,
	}
	meal.Normalize()

	if c.editID == "" {
		meal.ID = uuid.New().String()
		meal.Date = selectedDate
		c.meals = append(c.meals, meal)
	} else {
		idx := -1
		for i, m := range c.meals {
			if m.ID == c.editID {
				idx = i
				break
			}
		}
		if idx < 0 {
			c.Cancel()
			return model.Meal{}, &NotFoundError{ID: c.editID}
		}
		meal.ID = c.meals[idx].ID
		meal.Date = c.meals[idx].Date
		c.meals[idx] = meal
	}

	c.store.Save(ctx, c.meals)
	c.Cancel()
	return meal, nil
}

// Delete removes the meal with the given id. If an edit session is open on
// that meal it ends. Confirmation is the caller's concern.
func (c *Controller) Delete(ctx context.Context, id string) error {
	idx := -1
	for i, m := range c.meals {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &NotFoundError{ID: id}
	}

	c.meals = append(c.meals[:idx], c.meals[idx+1:]...)
	c.store.Save(ctx, c.meals)

	if c.state == stateEditing && c.editID == id {
		c.Cancel()
	}
	return nil
}

// ParseAmount coerces a user-entered numeric field. Unparsable or negative
// input becomes 0; numeric parse failure is never a validation error.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
