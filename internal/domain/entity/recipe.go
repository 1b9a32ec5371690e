// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is the aggregate root of the catalog. It owns its ingredients,
// steps and reviews: they are created, persisted and deleted together
// with the recipe.
type Recipe struct {
	ID               uuid.UUID     // The unique identifier, assigned on first persist.
	Name             string        // The recipe name. Never empty after a successful create or patch.
	MinutesToMake    int           // Total preparation time in minutes, at least 1.
	DifficultyRating int           // Difficulty on a 0-10 scale.
	Author           string        // Username of the recipe author.
	Ingredients      []*Ingredient // Ordered ingredient list, at least one entry.
	Steps            []*Step       // Ordered step list, at least one entry.
	Reviews          []*Review     // Reviews attached to this recipe. May be empty.
	ReviewRating     *int          // Derived average review rating. Nil when there are no reviews. Never persisted.
	CreatedAt        time.Time     // Timestamp of when this recipe was created.
	UpdatedAt        time.Time     // Timestamp of the last modification.
}

// Ingredient is owned by exactly one recipe.
type Ingredient struct {
	ID     uuid.UUID // The unique identifier, assigned on first persist. uuid.Nil marks a not-yet-persisted item.
	Name   string    // Ingredient name, never empty.
	Amount string    // Free-text quantity, e.g. "1 tsp". Never empty.
	State  string    // Optional free-text state, e.g. "dry" or "melted".
}

// Step is owned by exactly one recipe. Step numbers are positive but
// neither uniqueness nor contiguity is enforced.
type Step struct {
	ID          uuid.UUID // The unique identifier, assigned on first persist. uuid.Nil marks a not-yet-persisted item.
	StepNumber  int       // 1-based ordering hint.
	Description string    // What to do in this step, never empty.
}

// RecalculateRating recomputes the derived average review rating from the
// currently loaded review set. The average is the integer-truncated mean of
// all ratings; a recipe without reviews has no rating at all rather than a
// rating of zero.
//
// The persistence layer calls this on every aggregate load, so the value a
// caller observes always reflects the stored review set.
func (r *Recipe) RecalculateRating() {
	if len(r.Reviews) == 0 {
		r.ReviewRating = nil

		return
	}

	sum := 0
	for _, review := range r.Reviews {
		sum += review.Rating
	}
	avg := sum / len(r.Reviews)
	r.ReviewRating = &avg
}
