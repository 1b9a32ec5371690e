package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a rating and write-up a user attaches to someone else's recipe.
// It is owned by exactly one recipe and is deleted together with it.
type Review struct {
	ID          uuid.UUID // The unique identifier, assigned on first persist.
	RecipeID    uuid.UUID // The recipe this review belongs to.
	Author      string    // Username of the reviewer. Must differ from the recipe author.
	Rating      int       // Rating on a 1-10 scale.
	Description string    // The review text, never empty.
	CreatedAt   time.Time // Timestamp of when this review was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
