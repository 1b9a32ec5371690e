package repository

import (
	"context"
	"errors"

	"tastebook/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is a domain-specific error returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// FindByID retrieves a single review by its unique ID.
	// Returns ErrReviewNotFound when no such review exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByRecipeID retrieves all reviews attached to a recipe.
	FindByRecipeID(ctx context.Context, recipeID uuid.UUID) ([]*entity.Review, error)

	// FindByAuthor retrieves all reviews written by the given reviewer.
	FindByAuthor(ctx context.Context, author string) ([]*entity.Review, error)

	// Create persists a new review against an existing recipe, assigning its identity.
	Create(ctx context.Context, review *entity.Review) error

	// Update persists the mutable fields (rating, description) of an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review by its ID. Returns ErrReviewNotFound when no
	// such review exists.
	Delete(ctx context.Context, id uuid.UUID) error
}
