package usecase

import (
	"context"

	"tastebook/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput carries a new review for an existing recipe.
type CreateReviewInput struct {
	Author      string `json:"author" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=10"`
	Description string `json:"description" validate:"required"`
}

// ReviewPatch carries a partial review update. Nil fields keep the stored value.
type ReviewPatch struct {
	ID          uuid.UUID `json:"id" validate:"required"`
	Rating      *int      `json:"rating"`
	Description *string   `json:"description"`
}

// ReviewUsecase defines the catalog operations on reviews.
type ReviewUsecase interface {
	// GetReview retrieves a single review by id.
	GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ListReviewsByRecipe retrieves all reviews attached to a recipe,
	// read-through cached per recipe.
	ListReviewsByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entity.Review, error)

	// ListReviewsByAuthor retrieves all reviews written by a reviewer,
	// read-through cached per reviewer.
	ListReviewsByAuthor(ctx context.Context, author string) ([]*entity.Review, error)

	// CreateReview attaches a new review to a recipe and returns the parent
	// recipe with its refreshed derived rating. Authors cannot review their
	// own recipes.
	CreateReview(ctx context.Context, recipeID uuid.UUID, input *CreateReviewInput) (*entity.Recipe, error)

	// UpdateReview merges a partial update onto the stored review and returns
	// the persisted result.
	UpdateReview(ctx context.Context, patch *ReviewPatch) (*entity.Review, error)

	// DeleteReview removes a review by id, returning the deleted review.
	DeleteReview(ctx context.Context, id uuid.UUID) (*entity.Review, error)
}
