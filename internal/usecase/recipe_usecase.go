// Package usecase defines the application's use case interfaces and the
// input/output DTOs exchanged with the delivery layer.
package usecase

import (
	"context"

	"tastebook/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRecipeInput carries a complete new recipe. A recipe is born with at
// least one ingredient and one step.
type CreateRecipeInput struct {
	Name             string             `json:"name" validate:"required"`
	MinutesToMake    int                `json:"minutesToMake" validate:"required,min=1"`
	DifficultyRating int                `json:"difficultyRating" validate:"min=0,max=10"`
	Author           string             `json:"author" validate:"required"`
	Ingredients      []*IngredientInput `json:"ingredients" validate:"required,min=1,dive"`
	Steps            []*StepInput       `json:"steps" validate:"required,min=1,dive"`
}

// IngredientInput carries one new ingredient.
type IngredientInput struct {
	Name   string `json:"name" validate:"required"`
	Amount string `json:"amount" validate:"required"`
	State  string `json:"state"`
}

// StepInput carries one new step.
type StepInput struct {
	StepNumber  int    `json:"stepNumber" validate:"required,min=1"`
	Description string `json:"description" validate:"required"`
}

// RecipePatch carries a partial recipe update. Nil fields keep the stored
// value. Nested items with a zero ID are appended; items whose ID matches a
// stored sibling are merged field-by-field.
type RecipePatch struct {
	ID               uuid.UUID          `json:"id" validate:"required"`
	Name             *string            `json:"name"`
	MinutesToMake    *int               `json:"minutesToMake"`
	DifficultyRating *int               `json:"difficultyRating"`
	Ingredients      []*IngredientPatch `json:"ingredients"`
	Steps            []*StepPatch       `json:"steps"`
}

// IngredientPatch carries a partial update of one ingredient.
type IngredientPatch struct {
	ID     uuid.UUID `json:"id"`
	Name   *string   `json:"name"`
	Amount *string   `json:"amount"`
	State  *string   `json:"state"`
}

// StepPatch carries a partial update of one step.
type StepPatch struct {
	ID          uuid.UUID `json:"id"`
	StepNumber  *int      `json:"stepNumber"`
	Description *string   `json:"description"`
}

// RecipeFilter carries the optional list filters. Exactly five combinations
// are legal: no filter, name only, name with maximum difficulty, author only,
// and minimum review rating only.
type RecipeFilter struct {
	Name                *string
	Author              *string
	MaxDifficultyRating *int
	MinReviewRating     *int
}

// RecipeUsecase defines the catalog operations on recipe aggregates.
type RecipeUsecase interface {
	// CreateRecipe persists a new recipe and returns it with assigned identities
	// and its derived review rating.
	CreateRecipe(ctx context.Context, input *CreateRecipeInput) (*entity.Recipe, error)

	// GetRecipe retrieves a recipe aggregate by id, read-through cached.
	GetRecipe(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// ListRecipes retrieves recipes matching one of the five legal filter
	// combinations. Any other combination is rejected.
	ListRecipes(ctx context.Context, filter *RecipeFilter) ([]*entity.Recipe, error)

	// PatchRecipe merges a partial update onto the stored recipe and returns
	// the persisted result.
	PatchRecipe(ctx context.Context, patch *RecipePatch) (*entity.Recipe, error)

	// DeleteRecipe removes a recipe together with its owned ingredients, steps
	// and reviews, returning the deleted aggregate.
	DeleteRecipe(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)
}
