package impl

import (
	"fmt"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/usecase"

	"github.com/google/uuid"
)

// mergeRecipePatch merges a partial update onto a loaded recipe aggregate.
// Scalar fields follow the present-value-wins rule: a nil patch field keeps
// the stored value. Nested ingredients and steps merge by identity: a zero ID
// appends a new item, a matching ID merges field-by-field, and an ID with no
// stored counterpart is ignored. Reviews are never touched here; they have
// their own lifecycle operations.
//
// The merge mutates only the loaded copy. On error the caller must not
// persist, so the stored aggregate is never partially updated.
func mergeRecipePatch(stored *entity.Recipe, patch *usecase.RecipePatch) error {
	if patch.Name != nil && *patch.Name != "" {
		stored.Name = *patch.Name
	}
	if patch.MinutesToMake != nil {
		if *patch.MinutesToMake < 1 {
			return domainerrors.ErrInvalidRecipe.WithDetails("minutesToMake must be at least 1")
		}
		stored.MinutesToMake = *patch.MinutesToMake
	}
	if patch.DifficultyRating != nil {
		if *patch.DifficultyRating < 0 || *patch.DifficultyRating > 10 {
			return domainerrors.ErrInvalidRecipe.WithDetails(
				fmt.Sprintf("difficultyRating must be between 0 and 10, got %d", *patch.DifficultyRating))
		}
		stored.DifficultyRating = *patch.DifficultyRating
	}

	if err := mergeIngredients(stored, patch.Ingredients); err != nil {
		return err
	}
	if err := mergeSteps(stored, patch.Steps); err != nil {
		return err
	}

	if len(stored.Ingredients) == 0 {
		return domainerrors.ErrInvalidRecipe.WithDetails("a recipe must have at least one ingredient")
	}
	if len(stored.Steps) == 0 {
		return domainerrors.ErrInvalidRecipe.WithDetails("a recipe must have at least one step")
	}

	return nil
}

func mergeIngredients(stored *entity.Recipe, patches []*usecase.IngredientPatch) error {
	byID := make(map[uuid.UUID]*entity.Ingredient, len(stored.Ingredients))
	for _, ingredient := range stored.Ingredients {
		byID[ingredient.ID] = ingredient
	}

	for _, patch := range patches {
		if patch.ID == uuid.Nil {
			added, err := newIngredient(patch)
			if err != nil {
				return err
			}
			stored.Ingredients = append(stored.Ingredients, added)

			continue
		}

		existing, ok := byID[patch.ID]
		if !ok {
			// Unknown identity: skipped rather than rejected, matching the
			// source system. See DESIGN.md.
			continue
		}
		if patch.Name != nil {
			if *patch.Name == "" {
				return domainerrors.ErrInvalidRecipe.WithDetails("ingredient name must not be empty")
			}
			existing.Name = *patch.Name
		}
		if patch.Amount != nil {
			if *patch.Amount == "" {
				return domainerrors.ErrInvalidRecipe.WithDetails("ingredient amount must not be empty")
			}
			existing.Amount = *patch.Amount
		}
		if patch.State != nil {
			existing.State = *patch.State
		}
	}

	return nil
}

func newIngredient(patch *usecase.IngredientPatch) (*entity.Ingredient, error) {
	if patch.Name == nil || *patch.Name == "" {
		return nil, domainerrors.ErrInvalidRecipe.WithDetails("a new ingredient requires a name")
	}
	if patch.Amount == nil || *patch.Amount == "" {
		return nil, domainerrors.ErrInvalidRecipe.WithDetails("a new ingredient requires an amount")
	}

	added := &entity.Ingredient{Name: *patch.Name, Amount: *patch.Amount}
	if patch.State != nil {
		added.State = *patch.State
	}

	return added, nil
}

func mergeSteps(stored *entity.Recipe, patches []*usecase.StepPatch) error {
	byID := make(map[uuid.UUID]*entity.Step, len(stored.Steps))
	for _, step := range stored.Steps {
		byID[step.ID] = step
	}

	for _, patch := range patches {
		if patch.ID == uuid.Nil {
			added, err := newStep(patch)
			if err != nil {
				return err
			}
			stored.Steps = append(stored.Steps, added)

			continue
		}

		existing, ok := byID[patch.ID]
		if !ok {
			continue
		}
		if patch.StepNumber != nil {
			if *patch.StepNumber < 1 {
				return domainerrors.ErrInvalidRecipe.WithDetails("stepNumber must be at least 1")
			}
			existing.StepNumber = *patch.StepNumber
		}
		if patch.Description != nil {
			if *patch.Description == "" {
				return domainerrors.ErrInvalidRecipe.WithDetails("step description must not be empty")
			}
			existing.Description = *patch.Description
		}
	}

	return nil
}

func newStep(patch *usecase.StepPatch) (*entity.Step, error) {
	if patch.StepNumber == nil || *patch.StepNumber < 1 {
		return nil, domainerrors.ErrInvalidRecipe.WithDetails("a new step requires a step number of at least 1")
	}
	if patch.Description == nil || *patch.Description == "" {
		return nil, domainerrors.ErrInvalidRecipe.WithDetails("a new step requires a description")
	}

	return &entity.Step{StepNumber: *patch.StepNumber, Description: *patch.Description}, nil
}
