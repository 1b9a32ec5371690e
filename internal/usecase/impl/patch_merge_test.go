package impl

import (
	"testing"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func storedRecipe() *entity.Recipe {
	return &entity.Recipe{
		ID:               uuid.New(),
		Name:             "Beef Stew",
		MinutesToMake:    90,
		DifficultyRating: 4,
		Author:           "alice",
		Ingredients: []*entity.Ingredient{
			{ID: uuid.New(), Name: "Beef", Amount: "500g", State: "cubed"},
			{ID: uuid.New(), Name: "Carrot", Amount: "2"},
		},
		Steps: []*entity.Step{
			{ID: uuid.New(), StepNumber: 1, Description: "Brown the beef"},
			{ID: uuid.New(), StepNumber: 2, Description: "Simmer"},
		},
	}
}

func TestMergeRecipePatch_NilFieldsKeepStoredValues(t *testing.T) {
	stored := storedRecipe()
	patch := &usecase.RecipePatch{
		ID:   stored.ID,
		Name: strPtr("Rich Beef Stew"),
	}

	require.NoError(t, mergeRecipePatch(stored, patch))

	assert.Equal(t, "Rich Beef Stew", stored.Name)
	assert.Equal(t, 90, stored.MinutesToMake)
	assert.Equal(t, 4, stored.DifficultyRating)
	assert.Equal(t, "alice", stored.Author)
	assert.Len(t, stored.Ingredients, 2)
	assert.Len(t, stored.Steps, 2)
}

func TestMergeRecipePatch_EmptyPatchIsIdempotent(t *testing.T) {
	stored := storedRecipe()
	before := *stored
	patch := &usecase.RecipePatch{ID: stored.ID}

	require.NoError(t, mergeRecipePatch(stored, patch))

	assert.Equal(t, before.Name, stored.Name)
	assert.Equal(t, before.MinutesToMake, stored.MinutesToMake)
	assert.Equal(t, before.DifficultyRating, stored.DifficultyRating)
	assert.Len(t, stored.Ingredients, 2)
	assert.Len(t, stored.Steps, 2)
}

func TestMergeRecipePatch_MergesNestedItemByID(t *testing.T) {
	stored := storedRecipe()
	patch := &usecase.RecipePatch{
		ID: stored.ID,
		Ingredients: []*usecase.IngredientPatch{
			{ID: stored.Ingredients[0].ID, Amount: strPtr("750g")},
		},
		Steps: []*usecase.StepPatch{
			{ID: stored.Steps[1].ID, Description: strPtr("Simmer for two hours")},
		},
	}

	require.NoError(t, mergeRecipePatch(stored, patch))

	assert.Equal(t, "750g", stored.Ingredients[0].Amount)
	assert.Equal(t, "Beef", stored.Ingredients[0].Name)
	assert.Equal(t, "Simmer for two hours", stored.Steps[1].Description)
	assert.Equal(t, 2, stored.Steps[1].StepNumber)
	assert.Len(t, stored.Ingredients, 2)
	assert.Len(t, stored.Steps, 2)
}

func TestMergeRecipePatch_AppendsItemsWithZeroID(t *testing.T) {
	stored := storedRecipe()
	patch := &usecase.RecipePatch{
		ID: stored.ID,
		Ingredients: []*usecase.IngredientPatch{
			{Name: strPtr("Onion"), Amount: strPtr("1"), State: strPtr("diced")},
		},
		Steps: []*usecase.StepPatch{
			{StepNumber: intPtr(3), Description: strPtr("Season to taste")},
		},
	}

	require.NoError(t, mergeRecipePatch(stored, patch))

	require.Len(t, stored.Ingredients, 3)
	assert.Equal(t, "Onion", stored.Ingredients[2].Name)
	assert.Equal(t, "diced", stored.Ingredients[2].State)
	require.Len(t, stored.Steps, 3)
	assert.Equal(t, 3, stored.Steps[2].StepNumber)
}

func TestMergeRecipePatch_UnknownNestedIDIsIgnored(t *testing.T) {
	stored := storedRecipe()
	patch := &usecase.RecipePatch{
		ID: stored.ID,
		Ingredients: []*usecase.IngredientPatch{
			{ID: uuid.New(), Name: strPtr("Ghost")},
		},
		Steps: []*usecase.StepPatch{
			{ID: uuid.New(), Description: strPtr("Never happens")},
		},
	}

	require.NoError(t, mergeRecipePatch(stored, patch))

	assert.Len(t, stored.Ingredients, 2)
	assert.Len(t, stored.Steps, 2)
	assert.Equal(t, "Beef", stored.Ingredients[0].Name)
	assert.Equal(t, "Carrot", stored.Ingredients[1].Name)
}

func TestMergeRecipePatch_RejectsDifficultyOutOfRange(t *testing.T) {
	for _, rating := range []int{-1, 11} {
		stored := storedRecipe()
		patch := &usecase.RecipePatch{ID: stored.ID, DifficultyRating: intPtr(rating)}

		err := mergeRecipePatch(stored, patch)

		require.Error(t, err)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrInvalidRecipe.ErrorCode(), appErr.ErrorCode())
	}
}

func TestMergeRecipePatch_RejectsNonPositiveMinutes(t *testing.T) {
	stored := storedRecipe()
	patch := &usecase.RecipePatch{ID: stored.ID, MinutesToMake: intPtr(0)}

	err := mergeRecipePatch(stored, patch)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidRecipe.ErrorCode(), appErr.ErrorCode())
}

func TestMergeRecipePatch_RejectsNewIngredientWithoutName(t *testing.T) {
	stored := storedRecipe()
	patch := &usecase.RecipePatch{
		ID: stored.ID,
		Ingredients: []*usecase.IngredientPatch{
			{Amount: strPtr("1 cup")},
		},
	}

	err := mergeRecipePatch(stored, patch)

	require.Error(t, err)
	assert.Len(t, stored.Ingredients, 2)
}

func TestMergeRecipePatch_RejectsNewStepWithoutDescription(t *testing.T) {
	stored := storedRecipe()
	patch := &usecase.RecipePatch{
		ID: stored.ID,
		Steps: []*usecase.StepPatch{
			{StepNumber: intPtr(3)},
		},
	}

	err := mergeRecipePatch(stored, patch)

	require.Error(t, err)
	assert.Len(t, stored.Steps, 2)
}

func TestMergeRecipePatch_RejectsWhenStoredHasNoIngredients(t *testing.T) {
	stored := storedRecipe()
	stored.Ingredients = nil
	patch := &usecase.RecipePatch{ID: stored.ID, Name: strPtr("Empty")}

	err := mergeRecipePatch(stored, patch)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidRecipe.ErrorCode(), appErr.ErrorCode())
}
