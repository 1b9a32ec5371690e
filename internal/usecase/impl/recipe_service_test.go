package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	mockRepo "tastebook/internal/mocks/repository"
	mockSvc "tastebook/internal/mocks/service"
	"tastebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recipeServiceMocks struct {
	recipeRepo *mockRepo.MockRecipeRepository
	txManager  *mockRepo.MockTransactionManager
	cache      *mockSvc.MockCatalogCache
}

func newTestRecipeService(t *testing.T) (usecase.RecipeUsecase, recipeServiceMocks) {
	m := recipeServiceMocks{
		recipeRepo: mockRepo.NewMockRecipeRepository(t),
		txManager:  mockRepo.NewMockTransactionManager(t),
		cache:      mockSvc.NewMockCatalogCache(t),
	}
	service := NewRecipeService(RecipeServiceParams{
		RecipeRepo: m.recipeRepo,
		TxManager:  m.txManager,
		Cache:      m.cache,
		Logger:     newTestLogger(),
	})

	return service, m
}

func TestRecipeService_CreateRecipe_Success(t *testing.T) {
	service, m := newTestRecipeService(t)

	ctx := context.Background()
	assignedID := uuid.New()
	input := &usecase.CreateRecipeInput{
		Name:             "Pancakes",
		MinutesToMake:    20,
		DifficultyRating: 2,
		Author:           "alice",
		Ingredients:      []*usecase.IngredientInput{{Name: "Flour", Amount: "200g"}},
		Steps:            []*usecase.StepInput{{StepNumber: 1, Description: "Mix and fry"}},
	}

	m.recipeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Recipe")).
		Run(func(ctx context.Context, recipe *entity.Recipe) {
			recipe.ID = assignedID
		}).
		Return(nil)

	m.cache.EXPECT().
		RecipeChanged(assignedID, "alice").
		Return()

	fresh := &entity.Recipe{ID: assignedID, Name: "Pancakes", Author: "alice"}
	m.recipeRepo.EXPECT().
		FindByID(ctx, assignedID).
		Return(fresh, nil)

	m.cache.EXPECT().
		StoreRecipe(fresh).
		Return()

	recipe, err := service.CreateRecipe(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, fresh, recipe)
}

func TestRecipeService_CreateRecipe_RepositoryError(t *testing.T) {
	service, m := newTestRecipeService(t)

	ctx := context.Background()
	input := &usecase.CreateRecipeInput{
		Name:          "Pancakes",
		MinutesToMake: 20,
		Author:        "alice",
		Ingredients:   []*usecase.IngredientInput{{Name: "Flour", Amount: "200g"}},
		Steps:         []*usecase.StepInput{{StepNumber: 1, Description: "Mix and fry"}},
	}

	m.recipeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Recipe")).
		Return(errors.New("db error"))

	recipe, err := service.CreateRecipe(ctx, input)
	assert.Error(t, err)
	assert.Nil(t, recipe)
}

func TestRecipeService_GetRecipe_CacheHit(t *testing.T) {
	service, m := newTestRecipeService(t)

	ctx := context.Background()
	id := uuid.New()
	cached := &entity.Recipe{ID: id, Name: "Pancakes"}

	m.cache.EXPECT().
		Recipe(id).
		Return(cached, true)

	recipe, err := service.GetRecipe(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, cached, recipe)
	m.recipeRepo.AssertNotCalled(t, "FindByID", ctx, id)
}

func TestRecipeService_GetRecipe_CacheMissLoadsAndStores(t *testing.T) {
	service, m := newTestRecipeService(t)

	ctx := context.Background()
	id := uuid.New()
	loaded := &entity.Recipe{ID: id, Name: "Pancakes"}

	m.cache.EXPECT().
		Recipe(id).
		Return(nil, false)

	m.recipeRepo.EXPECT().
		FindByID(ctx, id).
		Return(loaded, nil)

	m.cache.EXPECT().
		StoreRecipe(loaded).
		Return()

	recipe, err := service.GetRecipe(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, loaded, recipe)
}

func TestRecipeService_GetRecipe_NotFound(t *testing.T) {
	service, m := newTestRecipeService(t)

	ctx := context.Background()
	id := uuid.New()

	m.cache.EXPECT().
		Recipe(id).
		Return(nil, false)

	m.recipeRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrRecipeNotFound)

	recipe, err := service.GetRecipe(ctx, id)
	assert.Error(t, err)
	assert.Nil(t, recipe)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrRecipeNotFound.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), id.String())
}

func TestRecipeService_ListRecipes_NoFilterUsesBulkCache(t *testing.T) {
	service, m := newTestRecipeService(t)

	ctx := context.Background()
	listing := []*entity.Recipe{{ID: uuid.New()}}

	m.cache.EXPECT().
		AllRecipes().
		Return(nil, false)

	m.recipeRepo.EXPECT().
		FindAll(ctx).
		Return(listing, nil)

	m.cache.EXPECT().
		StoreAllRecipes(listing).
		Return()

	recipes, err := service.ListRecipes(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, listing, recipes)
}

func TestRecipeService_ListRecipes_NoFilterCacheHit(t *testing.T) {
	service, m := newTestRecipeService(t)

	ctx := context.Background()
	listing := []*entity.Recipe{{ID: uuid.New()}}

	m.cache.EXPECT().
		AllRecipes().
		Return(listing, true)

	recipes, err := service.ListRecipes(ctx, &usecase.RecipeFilter{})
	require.NoError(t, err)
	assert.Equal(t, listing, recipes)
	m.recipeRepo.AssertNotCalled(t, "FindAll", ctx)
}

func TestRecipeService_ListRecipes_ByName(t *testing.T) {
	service, m := newTestRecipeService(t)

	ctx := context.Background()
	listing := []*entity.Recipe{{ID: uuid.New(), Name: "Beef Stew"}}

	m.recipeRepo.EXPECT().
		FindByNameContains(ctx, "stew").
		Return(listing, nil)

	recipes, err := service.ListRecipes(ctx, &usecase.RecipeFilter{Name: strPtr("stew")})
	require.NoError(t, err)
	assert.Equal(t, listing, recipes)
}

func TestRecipeService_ListRecipes_ByNameAndMaxDifficulty(t *testing.T) {
	service, m := newTestRecipeService(t)

	ctx := context.Background()
	listing := []*entity.Recipe{{ID: uuid.New()}}

	m.recipeRepo.EXPECT().
		FindByNameContainsAndMaxDifficulty(ctx, "stew", 5).
		Return(listing, nil)

	recipes, err := service.ListRecipes(ctx, &usecase.RecipeFilter{
		Name:                strPtr("stew"),
		MaxDifficultyRating: intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, listing, recipes)
}

func TestRecipeService_ListRecipes_ByAuthorUsesAuthorCache(t *testing.T) {
	service, m := newTestRecipeService(t)

	ctx := context.Background()
	listing := []*entity.Recipe{{ID: uuid.New(), Author: "alice"}}

	m.cache.EXPECT().
		AuthorRecipes("alice").
		Return(nil, false)

	m.recipeRepo.EXPECT().
		FindByAuthor(ctx, "alice").
		Return(listing, nil)

	m.cache.EXPECT().
		StoreAuthorRecipes("alice", listing).
		Return()

	recipes, err := service.ListRecipes(ctx, &usecase.RecipeFilter{Author: strPtr("alice")})
	require.NoError(t, err)
	assert.Equal(t, listing, recipes)
}

func TestRecipeService_ListRecipes_ByMinimumReviewRating(t *testing.T) {
	service, m := newTestRecipeService(t)

	ctx := context.Background()
	listing := []*entity.Recipe{{ID: uuid.New()}}

	m.recipeRepo.EXPECT().
		FindByMinimumReviewRating(ctx, 7).
		Return(listing, nil)

	recipes, err := service.ListRecipes(ctx, &usecase.RecipeFilter{MinReviewRating: intPtr(7)})
	require.NoError(t, err)
	assert.Equal(t, listing, recipes)
}

func TestRecipeService_ListRecipes_MinimumReviewRatingOutOfRange(t *testing.T) {
	service, _ := newTestRecipeService(t)

	ctx := context.Background()

	for _, rating := range []int{-1, 11} {
		recipes, err := service.ListRecipes(ctx, &usecase.RecipeFilter{MinReviewRating: intPtr(rating)})
		assert.Error(t, err)
		assert.Nil(t, recipes)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrInvalidQueryFilter.ErrorCode(), appErr.ErrorCode())
	}
}

func TestRecipeService_ListRecipes_IllegalCombinations(t *testing.T) {
	service, _ := newTestRecipeService(t)

	ctx := context.Background()
	illegal := []*usecase.RecipeFilter{
		{Name: strPtr("stew"), Author: strPtr("alice")},
		{Author: strPtr("alice"), MaxDifficultyRating: intPtr(3)},
		{MaxDifficultyRating: intPtr(3)},
		{Name: strPtr("stew"), MinReviewRating: intPtr(5)},
		{Author: strPtr("alice"), MinReviewRating: intPtr(5)},
		{Name: strPtr("stew"), Author: strPtr("alice"), MaxDifficultyRating: intPtr(3), MinReviewRating: intPtr(5)},
	}

	for _, filter := range illegal {
		recipes, err := service.ListRecipes(ctx, filter)
		assert.Error(t, err)
		assert.Nil(t, recipes)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrInvalidQueryFilter.ErrorCode(), appErr.ErrorCode())
	}
}

func TestRecipeService_PatchRecipe_Success(t *testing.T) {
	service, m := newTestRecipeService(t)

	ctx := context.Background()
	stored := storedRecipe()
	patch := &usecase.RecipePatch{ID: stored.ID, Name: strPtr("Renamed Stew")}

	txRecipeRepo := mockRepo.NewMockRecipeRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRecipeRepository().Return(txRecipeRepo)

	txRecipeRepo.EXPECT().
		FindByID(ctx, stored.ID).
		Return(stored, nil)

	txRecipeRepo.EXPECT().
		Save(ctx, stored).
		Return(nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	m.cache.EXPECT().
		RecipeChanged(stored.ID, "alice").
		Return()

	fresh := &entity.Recipe{ID: stored.ID, Name: "Renamed Stew", Author: "alice"}
	m.recipeRepo.EXPECT().
		FindByID(ctx, stored.ID).
		Return(fresh, nil)

	m.cache.EXPECT().
		StoreRecipe(fresh).
		Return()

	recipe, err := service.PatchRecipe(ctx, patch)
	require.NoError(t, err)
	assert.Equal(t, fresh, recipe)
	assert.Equal(t, "Renamed Stew", stored.Name)
}

func TestRecipeService_PatchRecipe_NotFound(t *testing.T) {
	service, m := newTestRecipeService(t)

	ctx := context.Background()
	patch := &usecase.RecipePatch{ID: uuid.New(), Name: strPtr("Ghost")}

	txRecipeRepo := mockRepo.NewMockRecipeRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRecipeRepository().Return(txRecipeRepo)

	txRecipeRepo.EXPECT().
		FindByID(ctx, patch.ID).
		Return(nil, repository.ErrRecipeNotFound)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	recipe, err := service.PatchRecipe(ctx, patch)
	assert.Error(t, err)
	assert.Nil(t, recipe)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrRecipeNotFound.ErrorCode(), appErr.ErrorCode())
	m.cache.AssertNotCalled(t, "RecipeChanged", patch.ID, mock.Anything)
}

func TestRecipeService_PatchRecipe_InvalidPatchRollsBack(t *testing.T) {
	service, m := newTestRecipeService(t)

	ctx := context.Background()
	stored := storedRecipe()
	patch := &usecase.RecipePatch{ID: stored.ID, DifficultyRating: intPtr(42)}

	txRecipeRepo := mockRepo.NewMockRecipeRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRecipeRepository().Return(txRecipeRepo)

	txRecipeRepo.EXPECT().
		FindByID(ctx, stored.ID).
		Return(stored, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	recipe, err := service.PatchRecipe(ctx, patch)
	assert.Error(t, err)
	assert.Nil(t, recipe)
	txRecipeRepo.AssertNotCalled(t, "Save", ctx, stored)
	m.cache.AssertNotCalled(t, "RecipeChanged", stored.ID, stored.Author)
}

func TestRecipeService_DeleteRecipe_Success(t *testing.T) {
	service, m := newTestRecipeService(t)

	ctx := context.Background()
	stored := storedRecipe()

	m.recipeRepo.EXPECT().
		FindByID(ctx, stored.ID).
		Return(stored, nil)

	m.recipeRepo.EXPECT().
		Delete(ctx, stored.ID).
		Return(nil)

	m.cache.EXPECT().
		RecipeChanged(stored.ID, "alice").
		Return()

	recipe, err := service.DeleteRecipe(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, recipe)
}

func TestRecipeService_DeleteRecipe_NotFound(t *testing.T) {
	service, m := newTestRecipeService(t)

	ctx := context.Background()
	id := uuid.New()

	m.recipeRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrRecipeNotFound)

	recipe, err := service.DeleteRecipe(ctx, id)
	assert.Error(t, err)
	assert.Nil(t, recipe)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrRecipeNotFound.ErrorCode(), appErr.ErrorCode())
	m.recipeRepo.AssertNotCalled(t, "Delete", ctx, id)
}
