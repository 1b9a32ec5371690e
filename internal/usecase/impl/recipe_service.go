// Package impl contains the concrete use case services orchestrating the
// domain repositories and the catalog cache.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/domain/service"
	"tastebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type recipeService struct {
	recipeRepo repository.RecipeRepository
	txManager  repository.TransactionManager
	cache      service.CatalogCache
	logger     *slog.Logger
	writeLocks *keyedMutex
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	RecipeRepo repository.RecipeRepository
	TxManager  repository.TransactionManager
	Cache      service.CatalogCache
	Logger     *slog.Logger
}

// NewRecipeService creates a new recipe catalog service instance
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		recipeRepo: params.RecipeRepo,
		txManager:  params.TxManager,
		cache:      params.Cache,
		logger:     params.Logger,
		writeLocks: newKeyedMutex(),
	}
}

// CreateRecipe persists a new recipe aggregate and returns the freshly loaded
// result with assigned identities and derived rating.
func (s *recipeService) CreateRecipe(ctx context.Context, input *usecase.CreateRecipeInput) (*entity.Recipe, error) {
	recipe := &entity.Recipe{
		Name:             input.Name,
		MinutesToMake:    input.MinutesToMake,
		DifficultyRating: input.DifficultyRating,
		Author:           input.Author,
	}
	for _, ingredient := range input.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, &entity.Ingredient{
			Name:   ingredient.Name,
			Amount: ingredient.Amount,
			State:  ingredient.State,
		})
	}
	for _, step := range input.Steps {
		recipe.Steps = append(recipe.Steps, &entity.Step{
			StepNumber:  step.StepNumber,
			Description: step.Description,
		})
	}

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, errors.Wrap(err, "failed to create recipe")
	}
	s.logger.Info("recipe created", "recipeID", recipe.ID, "author", recipe.Author)

	s.cache.RecipeChanged(recipe.ID, recipe.Author)

	fresh, err := s.recipeRepo.FindByID(ctx, recipe.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload created recipe")
	}
	s.cache.StoreRecipe(fresh)

	return fresh, nil
}

// GetRecipe retrieves a recipe by id through the recipe cache partition.
func (s *recipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	if recipe, ok := s.cache.Recipe(id); ok {
		return recipe, nil
	}

	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound.WithDetails(fmt.Sprintf("recipe ID %s", id))
		}

		return nil, errors.Wrap(err, "failed to find recipe by ID")
	}
	s.cache.StoreRecipe(recipe)

	return recipe, nil
}

// ListRecipes dispatches one of the five legal filter combinations. Every
// other combination is a client error, never a best-effort interpretation.
func (s *recipeService) ListRecipes(ctx context.Context, filter *usecase.RecipeFilter) ([]*entity.Recipe, error) {
	if filter == nil {
		filter = &usecase.RecipeFilter{}
	}

	switch {
	case filter.Name == nil && filter.Author == nil && filter.MaxDifficultyRating == nil && filter.MinReviewRating == nil:
		return s.listAll(ctx)

	case filter.Name != nil && filter.Author == nil && filter.MaxDifficultyRating == nil && filter.MinReviewRating == nil:
		recipes, err := s.recipeRepo.FindByNameContains(ctx, *filter.Name)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find recipes by name")
		}

		return recipes, nil

	case filter.Name != nil && filter.Author == nil && filter.MaxDifficultyRating != nil && filter.MinReviewRating == nil:
		recipes, err := s.recipeRepo.FindByNameContainsAndMaxDifficulty(ctx, *filter.Name, *filter.MaxDifficultyRating)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find recipes by name and maximum difficulty")
		}

		return recipes, nil

	case filter.Name == nil && filter.Author != nil && filter.MaxDifficultyRating == nil && filter.MinReviewRating == nil:
		return s.listByAuthor(ctx, *filter.Author)

	case filter.Name == nil && filter.Author == nil && filter.MaxDifficultyRating == nil && filter.MinReviewRating != nil:
		if *filter.MinReviewRating < 0 || *filter.MinReviewRating > 10 {
			return nil, domainerrors.ErrInvalidQueryFilter.WithDetails("minimum review rating must be within the range 0-10")
		}
		recipes, err := s.recipeRepo.FindByMinimumReviewRating(ctx, *filter.MinReviewRating)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find recipes by minimum review rating")
		}

		return recipes, nil

	default:
		return nil, domainerrors.ErrInvalidQueryFilter
	}
}

func (s *recipeService) listAll(ctx context.Context) ([]*entity.Recipe, error) {
	if recipes, ok := s.cache.AllRecipes(); ok {
		return recipes, nil
	}

	recipes, err := s.recipeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all recipes")
	}
	s.cache.StoreAllRecipes(recipes)

	return recipes, nil
}

func (s *recipeService) listByAuthor(ctx context.Context, author string) ([]*entity.Recipe, error) {
	if recipes, ok := s.cache.AuthorRecipes(author); ok {
		return recipes, nil
	}

	recipes, err := s.recipeRepo.FindByAuthor(ctx, author)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by author")
	}
	s.cache.StoreAuthorRecipes(author, recipes)

	return recipes, nil
}

// PatchRecipe merges a partial update onto the stored aggregate inside a
// transaction, holding the per-recipe write lock for the whole
// load-merge-persist-invalidate sequence.
func (s *recipeService) PatchRecipe(ctx context.Context, patch *usecase.RecipePatch) (*entity.Recipe, error) {
	s.writeLocks.Lock(patch.ID)
	defer s.writeLocks.Unlock(patch.ID)

	var author string
	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		recipeRepo := txRepos.NewRecipeRepository()

		stored, err := recipeRepo.FindByID(ctx, patch.ID)
		if err != nil {
			if errors.Is(err, repository.ErrRecipeNotFound) {
				return domainerrors.ErrRecipeNotFound.WithDetails(fmt.Sprintf("recipe ID %s", patch.ID))
			}

			return errors.Wrap(err, "failed to find recipe by ID")
		}
		author = stored.Author

		if err := mergeRecipePatch(stored, patch); err != nil {
			return err
		}

		return errors.Wrap(recipeRepo.Save(ctx, stored), "failed to save patched recipe")
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("recipe patched", "recipeID", patch.ID)

	// Invalidation is not skippable once the aggregate is persisted, even if
	// the reload below fails.
	s.cache.RecipeChanged(patch.ID, author)

	fresh, err := s.recipeRepo.FindByID(ctx, patch.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload patched recipe")
	}
	s.cache.StoreRecipe(fresh)

	return fresh, nil
}

// DeleteRecipe removes the recipe aggregate and all owned items, returning
// the snapshot that was deleted.
func (s *recipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	s.writeLocks.Lock(id)
	defer s.writeLocks.Unlock(id)

	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound.WithDetails(fmt.Sprintf("recipe ID %s, could not delete", id))
		}

		return nil, errors.Wrap(err, "failed to find recipe by ID")
	}

	if err := s.recipeRepo.Delete(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to delete recipe")
	}
	s.logger.Info("recipe deleted", "recipeID", id, "author", recipe.Author)

	s.cache.RecipeChanged(id, recipe.Author)

	return recipe, nil
}
