package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tastebook/config"
	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/domain/service"
	"tastebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	recipeRepo repository.RecipeRepository
	txManager  repository.TransactionManager
	cache      service.CatalogCache
	config     *config.Config
	logger     *slog.Logger
	writeLocks *keyedMutex
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	RecipeRepo repository.RecipeRepository
	TxManager  repository.TransactionManager
	Cache      service.CatalogCache
	Config     *config.Config
	Logger     *slog.Logger
}

// NewReviewService creates a new review catalog service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		recipeRepo: params.RecipeRepo,
		txManager:  params.TxManager,
		cache:      params.Cache,
		config:     params.Config,
		logger:     params.Logger,
		writeLocks: newKeyedMutex(),
	}
}

// GetReview retrieves a single review by id.
func (s *reviewService) GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound.WithDetails(fmt.Sprintf("review ID %s", id))
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return review, nil
}

// ListReviewsByRecipe retrieves the reviews of a recipe through the
// recipe-reviews cache partition. The parent recipe must exist.
func (s *reviewService) ListReviewsByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entity.Review, error) {
	if reviews, ok := s.cache.RecipeReviews(recipeID); ok {
		return reviews, nil
	}

	recipe, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound.WithDetails(fmt.Sprintf("recipe ID %s", recipeID))
		}

		return nil, errors.Wrap(err, "failed to find recipe by ID")
	}
	s.cache.StoreRecipeReviews(recipeID, recipe.Reviews)

	return recipe.Reviews, nil
}

// ListReviewsByAuthor retrieves all reviews by one reviewer through the
// author-reviews cache partition.
func (s *reviewService) ListReviewsByAuthor(ctx context.Context, author string) ([]*entity.Review, error) {
	if reviews, ok := s.cache.AuthorReviews(author); ok {
		return reviews, nil
	}

	reviews, err := s.reviewRepo.FindByAuthor(ctx, author)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by author")
	}
	s.cache.StoreAuthorReviews(author, reviews)

	return reviews, nil
}

// CreateReview attaches a new review to a recipe. The no-self-review rule is
// checked against the stored recipe inside the same transaction and write
// lock as the insert, so a rejected review leaves no trace anywhere.
func (s *reviewService) CreateReview(ctx context.Context, recipeID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Recipe, error) {
	if input.Rating < 1 || input.Rating > 10 {
		return nil, domainerrors.ErrInvalidReview.WithDetails("rating must be between 1 and 10")
	}
	if err := s.validateDescription(input.Description); err != nil {
		return nil, err
	}

	s.writeLocks.Lock(recipeID)
	defer s.writeLocks.Unlock(recipeID)

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		recipe, err := txRepos.NewRecipeRepository().FindByID(ctx, recipeID)
		if err != nil {
			if errors.Is(err, repository.ErrRecipeNotFound) {
				return domainerrors.ErrRecipeNotFound.WithDetails(fmt.Sprintf("recipe ID %s", recipeID))
			}

			return errors.Wrap(err, "failed to find recipe by ID")
		}

		if recipe.Author == input.Author {
			return domainerrors.ErrSelfReview
		}

		review := &entity.Review{
			RecipeID:    recipeID,
			Author:      input.Author,
			Rating:      input.Rating,
			Description: input.Description,
		}

		return errors.Wrap(txRepos.NewReviewRepository().Create(ctx, review), "failed to create review")
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("review created", "recipeID", recipeID, "reviewer", input.Author)

	s.cache.ReviewCreated(recipeID, input.Author)

	fresh, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload reviewed recipe")
	}
	s.cache.StoreRecipe(fresh)

	return fresh, nil
}

// UpdateReview merges a partial update onto the stored review. The owning
// recipe is not resolved here, so invalidation falls back to the conservative
// whole-partition policy.
func (s *reviewService) UpdateReview(ctx context.Context, patch *usecase.ReviewPatch) (*entity.Review, error) {
	if patch.Rating != nil && (*patch.Rating < 1 || *patch.Rating > 10) {
		return nil, domainerrors.ErrInvalidReview.WithDetails("rating must be between 1 and 10")
	}
	if patch.Description != nil {
		if err := s.validateDescription(*patch.Description); err != nil {
			return nil, err
		}
	}

	stored, err := s.reviewRepo.FindByID(ctx, patch.ID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound.WithDetails(
				fmt.Sprintf("review ID %s, maybe you meant to create one", patch.ID))
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	if patch.Rating != nil {
		stored.Rating = *patch.Rating
	}
	if patch.Description != nil {
		stored.Description = *patch.Description
	}

	if err := s.reviewRepo.Update(ctx, stored); err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}
	s.logger.Info("review updated", "reviewID", patch.ID, "reviewer", stored.Author)

	s.cache.ReviewChanged(stored.Author)

	return stored, nil
}

// DeleteReview removes a review by id with the same conservative
// invalidation as UpdateReview.
func (s *reviewService) DeleteReview(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	stored, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound.WithDetails(
				fmt.Sprintf("review ID %s, could not delete", id))
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to delete review")
	}
	s.logger.Info("review deleted", "reviewID", id, "reviewer", stored.Author)

	s.cache.ReviewChanged(stored.Author)

	return stored, nil
}

// validateDescription enforces the non-empty and forbidden-term rules on a
// review description.
func (s *reviewService) validateDescription(description string) error {
	if description == "" {
		return domainerrors.ErrInvalidReview.WithDetails("description must not be empty")
	}

	lowered := strings.ToLower(description)
	for _, term := range s.config.Catalog.ForbiddenDescriptionTerms {
		if term != "" && strings.Contains(lowered, strings.ToLower(term)) {
			return domainerrors.ErrInvalidReview.WithDetails(
				fmt.Sprintf("description must not contain %q", term))
		}
	}

	return nil
}
