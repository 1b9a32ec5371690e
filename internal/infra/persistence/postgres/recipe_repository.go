package postgres

import (
	"context"

	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	"tastebook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipeRepository implements the repository.RecipeRepository interface.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{
		db: db,
	}
}

// withAggregate preloads the owned collections in stable order.
func withAggregate(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		})
}

// FindByID retrieves a fully loaded recipe aggregate by its unique ID.
func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel

	if err := withAggregate(repo.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&recipeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by ID")
	}

	return toRecipeDomain(&recipeM), nil
}

// FindAll retrieves every recipe in the catalog.
func (repo *recipeRepository) FindAll(ctx context.Context) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel

	if err := withAggregate(repo.db.WithContext(ctx)).
		Order("created_at ASC").
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all recipes")
	}

	return toRecipeDomainList(recipeModels), nil
}

// FindByNameContains retrieves recipes by case-insensitive name substring.
func (repo *recipeRepository) FindByNameContains(ctx context.Context, name string) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel

	if err := withAggregate(repo.db.WithContext(ctx)).
		Where("name ILIKE ?", "%"+name+"%").
		Order("created_at ASC").
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by name")
	}

	return toRecipeDomainList(recipeModels), nil
}

// FindByNameContainsAndMaxDifficulty retrieves recipes by name substring
// capped at a maximum difficulty rating.
func (repo *recipeRepository) FindByNameContainsAndMaxDifficulty(ctx context.Context, name string, maxDifficulty int) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel

	if err := withAggregate(repo.db.WithContext(ctx)).
		Where("name ILIKE ? AND difficulty_rating <= ?", "%"+name+"%", maxDifficulty).
		Order("created_at ASC").
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by name and maximum difficulty")
	}

	return toRecipeDomainList(recipeModels), nil
}

// FindByAuthor retrieves all recipes written by the given author.
func (repo *recipeRepository) FindByAuthor(ctx context.Context, author string) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel

	if err := withAggregate(repo.db.WithContext(ctx)).
		Where("author = ?", author).
		Order("created_at ASC").
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by author")
	}

	return toRecipeDomainList(recipeModels), nil
}

// FindByMinimumReviewRating retrieves recipes whose truncated average review
// rating is at least minRating. The integer division in the HAVING clause
// matches the truncated mean computed on load.
func (repo *recipeRepository) FindByMinimumReviewRating(ctx context.Context, minRating int) ([]*entity.Recipe, error) {
	var ids []uuid.UUID

	query := `
		SELECT rc.id
		FROM recipes rc
		JOIN reviews rv ON rc.id = rv.recipe_id
		GROUP BY rc.id
		HAVING SUM(rv.rating) / COUNT(rv.id) >= ?
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, minRating).
		Scan(&ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by minimum review rating")
	}

	if len(ids) == 0 {
		return []*entity.Recipe{}, nil
	}

	var recipeModels []*model.RecipeModel
	if err := withAggregate(repo.db.WithContext(ctx)).
		Where("id IN ?", ids).
		Order("created_at ASC").
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load recipes by minimum review rating")
	}

	return toRecipeDomainList(recipeModels), nil
}

// Create persists a new recipe aggregate and backfills generated identities.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRecipe.WrapMessage("recipe violates a storage constraint")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidRecipe.WrapMessage("missing required recipe information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	applyGenerated(recipe, recipeM)

	return nil
}

// Save persists the full state of an existing aggregate, inserting any newly
// appended ingredients and steps.
func (repo *recipeRepository) Save(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(recipeM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRecipe.WrapMessage("recipe violates a storage constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save recipe")
	}

	applyGenerated(recipe, recipeM)

	return nil
}

// Delete removes a recipe; owned rows go with it via ON DELETE CASCADE.
func (repo *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RecipeModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete recipe")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe aggregate and
// recomputes the derived review rating from the loaded review set.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	recipe := &entity.Recipe{
		ID:               data.ID,
		Name:             data.Name,
		MinutesToMake:    data.MinutesToMake,
		DifficultyRating: data.DifficultyRating,
		Author:           data.Author,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	for _, ingredientM := range data.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, &entity.Ingredient{
			ID:     ingredientM.ID,
			Name:   ingredientM.Name,
			Amount: ingredientM.Amount,
			State:  ingredientM.State,
		})
	}
	for _, stepM := range data.Steps {
		recipe.Steps = append(recipe.Steps, &entity.Step{
			ID:          stepM.ID,
			StepNumber:  stepM.StepNumber,
			Description: stepM.Description,
		})
	}
	for _, reviewM := range data.Reviews {
		recipe.Reviews = append(recipe.Reviews, toReviewDomain(reviewM))
	}

	recipe.RecalculateRating()

	return recipe
}

func toRecipeDomainList(data []*model.RecipeModel) []*entity.Recipe {
	recipes := make([]*entity.Recipe, 0, len(data))
	for _, recipeM := range data {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes
}

// fromRecipeDomain converts a domain Recipe aggregate to a GORM RecipeModel,
// recording list positions so load order matches caller order.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	recipeM := &model.RecipeModel{
		ID:               data.ID,
		Name:             data.Name,
		MinutesToMake:    data.MinutesToMake,
		DifficultyRating: data.DifficultyRating,
		Author:           data.Author,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	for i, ingredient := range data.Ingredients {
		recipeM.Ingredients = append(recipeM.Ingredients, &model.IngredientModel{
			ID:       ingredient.ID,
			RecipeID: data.ID,
			Name:     ingredient.Name,
			Amount:   ingredient.Amount,
			State:    ingredient.State,
			Position: i,
		})
	}
	for i, step := range data.Steps {
		recipeM.Steps = append(recipeM.Steps, &model.StepModel{
			ID:          step.ID,
			RecipeID:    data.ID,
			StepNumber:  step.StepNumber,
			Description: step.Description,
			Position:    i,
		})
	}
	// Reviews are managed through their own lifecycle operations and are
	// deliberately not written by aggregate saves.

	return recipeM
}

// applyGenerated copies store-assigned identities back onto the entity.
func applyGenerated(recipe *entity.Recipe, recipeM *model.RecipeModel) {
	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt
	for i, ingredientM := range recipeM.Ingredients {
		if i < len(recipe.Ingredients) {
			recipe.Ingredients[i].ID = ingredientM.ID
		}
	}
	for i, stepM := range recipeM.Steps {
		if i < len(recipe.Steps) {
			recipe.Steps[i].ID = stepM.ID
		}
	}
}
