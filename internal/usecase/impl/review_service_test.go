package impl

import (
	"context"
	"testing"

	"tastebook/config"
	"tastebook/internal/domain/entity"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/domain/repository"
	mockRepo "tastebook/internal/mocks/repository"
	mockSvc "tastebook/internal/mocks/service"
	"tastebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceMocks struct {
	reviewRepo *mockRepo.MockReviewRepository
	recipeRepo *mockRepo.MockRecipeRepository
	txManager  *mockRepo.MockTransactionManager
	cache      *mockSvc.MockCatalogCache
}

func newTestReviewService(t *testing.T) (usecase.ReviewUsecase, reviewServiceMocks) {
	m := reviewServiceMocks{
		reviewRepo: mockRepo.NewMockReviewRepository(t),
		recipeRepo: mockRepo.NewMockRecipeRepository(t),
		txManager:  mockRepo.NewMockTransactionManager(t),
		cache:      mockSvc.NewMockCatalogCache(t),
	}
	cfg := &config.Config{
		Catalog: &config.CatalogConfig{
			ForbiddenDescriptionTerms: []string{"goofy"},
		},
	}
	service := NewReviewService(ReviewServiceParams{
		ReviewRepo: m.reviewRepo,
		RecipeRepo: m.recipeRepo,
		TxManager:  m.txManager,
		Cache:      m.cache,
		Config:     cfg,
		Logger:     newTestLogger(),
	})

	return service, m
}

func TestReviewService_GetReview_Success(t *testing.T) {
	service, m := newTestReviewService(t)

	ctx := context.Background()
	stored := &entity.Review{ID: uuid.New(), Author: "bob", Rating: 8, Description: "Lovely"}

	m.reviewRepo.EXPECT().
		FindByID(ctx, stored.ID).
		Return(stored, nil)

	review, err := service.GetReview(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, review)
}

func TestReviewService_GetReview_NotFound(t *testing.T) {
	service, m := newTestReviewService(t)

	ctx := context.Background()
	id := uuid.New()

	m.reviewRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrReviewNotFound)

	review, err := service.GetReview(ctx, id)
	assert.Error(t, err)
	assert.Nil(t, review)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrReviewNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestReviewService_ListReviewsByRecipe_CacheHit(t *testing.T) {
	service, m := newTestReviewService(t)

	ctx := context.Background()
	recipeID := uuid.New()
	cached := []*entity.Review{{ID: uuid.New(), RecipeID: recipeID}}

	m.cache.EXPECT().
		RecipeReviews(recipeID).
		Return(cached, true)

	reviews, err := service.ListReviewsByRecipe(ctx, recipeID)
	require.NoError(t, err)
	assert.Equal(t, cached, reviews)
	m.recipeRepo.AssertNotCalled(t, "FindByID", ctx, recipeID)
}

func TestReviewService_ListReviewsByRecipe_CacheMissLoadsParent(t *testing.T) {
	service, m := newTestReviewService(t)

	ctx := context.Background()
	recipeID := uuid.New()
	reviews := []*entity.Review{{ID: uuid.New(), RecipeID: recipeID, Author: "bob", Rating: 7, Description: "Nice"}}
	parent := &entity.Recipe{ID: recipeID, Reviews: reviews}

	m.cache.EXPECT().
		RecipeReviews(recipeID).
		Return(nil, false)

	m.recipeRepo.EXPECT().
		FindByID(ctx, recipeID).
		Return(parent, nil)

	m.cache.EXPECT().
		StoreRecipeReviews(recipeID, reviews).
		Return()

	got, err := service.ListReviewsByRecipe(ctx, recipeID)
	require.NoError(t, err)
	assert.Equal(t, reviews, got)
}

func TestReviewService_ListReviewsByRecipe_RecipeNotFound(t *testing.T) {
	service, m := newTestReviewService(t)

	ctx := context.Background()
	recipeID := uuid.New()

	m.cache.EXPECT().
		RecipeReviews(recipeID).
		Return(nil, false)

	m.recipeRepo.EXPECT().
		FindByID(ctx, recipeID).
		Return(nil, repository.ErrRecipeNotFound)

	reviews, err := service.ListReviewsByRecipe(ctx, recipeID)
	assert.Error(t, err)
	assert.Nil(t, reviews)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrRecipeNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestReviewService_ListReviewsByAuthor_CacheMissLoadsAndStores(t *testing.T) {
	service, m := newTestReviewService(t)

	ctx := context.Background()
	reviews := []*entity.Review{{ID: uuid.New(), Author: "bob"}}

	m.cache.EXPECT().
		AuthorReviews("bob").
		Return(nil, false)

	m.reviewRepo.EXPECT().
		FindByAuthor(ctx, "bob").
		Return(reviews, nil)

	m.cache.EXPECT().
		StoreAuthorReviews("bob", reviews).
		Return()

	got, err := service.ListReviewsByAuthor(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, reviews, got)
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	service, m := newTestReviewService(t)

	ctx := context.Background()
	recipeID := uuid.New()
	parent := &entity.Recipe{ID: recipeID, Author: "alice"}
	input := &usecase.CreateReviewInput{Author: "bob", Rating: 9, Description: "Excellent balance"}

	txRecipeRepo := mockRepo.NewMockRecipeRepository(t)
	txReviewRepo := mockRepo.NewMockReviewRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRecipeRepository().Return(txRecipeRepo)
	factory.EXPECT().NewReviewRepository().Return(txReviewRepo)

	txRecipeRepo.EXPECT().
		FindByID(ctx, recipeID).
		Return(parent, nil)

	txReviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(ctx context.Context, review *entity.Review) {
			assert.Equal(t, recipeID, review.RecipeID)
			assert.Equal(t, "bob", review.Author)
			assert.Equal(t, 9, review.Rating)
		}).
		Return(nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	m.cache.EXPECT().
		ReviewCreated(recipeID, "bob").
		Return()

	rating := 9
	fresh := &entity.Recipe{ID: recipeID, Author: "alice", ReviewRating: &rating}
	m.recipeRepo.EXPECT().
		FindByID(ctx, recipeID).
		Return(fresh, nil)

	m.cache.EXPECT().
		StoreRecipe(fresh).
		Return()

	recipe, err := service.CreateReview(ctx, recipeID, input)
	require.NoError(t, err)
	assert.Equal(t, fresh, recipe)
}

func TestReviewService_CreateReview_SelfReviewNeverPersisted(t *testing.T) {
	service, m := newTestReviewService(t)

	ctx := context.Background()
	recipeID := uuid.New()
	parent := &entity.Recipe{ID: recipeID, Author: "alice"}
	input := &usecase.CreateReviewInput{Author: "alice", Rating: 10, Description: "My own masterpiece"}

	txRecipeRepo := mockRepo.NewMockRecipeRepository(t)
	txReviewRepo := mockRepo.NewMockReviewRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRecipeRepository().Return(txRecipeRepo)

	txRecipeRepo.EXPECT().
		FindByID(ctx, recipeID).
		Return(parent, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	recipe, err := service.CreateReview(ctx, recipeID, input)
	assert.Error(t, err)
	assert.Nil(t, recipe)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrSelfReview.ErrorCode(), appErr.ErrorCode())
	txReviewRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
	m.cache.AssertNotCalled(t, "ReviewCreated", recipeID, "alice")
}

func TestReviewService_CreateReview_SelfReviewIsCaseSensitive(t *testing.T) {
	service, m := newTestReviewService(t)

	ctx := context.Background()
	recipeID := uuid.New()
	parent := &entity.Recipe{ID: recipeID, Author: "Alice"}
	input := &usecase.CreateReviewInput{Author: "alice", Rating: 6, Description: "Decent"}

	txRecipeRepo := mockRepo.NewMockRecipeRepository(t)
	txReviewRepo := mockRepo.NewMockReviewRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRecipeRepository().Return(txRecipeRepo)
	factory.EXPECT().NewReviewRepository().Return(txReviewRepo)

	txRecipeRepo.EXPECT().
		FindByID(ctx, recipeID).
		Return(parent, nil)

	txReviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	m.cache.EXPECT().
		ReviewCreated(recipeID, "alice").
		Return()

	m.recipeRepo.EXPECT().
		FindByID(ctx, recipeID).
		Return(parent, nil)

	m.cache.EXPECT().
		StoreRecipe(parent).
		Return()

	recipe, err := service.CreateReview(ctx, recipeID, input)
	require.NoError(t, err)
	assert.NotNil(t, recipe)
}

func TestReviewService_CreateReview_RatingOutOfRange(t *testing.T) {
	service, _ := newTestReviewService(t)

	ctx := context.Background()

	for _, rating := range []int{0, 11} {
		recipe, err := service.CreateReview(ctx, uuid.New(), &usecase.CreateReviewInput{
			Author:      "bob",
			Rating:      rating,
			Description: "Fine",
		})
		assert.Error(t, err)
		assert.Nil(t, recipe)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrInvalidReview.ErrorCode(), appErr.ErrorCode())
	}
}

func TestReviewService_CreateReview_ForbiddenTermRejected(t *testing.T) {
	service, _ := newTestReviewService(t)

	ctx := context.Background()

	recipe, err := service.CreateReview(ctx, uuid.New(), &usecase.CreateReviewInput{
		Author:      "bob",
		Rating:      5,
		Description: "This recipe is GOOFY at best",
	})
	assert.Error(t, err)
	assert.Nil(t, recipe)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidReview.ErrorCode(), appErr.ErrorCode())
}

func TestReviewService_CreateReview_RecipeNotFound(t *testing.T) {
	service, m := newTestReviewService(t)

	ctx := context.Background()
	recipeID := uuid.New()

	txRecipeRepo := mockRepo.NewMockRecipeRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRecipeRepository().Return(txRecipeRepo)

	txRecipeRepo.EXPECT().
		FindByID(ctx, recipeID).
		Return(nil, repository.ErrRecipeNotFound)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	recipe, err := service.CreateReview(ctx, recipeID, &usecase.CreateReviewInput{
		Author:      "bob",
		Rating:      5,
		Description: "Fine",
	})
	assert.Error(t, err)
	assert.Nil(t, recipe)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrRecipeNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestReviewService_UpdateReview_Success(t *testing.T) {
	service, m := newTestReviewService(t)

	ctx := context.Background()
	stored := &entity.Review{ID: uuid.New(), Author: "bob", Rating: 6, Description: "Okay"}
	patch := &usecase.ReviewPatch{ID: stored.ID, Rating: intPtr(8)}

	m.reviewRepo.EXPECT().
		FindByID(ctx, stored.ID).
		Return(stored, nil)

	m.reviewRepo.EXPECT().
		Update(ctx, stored).
		Return(nil)

	m.cache.EXPECT().
		ReviewChanged("bob").
		Return()

	review, err := service.UpdateReview(ctx, patch)
	require.NoError(t, err)
	assert.Equal(t, 8, review.Rating)
	assert.Equal(t, "Okay", review.Description)
}

func TestReviewService_UpdateReview_NotFound(t *testing.T) {
	service, m := newTestReviewService(t)

	ctx := context.Background()
	patch := &usecase.ReviewPatch{ID: uuid.New(), Rating: intPtr(8)}

	m.reviewRepo.EXPECT().
		FindByID(ctx, patch.ID).
		Return(nil, repository.ErrReviewNotFound)

	review, err := service.UpdateReview(ctx, patch)
	assert.Error(t, err)
	assert.Nil(t, review)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrReviewNotFound.ErrorCode(), appErr.ErrorCode())
	m.reviewRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestReviewService_UpdateReview_ForbiddenTermRejected(t *testing.T) {
	service, m := newTestReviewService(t)

	ctx := context.Background()
	patch := &usecase.ReviewPatch{ID: uuid.New(), Description: strPtr("plain goofy")}

	review, err := service.UpdateReview(ctx, patch)
	assert.Error(t, err)
	assert.Nil(t, review)
	m.reviewRepo.AssertNotCalled(t, "FindByID", ctx, patch.ID)
}

func TestReviewService_DeleteReview_Success(t *testing.T) {
	service, m := newTestReviewService(t)

	ctx := context.Background()
	stored := &entity.Review{ID: uuid.New(), Author: "bob", Rating: 6, Description: "Okay"}

	m.reviewRepo.EXPECT().
		FindByID(ctx, stored.ID).
		Return(stored, nil)

	m.reviewRepo.EXPECT().
		Delete(ctx, stored.ID).
		Return(nil)

	m.cache.EXPECT().
		ReviewChanged("bob").
		Return()

	review, err := service.DeleteReview(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, review)
}

func TestReviewService_DeleteReview_NotFound(t *testing.T) {
	service, m := newTestReviewService(t)

	ctx := context.Background()
	id := uuid.New()

	m.reviewRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrReviewNotFound)

	review, err := service.DeleteReview(ctx, id)
	assert.Error(t, err)
	assert.Nil(t, review)
	m.reviewRepo.AssertNotCalled(t, "Delete", ctx, id)
}
