package cache

import (
	"testing"

	"tastebook/config"
	"tastebook/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *catalogCache {
	t.Helper()

	cfg := &config.Config{Catalog: &config.CatalogConfig{
		RecipeCacheEntries:  16,
		ListingCacheEntries: 16,
	}}
	c, err := NewCatalogCache(cfg)
	require.NoError(t, err)

	return c.(*catalogCache)
}

func TestCatalogCache_ReadThroughLifecycle(t *testing.T) {
	c := newTestCache(t)
	id := uuid.New()

	_, ok := c.Recipe(id)
	assert.False(t, ok, "a key starts absent")

	c.StoreRecipe(&entity.Recipe{ID: id, Name: "soup"})
	cached, ok := c.Recipe(id)
	require.True(t, ok)
	assert.Equal(t, "soup", cached.Name)

	c.RecipeChanged(id, "amy")
	_, ok = c.Recipe(id)
	assert.False(t, ok, "invalidation returns the key to absent")
}

func TestCatalogCache_RecipeChangedScope(t *testing.T) {
	c := newTestCache(t)
	changed := &entity.Recipe{ID: uuid.New(), Author: "amy"}
	other := &entity.Recipe{ID: uuid.New(), Author: "bob"}

	c.StoreRecipe(changed)
	c.StoreRecipe(other)
	c.StoreAllRecipes([]*entity.Recipe{changed, other})
	c.StoreAuthorRecipes("amy", []*entity.Recipe{changed})
	c.StoreAuthorRecipes("bob", []*entity.Recipe{other})
	c.StoreRecipeReviews(changed.ID, []*entity.Review{})

	c.RecipeChanged(changed.ID, "amy")

	_, ok := c.Recipe(changed.ID)
	assert.False(t, ok)
	_, ok = c.AllRecipes()
	assert.False(t, ok, "the bulk listing contains the changed recipe")
	_, ok = c.AuthorRecipes("amy")
	assert.False(t, ok)

	_, ok = c.Recipe(other.ID)
	assert.True(t, ok, "unrelated recipes stay cached")
	_, ok = c.AuthorRecipes("bob")
	assert.True(t, ok, "unrelated author listings stay cached")
	_, ok = c.RecipeReviews(changed.ID)
	assert.True(t, ok, "recipe writes never touch the review set")
}

func TestCatalogCache_ReviewCreatedScope(t *testing.T) {
	c := newTestCache(t)
	reviewed := &entity.Recipe{ID: uuid.New(), Author: "amy"}
	other := &entity.Recipe{ID: uuid.New(), Author: "bob"}

	c.StoreRecipe(reviewed)
	c.StoreRecipe(other)
	c.StoreAllRecipes([]*entity.Recipe{reviewed, other})
	c.StoreRecipeReviews(reviewed.ID, []*entity.Review{})
	c.StoreRecipeReviews(other.ID, []*entity.Review{})
	c.StoreAuthorReviews("carol", []*entity.Review{})
	c.StoreAuthorReviews("dave", []*entity.Review{})

	c.ReviewCreated(reviewed.ID, "carol")

	_, ok := c.Recipe(reviewed.ID)
	assert.False(t, ok, "the derived rating of the reviewed recipe changed")
	_, ok = c.RecipeReviews(reviewed.ID)
	assert.False(t, ok)
	_, ok = c.AuthorReviews("carol")
	assert.False(t, ok)

	_, ok = c.Recipe(other.ID)
	assert.True(t, ok)
	_, ok = c.RecipeReviews(other.ID)
	assert.True(t, ok)
	_, ok = c.AuthorReviews("dave")
	assert.True(t, ok)
}

func TestCatalogCache_ReviewChangedIsConservative(t *testing.T) {
	c := newTestCache(t)
	first := uuid.New()
	second := uuid.New()

	c.StoreRecipe(&entity.Recipe{ID: first})
	c.StoreRecipe(&entity.Recipe{ID: second})
	c.StoreAllRecipes([]*entity.Recipe{})
	c.StoreRecipeReviews(first, []*entity.Review{})
	c.StoreRecipeReviews(second, []*entity.Review{})
	c.StoreAuthorReviews("carol", []*entity.Review{})
	c.StoreAuthorReviews("dave", []*entity.Review{})

	c.ReviewChanged("carol")

	_, ok := c.Recipe(first)
	assert.False(t, ok, "every cached recipe might own the mutated review")
	_, ok = c.Recipe(second)
	assert.False(t, ok)
	_, ok = c.AllRecipes()
	assert.False(t, ok)
	_, ok = c.RecipeReviews(first)
	assert.False(t, ok)
	_, ok = c.RecipeReviews(second)
	assert.False(t, ok)

	_, ok = c.AuthorReviews("carol")
	assert.False(t, ok)
	_, ok = c.AuthorReviews("dave")
	assert.True(t, ok, "the reviewer is known, other author listings survive")
}

func TestCatalogCache_ReviewChangedUnknownReviewer(t *testing.T) {
	c := newTestCache(t)
	c.StoreAuthorReviews("carol", []*entity.Review{})
	c.StoreAuthorReviews("dave", []*entity.Review{})

	c.ReviewChanged("")

	_, ok := c.AuthorReviews("carol")
	assert.False(t, ok)
	_, ok = c.AuthorReviews("dave")
	assert.False(t, ok, "unknown reviewer clears the whole author partition")
}
