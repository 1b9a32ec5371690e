// Package cache contains the process-local implementation of the catalog
// cache, backed by per-partition LRU caches.
package cache

import (
	"sync"

	"tastebook/config"
	"tastebook/internal/domain/entity"
	"tastebook/internal/domain/service"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// catalogCache implements service.CatalogCache with one LRU per partition and
// a single slot for the bulk all-recipes listing. The LRUs are safe for
// concurrent use; the bulk slot is guarded by its own RWMutex. Entries carry
// no TTL: they live until a coherence hook drops them or the LRU evicts them,
// and eviction only ever forces a re-read, never a stale read.
type catalogCache struct {
	recipes       *lru.Cache[uuid.UUID, *entity.Recipe]
	authorRecipes *lru.Cache[string, []*entity.Recipe]
	recipeReviews *lru.Cache[uuid.UUID, []*entity.Review]
	authorReviews *lru.Cache[string, []*entity.Review]

	bulkMu     sync.RWMutex
	bulk       []*entity.Recipe
	bulkCached bool
}

// NewCatalogCache creates the catalog cache partitions sized from config.
func NewCatalogCache(cfg *config.Config) (service.CatalogCache, error) {
	recipes, err := lru.New[uuid.UUID, *entity.Recipe](cfg.Catalog.RecipeCacheEntries)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create recipe cache partition")
	}
	authorRecipes, err := lru.New[string, []*entity.Recipe](cfg.Catalog.ListingCacheEntries)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create author-recipes cache partition")
	}
	recipeReviews, err := lru.New[uuid.UUID, []*entity.Review](cfg.Catalog.ListingCacheEntries)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create recipe-reviews cache partition")
	}
	authorReviews, err := lru.New[string, []*entity.Review](cfg.Catalog.ListingCacheEntries)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create author-reviews cache partition")
	}

	return &catalogCache{
		recipes:       recipes,
		authorRecipes: authorRecipes,
		recipeReviews: recipeReviews,
		authorReviews: authorReviews,
	}, nil
}

func (c *catalogCache) Recipe(id uuid.UUID) (*entity.Recipe, bool) {
	return c.recipes.Get(id)
}

func (c *catalogCache) StoreRecipe(recipe *entity.Recipe) {
	if recipe == nil {
		return
	}
	c.recipes.Add(recipe.ID, recipe)
}

func (c *catalogCache) AllRecipes() ([]*entity.Recipe, bool) {
	c.bulkMu.RLock()
	defer c.bulkMu.RUnlock()

	return c.bulk, c.bulkCached
}

func (c *catalogCache) StoreAllRecipes(recipes []*entity.Recipe) {
	c.bulkMu.Lock()
	defer c.bulkMu.Unlock()

	c.bulk = recipes
	c.bulkCached = true
}

func (c *catalogCache) AuthorRecipes(author string) ([]*entity.Recipe, bool) {
	return c.authorRecipes.Get(author)
}

func (c *catalogCache) StoreAuthorRecipes(author string, recipes []*entity.Recipe) {
	c.authorRecipes.Add(author, recipes)
}

func (c *catalogCache) RecipeReviews(recipeID uuid.UUID) ([]*entity.Review, bool) {
	return c.recipeReviews.Get(recipeID)
}

func (c *catalogCache) StoreRecipeReviews(recipeID uuid.UUID, reviews []*entity.Review) {
	c.recipeReviews.Add(recipeID, reviews)
}

func (c *catalogCache) AuthorReviews(author string) ([]*entity.Review, bool) {
	return c.authorReviews.Get(author)
}

func (c *catalogCache) StoreAuthorReviews(author string, reviews []*entity.Review) {
	c.authorReviews.Add(author, reviews)
}

// RecipeChanged drops every entry a recipe create, patch or delete can
// affect. The recipe's review listings are untouched: the recipe write paths
// never mutate the review set.
func (c *catalogCache) RecipeChanged(id uuid.UUID, author string) {
	c.recipes.Remove(id)
	c.authorRecipes.Remove(author)
	c.dropBulk()
}

// ReviewCreated drops exactly the entries a review insert affects; the
// triggering operation knows both the recipe and the reviewer, so no
// partition-wide invalidation is needed.
func (c *catalogCache) ReviewCreated(recipeID uuid.UUID, reviewer string) {
	c.recipes.Remove(recipeID)
	c.recipeReviews.Remove(recipeID)
	c.authorReviews.Remove(reviewer)
	c.dropBulk()
}

// ReviewChanged handles the mutations that cannot cheaply name the owning
// recipe. Any cached recipe might be the owner, so the whole recipe partition
// and the whole recipe-reviews partition are cleared; false invalidation is
// preferred over a stale read.
func (c *catalogCache) ReviewChanged(reviewer string) {
	c.recipes.Purge()
	c.recipeReviews.Purge()
	c.dropBulk()

	if reviewer == "" {
		c.authorReviews.Purge()

		return
	}
	c.authorReviews.Remove(reviewer)
}

func (c *catalogCache) dropBulk() {
	c.bulkMu.Lock()
	defer c.bulkMu.Unlock()

	c.bulk = nil
	c.bulkCached = false
}
