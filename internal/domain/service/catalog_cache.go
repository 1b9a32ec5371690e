// Package service defines interfaces for domain services implemented by the
// infrastructure layer.
package service

import (
	"tastebook/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogCache is the process-local read-through cache in front of the
// aggregate store. It owns four partitions keyed along different access
// dimensions (recipe by id plus a bulk all-recipes entry, reviews by recipe,
// reviews by author, recipes by author) and the invalidation policy each
// mutation kind triggers.
//
// A key is either cached or absent; there is no stale intermediate state.
// Entries live until invalidated by a coherence hook or evicted under memory
// pressure. All methods are safe for concurrent use, and the coherence hooks
// complete before they return, so a mutation that invalidates before
// responding is never followed by a read of pre-mutation data.
type CatalogCache interface {
	// Recipe returns the cached recipe aggregate for the given id.
	Recipe(id uuid.UUID) (*entity.Recipe, bool)

	// StoreRecipe caches a recipe aggregate under its id.
	StoreRecipe(recipe *entity.Recipe)

	// AllRecipes returns the cached unfiltered catalog listing.
	AllRecipes() ([]*entity.Recipe, bool)

	// StoreAllRecipes caches the unfiltered catalog listing.
	StoreAllRecipes(recipes []*entity.Recipe)

	// AuthorRecipes returns the cached recipe listing for an author.
	AuthorRecipes(author string) ([]*entity.Recipe, bool)

	// StoreAuthorRecipes caches the recipe listing for an author.
	StoreAuthorRecipes(author string, recipes []*entity.Recipe)

	// RecipeReviews returns the cached review listing for a recipe.
	RecipeReviews(recipeID uuid.UUID) ([]*entity.Review, bool)

	// StoreRecipeReviews caches the review listing for a recipe.
	StoreRecipeReviews(recipeID uuid.UUID, reviews []*entity.Review)

	// AuthorReviews returns the cached review listing for a reviewer.
	AuthorReviews(author string) ([]*entity.Review, bool)

	// StoreAuthorReviews caches the review listing for a reviewer.
	StoreAuthorReviews(author string, reviews []*entity.Review)

	// RecipeChanged invalidates every entry a recipe create, patch or delete
	// can affect: the recipe's own entry, the author's recipe listing and the
	// bulk all-recipes entry.
	RecipeChanged(id uuid.UUID, author string)

	// ReviewCreated invalidates every entry a review insert can affect: the
	// parent recipe entry (its derived rating changed), that recipe's review
	// listing, the reviewer's review listing and the bulk all-recipes entry.
	ReviewCreated(recipeID uuid.UUID, reviewer string)

	// ReviewChanged handles review updates and deletes, where the owning
	// recipe is not cheaply resolvable at invalidation time. It clears the
	// whole recipe partition (any cached recipe might be the owner, and the
	// bulk entry with it) and the whole recipe-reviews partition, then
	// invalidates the reviewer's review listing when the reviewer is known
	// (empty string clears the whole author-reviews partition instead).
	ReviewChanged(reviewer string)
}
