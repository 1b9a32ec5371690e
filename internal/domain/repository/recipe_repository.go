// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tastebook/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecipeNotFound is a domain-specific error returned when a recipe is not found.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository defines the standard operations for recipe aggregate persistence.
// Every Find method returns fully loaded aggregates (ingredients, steps, reviews)
// with the derived review rating already recomputed from the stored review set.
type RecipeRepository interface {
	// FindByID retrieves a single recipe aggregate by its unique ID.
	// Returns ErrRecipeNotFound when no such recipe exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// FindAll retrieves every recipe in the catalog.
	FindAll(ctx context.Context) ([]*entity.Recipe, error)

	// FindByNameContains retrieves recipes whose name contains the given
	// substring, case-insensitively.
	FindByNameContains(ctx context.Context, name string) ([]*entity.Recipe, error)

	// FindByNameContainsAndMaxDifficulty retrieves recipes matching the name
	// substring with a difficulty rating no greater than maxDifficulty.
	FindByNameContainsAndMaxDifficulty(ctx context.Context, name string, maxDifficulty int) ([]*entity.Recipe, error)

	// FindByAuthor retrieves all recipes written by the given author.
	FindByAuthor(ctx context.Context, author string) ([]*entity.Recipe, error)

	// FindByMinimumReviewRating retrieves recipes whose truncated average
	// review rating is at least minRating. Recipes without reviews never match.
	FindByMinimumReviewRating(ctx context.Context, minRating int) ([]*entity.Recipe, error)

	// Create persists a new recipe aggregate, assigning identities to the
	// recipe and its owned ingredients and steps.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// Save persists the full state of an existing recipe aggregate, assigning
	// identities to any newly added owned items.
	Save(ctx context.Context, recipe *entity.Recipe) error

	// Delete removes a recipe and, through cascading ownership, its
	// ingredients, steps and reviews. Returns ErrRecipeNotFound when no such
	// recipe exists.
	Delete(ctx context.Context, id uuid.UUID) error
}
