// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"tastebook/internal/delivery/http/response"
	domainerrors "tastebook/internal/domain/errors"
	"tastebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecipeHandler holds dependencies for recipe-related handlers.
type RecipeHandler struct {
	uc usecase.RecipeUsecase
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// CreateRecipe handles the recipe creation request.
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	var input *usecase.CreateRecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	recipe, err := h.uc.CreateRecipe(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, c.Request().URL.Path+"/"+recipe.ID.String())

	return response.Success(c, http.StatusCreated, recipe, "Recipe created successfully")
}

// GetRecipe handles the single recipe retrieval request.
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe ID")
	}

	recipe, err := h.uc.GetRecipe(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "Recipe retrieved successfully")
}

// ListRecipes handles the recipe listing request with optional query filters.
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	filter, err := parseRecipeFilter(c)
	if err != nil {
		return errors.WithStack(err)
	}

	recipes, err := h.uc.ListRecipes(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipes, "Recipes retrieved successfully")
}

// parseRecipeFilter reads the supported query parameters. Combination legality
// is decided by the usecase, not here.
func parseRecipeFilter(c echo.Context) (*usecase.RecipeFilter, error) {
	filter := &usecase.RecipeFilter{}

	if name := c.QueryParam("name"); name != "" {
		filter.Name = &name
	}
	if author := c.QueryParam("author"); author != "" {
		filter.Author = &author
	}
	if raw := c.QueryParam("maxDifficultyRating"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, domainerrors.ErrInvalidQueryFilter.WithDetails("maxDifficultyRating must be an integer")
		}
		filter.MaxDifficultyRating = &value
	}
	if raw := c.QueryParam("minReviewRating"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, domainerrors.ErrInvalidQueryFilter.WithDetails("minReviewRating must be an integer")
		}
		filter.MinReviewRating = &value
	}

	return filter, nil
}

// PatchRecipe handles the partial recipe update request.
func (h *RecipeHandler) PatchRecipe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe ID")
	}

	var patch *usecase.RecipePatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe patch")
	}
	if patch == nil {
		// echo leaves the target untouched on an empty request body.
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe patch")
	}
	patch.ID = id

	recipe, err := h.uc.PatchRecipe(c.Request().Context(), patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "Recipe updated successfully")
}

// DeleteRecipe handles the recipe deletion request.
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe ID")
	}

	recipe, err := h.uc.DeleteRecipe(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "Recipe deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
