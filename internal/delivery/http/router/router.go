// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tastebook/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RecipeHandler *handler.RecipeHandler
	ReviewHandler *handler.ReviewHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	recipeHandler *handler.RecipeHandler
	reviewHandler *handler.ReviewHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		recipeHandler: params.RecipeHandler,
		reviewHandler: params.ReviewHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	recipeGroup := e.Group("/recipes")
	{
		recipeGroup.POST("", r.recipeHandler.CreateRecipe)
		recipeGroup.GET("", r.recipeHandler.ListRecipes)
		recipeGroup.GET("/:id", r.recipeHandler.GetRecipe)
		recipeGroup.PATCH("/:id", r.recipeHandler.PatchRecipe)
		recipeGroup.DELETE("/:id", r.recipeHandler.DeleteRecipe)

		// Reviews nested under their parent recipe
		recipeGroup.GET("/:id/reviews", r.reviewHandler.ListReviewsByRecipe)
		recipeGroup.POST("/:id/reviews", r.reviewHandler.CreateReview)
	}

	reviewGroup := e.Group("/reviews")
	{
		reviewGroup.GET("/:id", r.reviewHandler.GetReview)
		reviewGroup.GET("/author/:author", r.reviewHandler.ListReviewsByAuthor)
		reviewGroup.PATCH("/:id", r.reviewHandler.UpdateReview)
		reviewGroup.DELETE("/:id", r.reviewHandler.DeleteReview)
	}
}
