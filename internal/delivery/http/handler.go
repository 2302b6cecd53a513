package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pantryplan/backend/internal/domain"
	"github.com/pantryplan/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recipes      *usecase.RecipeService
	shoppingList *usecase.ShoppingListService
	store        domain.RecipeStore
}

// NewHandler creates a new HTTP handler
func NewHandler(recipes *usecase.RecipeService, shoppingList *usecase.ShoppingListService, store domain.RecipeStore) *Handler {
	return &Handler{
		recipes:      recipes,
		shoppingList: shoppingList,
		store:        store,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"service":   "pantryplan-backend",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ListRecipes handles GET /recipes with search/filter/sort query parameters
func (h *Handler) ListRecipes(c *gin.Context) {
	query := domain.RecipeQuery{
		Search:      c.Query("search"),
		Tags:        c.Query("tags"),
		Ingredients: c.Query("ingredients"),
		Difficulty:  c.Query("difficulty"),
		MealTime:    c.Query("mealTime"),
		Dietary:     c.Query("dietary"),
		Sort:        c.Query("sort"),
	}

	recipes, err := h.recipes.ListRecipes(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// GetRecipe handles GET /recipes/:identifier, resolving by id or slug
func (h *Handler) GetRecipe(c *gin.Context) {
	detailed, err := h.recipes.GetRecipe(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		case errors.Is(err, domain.ErrIngredientData):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipe ingredients"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		}
		return
	}

	c.JSON(http.StatusOK, detailed)
}

// ScaleRecipe handles GET /recipes/:identifier/scale/:servings
func (h *Handler) ScaleRecipe(c *gin.Context) {
	servings, err := strconv.Atoi(c.Param("servings"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid serving size. Must be between 1 and 50."})
		return
	}

	scaled, err := h.recipes.ScaleRecipe(c.Request.Context(), c.Param("identifier"), servings)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidServings):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid serving size. Must be between 1 and 50."})
		case errors.Is(err, domain.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		case errors.Is(err, domain.ErrIngredientData):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipe ingredients"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scale recipe"})
		}
		return
	}

	c.JSON(http.StatusOK, scaled)
}

// shoppingListRequest is the POST /shopping-list body
type shoppingListRequest struct {
	RecipeIDs          []string           `json:"recipeIds"`
	ServingAdjustments map[string]float64 `json:"servingAdjustments"`
}

// GenerateShoppingList handles POST /shopping-list
func (h *Handler) GenerateShoppingList(c *gin.Context) {
	var req shoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	list, err := h.shoppingList.GenerateShoppingList(c.Request.Context(), req.RecipeIDs, req.ServingAdjustments)
	if err != nil {
		if errors.Is(err, domain.ErrEmptySelection) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No recipes selected"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate shopping list"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// CacheStatus handles GET /cache/status
func (h *Handler) CacheStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Status())
}

// CacheClear handles POST /cache/clear
func (h *Handler) CacheClear(c *gin.Context) {
	h.store.Invalidate()
	c.JSON(http.StatusOK, gin.H{
		"message":   "Cache cleared successfully",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
