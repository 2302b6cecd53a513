package domain

import "errors"

var (
	// ErrRecipeNotFound is returned when no recipe matches an id or slug
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrInvalidServings is returned when a scale target is not an integer in [1,50]
	ErrInvalidServings = errors.New("serving size must be between 1 and 50")

	// ErrEmptySelection is returned when a shopping list is requested for no recipes
	ErrEmptySelection = errors.New("no recipes selected")

	// ErrIngredientData is returned when a recipe references an ingredient
	// that does not exist in the catalog
	ErrIngredientData = errors.New("recipe references unknown ingredient")

	// ErrDataUnavailable is returned when the dataset cannot be loaded
	ErrDataUnavailable = errors.New("recipe data unavailable")
)
