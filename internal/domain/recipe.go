package domain

// Nutrition holds the four tracked macronutrient values. For an Ingredient
// they are recorded per one category-specific base unit (per 100g for meat,
// per cup for baking ingredients, per tablespoon for oils, and so on); for a
// recipe they are derived totals.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Ingredient is a reference catalog entry, looked up by ID.
type Ingredient struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Nutrition       Nutrition `json:"nutrition"`
	CommonAllergens []string  `json:"commonAllergens"`
	Dietary         []string  `json:"dietary"`
}

// RecipeIngredient is one ingredient usage within a recipe. Amount is kept
// as a string because the dataset mixes decimals and simple fractions like
// "1/3". IngredientID may dangle; resolution policy is the caller's.
type RecipeIngredient struct {
	IngredientID string `json:"ingredientId"`
	Amount       string `json:"amount"`
	Unit         string `json:"unit"`
}

// Recipe is an immutable catalog recipe.
type Recipe struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Slug         string             `json:"slug"`
	Description  string             `json:"description"`
	Servings     int                `json:"servings"`
	PrepTime     string             `json:"prepTime"`
	CookTime     string             `json:"cookTime"`
	Difficulty   string             `json:"difficulty"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	Tags         []string           `json:"tags"`
	DateAdded    string             `json:"dateAdded"`
	ImageURL     string             `json:"imageUrl"`
}

// RecipeData is the full dataset snapshot the store serves.
type RecipeData struct {
	Recipes     []Recipe     `json:"recipes"`
	Ingredients []Ingredient `json:"ingredients"`
}

// RecipeWithNutrition is a list-view recipe with derived calories per serving.
type RecipeWithNutrition struct {
	Recipe
	CaloriesPerServing int `json:"caloriesPerServing"`
}

// DetailedRecipeIngredient pairs a usage with its resolved catalog entry.
type DetailedRecipeIngredient struct {
	RecipeIngredient
	Ingredient Ingredient `json:"ingredient"`
}

// DetailedRecipe is the full detail-view representation: every ingredient
// resolved, plus total and per-serving nutrition.
type DetailedRecipe struct {
	ID                 string                     `json:"id"`
	Title              string                     `json:"title"`
	Slug               string                     `json:"slug"`
	Description        string                     `json:"description"`
	Servings           int                        `json:"servings"`
	PrepTime           string                     `json:"prepTime"`
	CookTime           string                     `json:"cookTime"`
	Difficulty         string                     `json:"difficulty"`
	Ingredients        []DetailedRecipeIngredient `json:"ingredients"`
	Instructions       []string                   `json:"instructions"`
	Tags               []string                   `json:"tags"`
	DateAdded          string                     `json:"dateAdded"`
	ImageURL           string                     `json:"imageUrl"`
	TotalNutrition     Nutrition                  `json:"totalNutrition"`
	CaloriesPerServing int                        `json:"caloriesPerServing"`
}

// RecipeQuery holds list-endpoint filter parameters. Empty fields impose no
// constraint.
type RecipeQuery struct {
	Search      string
	Tags        string
	Ingredients string
	Difficulty  string
	MealTime    string
	Dietary     string
	Sort        string
}
