package usecase

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pantryplan/backend/internal/domain"
)

// Serving bounds for recipe scaling.
const (
	MinServings = 1
	MaxServings = 50
)

// RecipeService answers list, detail, and scale queries over the catalog.
type RecipeService struct {
	store domain.RecipeStore
}

// NewRecipeService creates a recipe service backed by the given store.
func NewRecipeService(store domain.RecipeStore) *RecipeService {
	return &RecipeService{store: store}
}

// ListRecipes filters the catalog, attaches calories per serving to each
// surviving recipe, and sorts the result.
func (s *RecipeService) ListRecipes(ctx context.Context, query domain.RecipeQuery) ([]domain.RecipeWithNutrition, error) {
	data, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	catalog := ingredientIndex(data.Ingredients)

	filtered := filterRecipes(data.Recipes, query, catalog)

	results := make([]domain.RecipeWithNutrition, 0, len(filtered))
	for _, recipe := range filtered {
		total := recipeNutrition(recipe, catalog)
		results = append(results, domain.RecipeWithNutrition{
			Recipe:             recipe,
			CaloriesPerServing: caloriesPerServing(total, recipe.Servings),
		})
	}

	sortRecipes(results, query.Sort)
	return results, nil
}

// GetRecipe resolves a recipe by id, then by slug, and builds its detail
// view. A recipe that references an unknown ingredient yields
// ErrIngredientData rather than a partial result.
func (s *RecipeService) GetRecipe(ctx context.Context, identifier string) (*domain.DetailedRecipe, error) {
	data, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	recipe, ok := findRecipe(data.Recipes, identifier)
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}

	return buildDetailedRecipe(recipe, ingredientIndex(data.Ingredients))
}

// ScaleRecipe builds the detail view and rescales it to the target serving
// count. The target must be an integer in [MinServings, MaxServings].
func (s *RecipeService) ScaleRecipe(ctx context.Context, identifier string, servings int) (*domain.DetailedRecipe, error) {
	if servings < MinServings || servings > MaxServings {
		return nil, domain.ErrInvalidServings
	}

	detailed, err := s.GetRecipe(ctx, identifier)
	if err != nil {
		return nil, err
	}

	scaled := scaleDetailedRecipe(*detailed, servings)
	return &scaled, nil
}

// ingredientIndex builds an id lookup over the ingredient catalog.
func ingredientIndex(ingredients []domain.Ingredient) map[string]domain.Ingredient {
	index := make(map[string]domain.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		index[ing.ID] = ing
	}
	return index
}

// findRecipe resolves an identifier by id first, then by slug.
func findRecipe(recipes []domain.Recipe, identifier string) (domain.Recipe, bool) {
	for _, r := range recipes {
		if r.ID == identifier {
			return r, true
		}
	}
	for _, r := range recipes {
		if r.Slug == identifier {
			return r, true
		}
	}
	return domain.Recipe{}, false
}

// buildDetailedRecipe resolves every ingredient usage and computes nutrition.
// Any dangling ingredient id aborts the whole construction.
func buildDetailedRecipe(recipe domain.Recipe, catalog map[string]domain.Ingredient) (*domain.DetailedRecipe, error) {
	detailed := make([]domain.DetailedRecipeIngredient, 0, len(recipe.Ingredients))
	for _, usage := range recipe.Ingredients {
		ingredient, ok := catalog[usage.IngredientID]
		if !ok {
			return nil, domain.ErrIngredientData
		}
		detailed = append(detailed, domain.DetailedRecipeIngredient{
			RecipeIngredient: usage,
			Ingredient:       ingredient,
		})
	}

	total := recipeNutrition(recipe, catalog)

	return &domain.DetailedRecipe{
		ID:                 recipe.ID,
		Title:              recipe.Title,
		Slug:               recipe.Slug,
		Description:        recipe.Description,
		Servings:           recipe.Servings,
		PrepTime:           recipe.PrepTime,
		CookTime:           recipe.CookTime,
		Difficulty:         recipe.Difficulty,
		Ingredients:        detailed,
		Instructions:       recipe.Instructions,
		Tags:               recipe.Tags,
		DateAdded:          recipe.DateAdded,
		ImageURL:           recipe.ImageURL,
		TotalNutrition:     total,
		CaloriesPerServing: caloriesPerServing(total, recipe.Servings),
	}, nil
}

// scaleDetailedRecipe produces a copy of the recipe at a new serving count.
// Every ingredient amount is parsed, multiplied, and reformatted; total
// nutrition scales linearly; calories per serving is per-serving by
// definition and carries over unchanged.
func scaleDetailedRecipe(recipe domain.DetailedRecipe, newServings int) domain.DetailedRecipe {
	scaleFactor := float64(newServings) / float64(recipe.Servings)

	scaledIngredients := make([]domain.DetailedRecipeIngredient, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		scaled := ing
		scaled.Amount = formatAmount(parseAmount(ing.Amount) * scaleFactor)
		scaledIngredients[i] = scaled
	}

	recipe.Servings = newServings
	recipe.Ingredients = scaledIngredients
	recipe.TotalNutrition = domain.Nutrition{
		Calories: recipe.TotalNutrition.Calories * scaleFactor,
		Protein:  recipe.TotalNutrition.Protein * scaleFactor,
		Carbs:    recipe.TotalNutrition.Carbs * scaleFactor,
		Fat:      recipe.TotalNutrition.Fat * scaleFactor,
	}
	return recipe
}

// filterRecipes keeps recipes passing every supplied filter. Absent fields
// impose no constraint.
func filterRecipes(recipes []domain.Recipe, query domain.RecipeQuery, catalog map[string]domain.Ingredient) []domain.Recipe {
	var kept []domain.Recipe
	for _, recipe := range recipes {
		if matchesQuery(recipe, query, catalog) {
			kept = append(kept, recipe)
		}
	}
	return kept
}

func matchesQuery(recipe domain.Recipe, query domain.RecipeQuery, catalog map[string]domain.Ingredient) bool {
	if query.Search != "" && !matchesSearch(recipe, query.Search, catalog) {
		return false
	}

	if query.Difficulty != "" && recipe.Difficulty != query.Difficulty {
		return false
	}

	if query.MealTime != "" && !hasTagExact(recipe.Tags, query.MealTime) {
		return false
	}

	if query.Tags != "" && !matchesAnyTag(recipe.Tags, query.Tags) {
		return false
	}

	if query.Ingredients != "" && !matchesAnyIngredient(recipe, query.Ingredients, catalog) {
		return false
	}

	if query.Dietary != "" && !matchesAllDietary(recipe.Tags, query.Dietary) {
		return false
	}

	return true
}

// matchesSearch checks title, description, and resolved ingredient names for
// a case-insensitive substring match.
func matchesSearch(recipe domain.Recipe, search string, catalog map[string]domain.Ingredient) bool {
	needle := strings.ToLower(search)

	if strings.Contains(strings.ToLower(recipe.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(recipe.Description), needle) {
		return true
	}
	for _, usage := range recipe.Ingredients {
		if ingredient, ok := catalog[usage.IngredientID]; ok {
			if strings.Contains(strings.ToLower(ingredient.Name), needle) {
				return true
			}
		}
	}
	return false
}

// hasTagExact is a case-insensitive exact match against any tag, used for
// meal-time filtering.
func hasTagExact(tags []string, want string) bool {
	wantLower := strings.ToLower(want)
	for _, tag := range tags {
		if strings.ToLower(tag) == wantLower {
			return true
		}
	}
	return false
}

// matchesAnyTag OR-matches comma-split query tags as substrings of the
// recipe's tags.
func matchesAnyTag(tags []string, queryTags string) bool {
	for _, queryTag := range splitTerms(queryTags) {
		for _, tag := range tags {
			if strings.Contains(strings.ToLower(tag), queryTag) {
				return true
			}
		}
	}
	return false
}

// matchesAnyIngredient OR-matches comma-split tokens against ingredient ids
// and resolved ingredient names.
func matchesAnyIngredient(recipe domain.Recipe, queryIngredients string, catalog map[string]domain.Ingredient) bool {
	for _, token := range splitTerms(queryIngredients) {
		for _, usage := range recipe.Ingredients {
			ingredient, ok := catalog[usage.IngredientID]
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(usage.IngredientID), token) ||
				strings.Contains(strings.ToLower(ingredient.Name), token) {
				return true
			}
		}
	}
	return false
}

// matchesAllDietary AND-matches comma-split dietary terms against recipe
// tags. Asking for vegetarian also accepts vegan recipes, since every vegan
// dish is vegetarian.
func matchesAllDietary(tags []string, dietary string) bool {
	for _, term := range splitTerms(dietary) {
		if !matchesDietaryTerm(tags, term) {
			return false
		}
	}
	return true
}

func matchesDietaryTerm(tags []string, term string) bool {
	for _, tag := range tags {
		tagLower := strings.ToLower(tag)
		if term == "vegetarian" {
			if strings.Contains(tagLower, "vegetarian") || strings.Contains(tagLower, "vegan") {
				return true
			}
			continue
		}
		if strings.Contains(tagLower, term) {
			return true
		}
	}
	return false
}

// splitTerms comma-splits, trims, lowercases, and drops empty tokens.
func splitTerms(s string) []string {
	var terms []string
	for _, part := range strings.Split(s, ",") {
		term := strings.ToLower(strings.TrimSpace(part))
		if term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// Sort option names accepted by the list endpoint.
const (
	SortNewest     = "newest"
	SortPrepTime   = "prep-time"
	SortDifficulty = "difficulty"
	SortCalories   = "calories"
)

var difficultyOrder = map[string]int{"easy": 1, "medium": 2, "hard": 3}

// sortRecipes orders list results in place. Unknown sort values fall back to
// newest-first.
func sortRecipes(recipes []domain.RecipeWithNutrition, sortBy string) {
	switch sortBy {
	case SortPrepTime:
		sort.SliceStable(recipes, func(i, j int) bool {
			return leadingMinutes(recipes[i].PrepTime) < leadingMinutes(recipes[j].PrepTime)
		})
	case SortDifficulty:
		sort.SliceStable(recipes, func(i, j int) bool {
			return difficultyOrder[recipes[i].Difficulty] < difficultyOrder[recipes[j].Difficulty]
		})
	case SortCalories:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].CaloriesPerServing < recipes[j].CaloriesPerServing
		})
	default:
		sort.SliceStable(recipes, func(i, j int) bool {
			return parseDateAdded(recipes[i].DateAdded).After(parseDateAdded(recipes[j].DateAdded))
		})
	}
}

// leadingMinutes extracts the leading integer of a time string like
// "25 minutes"; the rest of the string is ignored.
func leadingMinutes(s string) int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	minutes, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return minutes
}

// parseDateAdded accepts the dataset's plain dates as well as full
// timestamps; unparseable dates sort last.
func parseDateAdded(s string) time.Time {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
