package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/pantryplan/backend/internal/domain"
)

// stubStore is an in-memory domain.RecipeStore for service tests.
type stubStore struct {
	data        *domain.RecipeData
	err         error
	invalidated bool
}

func (s *stubStore) Snapshot(ctx context.Context) (*domain.RecipeData, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

func (s *stubStore) Invalidate() { s.invalidated = true }

func (s *stubStore) Status() domain.CacheStatus {
	return domain.CacheStatus{Cached: s.data != nil, Valid: s.data != nil}
}

// testDataset is a small catalog covering the category rules the tests need.
// The "mystery-stew" recipe intentionally references a missing ingredient.
func testDataset() *domain.RecipeData {
	return &domain.RecipeData{
		Ingredients: []domain.Ingredient{
			{
				ID: "flour", Name: "All-Purpose Flour", Category: "baking",
				Nutrition: domain.Nutrition{Calories: 400, Protein: 13, Carbs: 95, Fat: 1.2},
			},
			{
				ID: "chicken", Name: "Chicken Breast", Category: "protein",
				Nutrition: domain.Nutrition{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
			},
			{
				ID: "basil", Name: "Fresh Basil", Category: "herb",
				Nutrition: domain.Nutrition{Calories: 1, Protein: 0.1, Carbs: 0.1, Fat: 0},
			},
		},
		Recipes: []domain.Recipe{
			{
				ID: "pancakes-1", Title: "Fluffy Pancakes", Slug: "fluffy-pancakes",
				Description: "Weekend breakfast classic", Servings: 4,
				PrepTime: "10 minutes", CookTime: "15 minutes", Difficulty: "easy",
				Tags: []string{"breakfast", "vegetarian"}, DateAdded: "2024-02-01",
				Ingredients: []domain.RecipeIngredient{
					{IngredientID: "flour", Amount: "2", Unit: "cups"},
				},
			},
			{
				ID: "chicken-1", Title: "Grilled Chicken", Slug: "grilled-chicken",
				Description: "Simple weeknight dinner", Servings: 2,
				PrepTime: "25 minutes", CookTime: "20 minutes", Difficulty: "medium",
				Tags: []string{"dinner", "high-protein"}, DateAdded: "2024-03-15",
				Ingredients: []domain.RecipeIngredient{
					{IngredientID: "chicken", Amount: "200", Unit: "g"},
				},
			},
			{
				ID: "stew-1", Title: "Mystery Stew", Slug: "mystery-stew",
				Description: "References a missing ingredient", Servings: 2,
				PrepTime: "40 minutes", CookTime: "60 minutes", Difficulty: "hard",
				Tags: []string{"dinner"}, DateAdded: "2024-01-10",
				Ingredients: []domain.RecipeIngredient{
					{IngredientID: "chicken", Amount: "100", Unit: "g"},
					{IngredientID: "ghost", Amount: "1", Unit: "cup"},
				},
			},
			{
				ID: "salad-1", Title: "Green Salad", Slug: "green-salad",
				Description: "Light lunch", Servings: 1,
				PrepTime: "5 minutes", CookTime: "0 minutes", Difficulty: "easy",
				Tags: []string{"lunch", "vegan"}, DateAdded: "2024-04-01",
				Ingredients: []domain.RecipeIngredient{
					{IngredientID: "basil", Amount: "10", Unit: "leaves"},
				},
			},
		},
	}
}

func newTestRecipeService() *RecipeService {
	return NewRecipeService(&stubStore{data: testDataset()})
}

func TestListRecipes(t *testing.T) {
	ctx := context.Background()
	svc := newTestRecipeService()

	t.Run("no filters returns everything with calories per serving", func(t *testing.T) {
		recipes, err := svc.ListRecipes(ctx, domain.RecipeQuery{})
		if err != nil {
			t.Fatalf("ListRecipes() error = %v", err)
		}
		if len(recipes) != 4 {
			t.Fatalf("got %d recipes, want 4", len(recipes))
		}

		byID := make(map[string]domain.RecipeWithNutrition)
		for _, r := range recipes {
			byID[r.ID] = r
		}
		if got := byID["pancakes-1"].CaloriesPerServing; got != 200 {
			t.Errorf("pancakes caloriesPerServing = %d, want 200", got)
		}
		if got := byID["chicken-1"].CaloriesPerServing; got != 165 {
			t.Errorf("chicken caloriesPerServing = %d, want 165", got)
		}
	})

	t.Run("recipe with dangling ingredient stays listed", func(t *testing.T) {
		recipes, err := svc.ListRecipes(ctx, domain.RecipeQuery{Search: "mystery"})
		if err != nil {
			t.Fatalf("ListRecipes() error = %v", err)
		}
		if len(recipes) != 1 || recipes[0].ID != "stew-1" {
			t.Fatalf("got %v, want just stew-1", recipes)
		}
		// 100g chicken = 165 kcal over 2 servings; the ghost ingredient
		// contributes nothing.
		if recipes[0].CaloriesPerServing != 83 {
			t.Errorf("caloriesPerServing = %d, want 83", recipes[0].CaloriesPerServing)
		}
	})

	t.Run("search matches ingredient names", func(t *testing.T) {
		recipes, err := svc.ListRecipes(ctx, domain.RecipeQuery{Search: "basil"})
		if err != nil {
			t.Fatalf("ListRecipes() error = %v", err)
		}
		if len(recipes) != 1 || recipes[0].ID != "salad-1" {
			t.Fatalf("got %v, want just salad-1", recipes)
		}
	})

	t.Run("difficulty is an exact match", func(t *testing.T) {
		recipes, _ := svc.ListRecipes(ctx, domain.RecipeQuery{Difficulty: "easy"})
		if len(recipes) != 2 {
			t.Fatalf("got %d recipes, want 2", len(recipes))
		}
	})

	t.Run("meal time matches a tag exactly", func(t *testing.T) {
		recipes, _ := svc.ListRecipes(ctx, domain.RecipeQuery{MealTime: "Breakfast"})
		if len(recipes) != 1 || recipes[0].ID != "pancakes-1" {
			t.Fatalf("got %v, want just pancakes-1", recipes)
		}
	})

	t.Run("tags OR-match as substrings", func(t *testing.T) {
		recipes, _ := svc.ListRecipes(ctx, domain.RecipeQuery{Tags: "lunch, protein"})
		if len(recipes) != 2 {
			t.Fatalf("got %d recipes, want 2 (salad + chicken)", len(recipes))
		}
	})

	t.Run("ingredients match id or name tokens", func(t *testing.T) {
		recipes, _ := svc.ListRecipes(ctx, domain.RecipeQuery{Ingredients: "flour"})
		if len(recipes) != 1 || recipes[0].ID != "pancakes-1" {
			t.Fatalf("got %v, want just pancakes-1", recipes)
		}
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		recipes, _ := svc.ListRecipes(ctx, domain.RecipeQuery{Difficulty: "easy", MealTime: "lunch"})
		if len(recipes) != 1 || recipes[0].ID != "salad-1" {
			t.Fatalf("got %v, want just salad-1", recipes)
		}
	})

	t.Run("vegetarian dietary filter includes vegan recipes", func(t *testing.T) {
		recipes, _ := svc.ListRecipes(ctx, domain.RecipeQuery{Dietary: "vegetarian"})
		if len(recipes) != 2 {
			t.Fatalf("got %d recipes, want 2 (pancakes + vegan salad)", len(recipes))
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		broken := NewRecipeService(&stubStore{err: domain.ErrDataUnavailable})
		if _, err := broken.ListRecipes(ctx, domain.RecipeQuery{}); !errors.Is(err, domain.ErrDataUnavailable) {
			t.Errorf("error = %v, want ErrDataUnavailable", err)
		}
	})
}

func TestListRecipesSorting(t *testing.T) {
	ctx := context.Background()
	svc := newTestRecipeService()

	tests := []struct {
		name      string
		sort      string
		wantOrder []string
	}{
		{"newest by default", "", []string{"salad-1", "chicken-1", "pancakes-1", "stew-1"}},
		{"unknown value falls back to newest", "alphabetical", []string{"salad-1", "chicken-1", "pancakes-1", "stew-1"}},
		{"prep time ascending", "prep-time", []string{"salad-1", "pancakes-1", "chicken-1", "stew-1"}},
		{"difficulty easy first", "difficulty", []string{"pancakes-1", "salad-1", "chicken-1", "stew-1"}},
		{"calories ascending", "calories", []string{"salad-1", "stew-1", "chicken-1", "pancakes-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes, err := svc.ListRecipes(ctx, domain.RecipeQuery{Sort: tt.sort})
			if err != nil {
				t.Fatalf("ListRecipes() error = %v", err)
			}
			for i, wantID := range tt.wantOrder {
				if recipes[i].ID != wantID {
					t.Errorf("position %d = %s, want %s", i, recipes[i].ID, wantID)
				}
			}
		})
	}
}

func TestGetRecipe(t *testing.T) {
	ctx := context.Background()
	svc := newTestRecipeService()

	t.Run("resolves by id", func(t *testing.T) {
		detailed, err := svc.GetRecipe(ctx, "pancakes-1")
		if err != nil {
			t.Fatalf("GetRecipe() error = %v", err)
		}
		if detailed.Title != "Fluffy Pancakes" {
			t.Errorf("title = %s", detailed.Title)
		}
		if detailed.TotalNutrition.Calories != 800 {
			t.Errorf("total calories = %v, want 800", detailed.TotalNutrition.Calories)
		}
		if detailed.CaloriesPerServing != 200 {
			t.Errorf("caloriesPerServing = %d, want 200", detailed.CaloriesPerServing)
		}
		if detailed.Ingredients[0].Ingredient.Name != "All-Purpose Flour" {
			t.Errorf("resolved ingredient = %+v", detailed.Ingredients[0].Ingredient)
		}
	})

	t.Run("resolves by slug", func(t *testing.T) {
		detailed, err := svc.GetRecipe(ctx, "grilled-chicken")
		if err != nil {
			t.Fatalf("GetRecipe() error = %v", err)
		}
		if detailed.ID != "chicken-1" {
			t.Errorf("id = %s, want chicken-1", detailed.ID)
		}
	})

	t.Run("unknown identifier", func(t *testing.T) {
		if _, err := svc.GetRecipe(ctx, "nope"); !errors.Is(err, domain.ErrRecipeNotFound) {
			t.Errorf("error = %v, want ErrRecipeNotFound", err)
		}
	})

	t.Run("dangling ingredient aborts detail construction", func(t *testing.T) {
		if _, err := svc.GetRecipe(ctx, "stew-1"); !errors.Is(err, domain.ErrIngredientData) {
			t.Errorf("error = %v, want ErrIngredientData", err)
		}
	})
}

func TestScaleRecipe(t *testing.T) {
	ctx := context.Background()
	svc := newTestRecipeService()

	t.Run("doubles totals but not calories per serving", func(t *testing.T) {
		scaled, err := svc.ScaleRecipe(ctx, "pancakes-1", 8)
		if err != nil {
			t.Fatalf("ScaleRecipe() error = %v", err)
		}
		if scaled.Servings != 8 {
			t.Errorf("servings = %d, want 8", scaled.Servings)
		}
		if scaled.TotalNutrition.Calories != 1600 {
			t.Errorf("total calories = %v, want 1600", scaled.TotalNutrition.Calories)
		}
		if scaled.CaloriesPerServing != 200 {
			t.Errorf("caloriesPerServing = %d, want 200 (scale-invariant)", scaled.CaloriesPerServing)
		}
		if scaled.Ingredients[0].Amount != "4" {
			t.Errorf("flour amount = %q, want \"4\"", scaled.Ingredients[0].Amount)
		}
	})

	t.Run("fractional scale renders mixed numbers", func(t *testing.T) {
		scaled, err := svc.ScaleRecipe(ctx, "pancakes-1", 6)
		if err != nil {
			t.Fatalf("ScaleRecipe() error = %v", err)
		}
		if scaled.Ingredients[0].Amount != "3" {
			t.Errorf("flour amount = %q, want \"3\"", scaled.Ingredients[0].Amount)
		}

		scaled, err = svc.ScaleRecipe(ctx, "pancakes-1", 1)
		if err != nil {
			t.Fatalf("ScaleRecipe() error = %v", err)
		}
		if scaled.Ingredients[0].Amount != "1/2" {
			t.Errorf("flour amount = %q, want \"1/2\"", scaled.Ingredients[0].Amount)
		}
	})

	t.Run("serving bounds", func(t *testing.T) {
		for _, servings := range []int{0, -1, 51, 100} {
			if _, err := svc.ScaleRecipe(ctx, "pancakes-1", servings); !errors.Is(err, domain.ErrInvalidServings) {
				t.Errorf("ScaleRecipe(%d) error = %v, want ErrInvalidServings", servings, err)
			}
		}
		for _, servings := range []int{1, 50} {
			if _, err := svc.ScaleRecipe(ctx, "pancakes-1", servings); err != nil {
				t.Errorf("ScaleRecipe(%d) error = %v, want nil", servings, err)
			}
		}
	})

	t.Run("unknown recipe", func(t *testing.T) {
		if _, err := svc.ScaleRecipe(ctx, "nope", 4); !errors.Is(err, domain.ErrRecipeNotFound) {
			t.Errorf("error = %v, want ErrRecipeNotFound", err)
		}
	})

	t.Run("validation runs before lookup", func(t *testing.T) {
		if _, err := svc.ScaleRecipe(ctx, "nope", 0); !errors.Is(err, domain.ErrInvalidServings) {
			t.Errorf("error = %v, want ErrInvalidServings", err)
		}
	})
}
