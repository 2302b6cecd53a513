package usecase

import (
	"math"
	"strings"

	"github.com/pantryplan/backend/internal/domain"
)

// Conversion constants for the category multiplier rules.
const (
	gramsPerPound     = 454
	gramsPerOunce     = 28.35
	millilitersPerCup = 240
	teaspoonsPerTbsp  = 3
	baseGrams         = 100
	baseMilliliters   = 100
)

// ingredientNutrition computes the nutrition one usage contributes. Catalog
// nutrition figures are recorded per a category-specific base unit, so the
// parsed amount is adjusted by a category/unit rule before multiplying:
//
//	dairy/meat/seafood/protein    per 100g   (g, lb, oz converted to 100g portions)
//	baking/grain/cereal/pasta     per cup    (lb converted through grams; the
//	                                          per-100g figure is what the dataset
//	                                          records for pasta sold by weight)
//	dairy-alternative             per 100ml  (ml, cup)
//	oil/condiment/sweetener/spice per tbsp   (tbsp, tsp)
//	vegetable/fruit/herb/seaweed  per piece  (count-like units and cups pass through)
//	legume                        per can
//
// Units and categories outside the table fall through with no scaling. These
// rules are a heuristic tuned to this dataset's vocabulary, not a general
// unit system; expected outputs are defined by the table as written.
func ingredientNutrition(usage domain.RecipeIngredient, ingredient domain.Ingredient) domain.Nutrition {
	amount := parseAmount(usage.Amount)
	unit := strings.ToLower(usage.Unit)

	multiplier := amount

	switch ingredient.Category {
	case "dairy", "meat", "seafood", "protein":
		switch unit {
		case "g", "grams":
			multiplier = amount / baseGrams
		case "lb", "pound":
			multiplier = amount * gramsPerPound / baseGrams
		case "oz", "ounce":
			multiplier = amount * gramsPerOunce / baseGrams
		}

	case "baking", "grain", "cereal", "pasta":
		switch unit {
		case "cup", "cups":
			multiplier = amount
		case "lb", "pound":
			multiplier = amount * gramsPerPound / baseGrams
		}

	case "dairy-alternative":
		switch unit {
		case "ml", "milliliter":
			multiplier = amount / baseMilliliters
		case "cup", "cups":
			multiplier = amount * millilitersPerCup / baseMilliliters
		}

	case "oil", "condiment", "sweetener", "spice":
		switch unit {
		case "tbsp", "tablespoon":
			multiplier = amount
		case "tsp", "teaspoon":
			multiplier = amount / teaspoonsPerTbsp
		}

	case "vegetable", "fruit", "herb", "seaweed":
		switch unit {
		case "large", "medium", "small", "whole", "head", "leaves", "sheets", "pieces":
			multiplier = amount
		case "cup", "cups":
			multiplier = amount
		}

	case "legume":
		if unit == "can" {
			multiplier = amount
		}
	}

	base := ingredient.Nutrition
	return domain.Nutrition{
		Calories: base.Calories * multiplier,
		Protein:  base.Protein * multiplier,
		Carbs:    base.Carbs * multiplier,
		Fat:      base.Fat * multiplier,
	}
}

// recipeNutrition sums ingredient contributions across a recipe. Usages
// whose ingredient id does not resolve are skipped so that list views stay
// available even when the catalog has a hole; detail construction handles
// the same situation by failing instead.
func recipeNutrition(recipe domain.Recipe, catalog map[string]domain.Ingredient) domain.Nutrition {
	var total domain.Nutrition

	for _, usage := range recipe.Ingredients {
		ingredient, ok := catalog[usage.IngredientID]
		if !ok {
			continue
		}
		n := ingredientNutrition(usage, ingredient)
		total.Calories += n.Calories
		total.Protein += n.Protein
		total.Carbs += n.Carbs
		total.Fat += n.Fat
	}

	return total
}

// caloriesPerServing derives the per-serving figure from recipe totals.
func caloriesPerServing(total domain.Nutrition, servings int) int {
	if servings <= 0 {
		return 0
	}
	return int(math.Round(total.Calories / float64(servings)))
}
