package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/pantryplan/backend/internal/domain"
)

// ShoppingListService aggregates ingredient usages across selected recipes
// into a single unit-normalized shopping list.
type ShoppingListService struct {
	store domain.RecipeStore
	now   func() time.Time
}

// NewShoppingListService creates a shopping list service backed by the store.
func NewShoppingListService(store domain.RecipeStore) *ShoppingListService {
	return &ShoppingListService{
		store: store,
		now:   time.Now,
	}
}

// usage is one ingredient occurrence collected from a selected recipe, with
// the serving adjustment already applied.
type usage struct {
	amount     float64
	unit       string
	recipeID   string
	recipeName string
}

// unitGroup accumulates usages whose units are mutually convertible. Amounts
// are converted to the representative unit (the first one seen) as they join.
type unitGroup struct {
	unit        string
	amount      float64
	recipeIDs   []string
	recipeNames []string
}

// GenerateShoppingList resolves the selected recipes and merges their
// ingredient usages. Unknown recipe ids are skipped; an empty selection is
// rejected outright.
func (s *ShoppingListService) GenerateShoppingList(ctx context.Context, recipeIDs []string, servingAdjustments map[string]float64) (*domain.ShoppingList, error) {
	if len(recipeIDs) == 0 {
		return nil, domain.ErrEmptySelection
	}

	data, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	recipeByID := make(map[string]domain.Recipe, len(data.Recipes))
	for _, r := range data.Recipes {
		recipeByID[r.ID] = r
	}

	var selected []domain.Recipe
	for _, id := range recipeIDs {
		if recipe, ok := recipeByID[id]; ok {
			selected = append(selected, recipe)
		}
	}

	items := aggregateIngredients(selected, ingredientIndex(data.Ingredients), servingAdjustments)

	now := s.now()
	list := &domain.ShoppingList{
		ID:                fmt.Sprintf("shopping-list-%d", now.UnixMilli()),
		Items:             items,
		RecipeIDs:         make([]string, 0, len(selected)),
		RecipeNames:       make([]string, 0, len(selected)),
		CreatedAt:         now.UTC().Format(time.RFC3339),
		GroupedByCategory: groupByCategory(items),
	}
	for _, r := range selected {
		list.RecipeIDs = append(list.RecipeIDs, r.ID)
		list.RecipeNames = append(list.RecipeNames, r.Title)
	}

	return list, nil
}

// aggregateIngredients merges usages across recipes. Per ingredient, usages
// are partitioned into unit-compatibility groups in encounter order: a usage
// joins the first group it can convert into, otherwise it starts a new one.
// Each group then becomes one item, reported in the category-preferred
// display unit among the raw units that fed it.
func aggregateIngredients(recipes []domain.Recipe, catalog map[string]domain.Ingredient, servingAdjustments map[string]float64) []domain.ShoppingListItem {
	var ingredientOrder []string
	usagesByIngredient := make(map[string][]usage)

	for _, recipe := range recipes {
		multiplier := servingAdjustments[recipe.ID]
		if multiplier == 0 {
			multiplier = 1
		}

		for _, ri := range recipe.Ingredients {
			ingredient, ok := catalog[ri.IngredientID]
			if !ok {
				continue
			}
			if _, seen := usagesByIngredient[ingredient.ID]; !seen {
				ingredientOrder = append(ingredientOrder, ingredient.ID)
			}
			usagesByIngredient[ingredient.ID] = append(usagesByIngredient[ingredient.ID], usage{
				amount:     parseAmount(ri.Amount) * multiplier,
				unit:       ri.Unit,
				recipeID:   recipe.ID,
				recipeName: recipe.Title,
			})
		}
	}

	var items []domain.ShoppingListItem
	for _, ingredientID := range ingredientOrder {
		ingredient := catalog[ingredientID]
		usages := usagesByIngredient[ingredientID]

		groups := groupByUnit(usages, ingredient.Category)

		for _, group := range groups {
			displayUnit := chooseDisplayUnit(groupRawUnits(usages, group.unit, ingredient.Category), ingredient.Category)
			amount, unit := convertUnits(group.amount, group.unit, displayUnit, ingredient.Category)

			items = append(items, domain.ShoppingListItem{
				IngredientID: ingredient.ID,
				Name:         ingredient.Name,
				Category:     ingredient.Category,
				TotalAmount:  math.Round(amount*100) / 100,
				Unit:         unit,
				OriginalUnit: group.unit,
				Recipes:      group.recipeIDs,
				RecipeNames:  group.recipeNames,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items
}

// groupByUnit partitions one ingredient's usages into convertibility groups,
// summing amounts in each group's representative unit and de-duplicating the
// contributing recipes.
func groupByUnit(usages []usage, category string) []*unitGroup {
	var groups []*unitGroup

	for _, u := range usages {
		var target *unitGroup
		converted := u.amount

		for _, g := range groups {
			if unitsConvertible(u.unit, g.unit, category) {
				converted, _ = convertUnits(u.amount, u.unit, g.unit, category)
				target = g
				break
			}
		}

		if target == nil {
			target = &unitGroup{unit: u.unit}
			groups = append(groups, target)
		}

		target.amount += converted
		if !containsString(target.recipeIDs, u.recipeID) {
			target.recipeIDs = append(target.recipeIDs, u.recipeID)
			target.recipeNames = append(target.recipeNames, u.recipeName)
		}
	}

	return groups
}

// groupRawUnits collects the distinct raw units among an ingredient's usages
// that are convertible with the group's representative unit, preserving
// first-seen order for the display preference scan.
func groupRawUnits(usages []usage, groupUnit, category string) []string {
	var units []string
	seen := make(map[string]bool)
	for _, u := range usages {
		if !unitsConvertible(u.unit, groupUnit, category) {
			continue
		}
		if !seen[u.unit] {
			seen[u.unit] = true
			units = append(units, u.unit)
		}
	}
	return units
}

// groupByCategory buckets items by ingredient category, defaulting to
// "other", with each bucket sorted by name.
func groupByCategory(items []domain.ShoppingListItem) map[string][]domain.ShoppingListItem {
	grouped := make(map[string][]domain.ShoppingListItem)

	for _, item := range items {
		category := item.Category
		if category == "" {
			category = "other"
		}
		grouped[category] = append(grouped[category], item)
	}

	for _, bucket := range grouped {
		sort.SliceStable(bucket, func(i, j int) bool {
			return strings.ToLower(bucket[i].Name) < strings.ToLower(bucket[j].Name)
		})
	}

	return grouped
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
