package domain

// ShoppingListItem is one aggregated ingredient line. TotalAmount is the
// merged quantity expressed in Unit; OriginalUnit is the unit the merge
// group was first seen in.
type ShoppingListItem struct {
	IngredientID string   `json:"ingredientId"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	TotalAmount  float64  `json:"totalAmount"`
	Unit         string   `json:"unit"`
	OriginalUnit string   `json:"originalUnit"`
	Recipes      []string `json:"recipes"`
	RecipeNames  []string `json:"recipeNames"`
}

// ShoppingList is a fully derived aggregation result. It has no lifecycle of
// its own; callers may persist it if they want to.
type ShoppingList struct {
	ID                string                        `json:"id"`
	Items             []ShoppingListItem            `json:"items"`
	RecipeIDs         []string                      `json:"recipeIds"`
	RecipeNames       []string                      `json:"recipeNames"`
	CreatedAt         string                        `json:"createdAt"`
	GroupedByCategory map[string][]ShoppingListItem `json:"groupedByCategory"`
}
