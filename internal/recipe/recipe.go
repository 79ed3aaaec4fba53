// Package recipe defines the recipe entity produced by the AI service and
// the matcher that cross-references recipes back to inventory items.
package recipe

// Ingredient is one line of a recipe's ingredient list. Quantity is
// free text ("200 g", "a pinch"), not a structured unit.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// Recipe is a single generated recipe.
//
// Recipes only ever come from the recipe-generation call; they are never
// persisted beyond the session, and each successful generation replaces
// the previous set wholesale.
type Recipe struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	PrepTime     string       `json:"prepTime"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
}
