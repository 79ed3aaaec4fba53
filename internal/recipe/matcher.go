package recipe

import (
	"strings"

	"golang.org/x/text/cases"
)

// MatchesItem reports whether any ingredient name contains the item name
// as a case-insensitive substring.
//
// Substring semantics are intentionally lenient: "Tomate" matches
// "tomates cerises". Comparison uses Unicode case folding, not ASCII
// lowercasing, so "Œufs" matches "œufs".
func MatchesItem(r Recipe, itemName string) bool {
	fold := cases.Fold()
	needle := fold.String(itemName)
	for _, ing := range r.Ingredients {
		if strings.Contains(fold.String(ing.Name), needle) {
			return true
		}
	}
	return false
}

// AssociatedRecipes returns the subsequence of recipes that reference the
// item, preserving the original order. Returns an empty (non-nil) slice
// when nothing matches.
func AssociatedRecipes(itemName string, recipes []Recipe) []Recipe {
	matched := make([]Recipe, 0)
	for _, r := range recipes {
		if MatchesItem(r, itemName) {
			matched = append(matched, r)
		}
	}
	return matched
}
