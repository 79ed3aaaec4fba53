package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tarte() Recipe {
	return Recipe{
		Title: "Tarte aux tomates",
		Ingredients: []Ingredient{
			{Name: "Tomates cerises", Quantity: "300 g"},
			{Name: "Pâte brisée", Quantity: "1"},
		},
	}
}

func omelette() Recipe {
	return Recipe{
		Title: "Omelette",
		Ingredients: []Ingredient{
			{Name: "œufs", Quantity: "3"},
			{Name: "Beurre", Quantity: "20 g"},
		},
	}
}

func TestMatchesItem_CaseInsensitiveSubstring(t *testing.T) {
	assert.True(t, MatchesItem(tarte(), "tomate"), "singular should match plural ingredient")
	assert.True(t, MatchesItem(tarte(), "TOMATES CERISES"))
	assert.False(t, MatchesItem(tarte(), "courgette"))
}

func TestMatchesItem_UnicodeFolding(t *testing.T) {
	assert.True(t, MatchesItem(omelette(), "Œufs"), "folded comparison should match ligature case")
}

func TestMatchesItem_TitleDoesNotCount(t *testing.T) {
	// Only ingredient names are searched; a hit in the title alone is not
	// an association.
	r := Recipe{Title: "Soupe de tomates", Ingredients: []Ingredient{{Name: "Carottes"}}}
	assert.False(t, MatchesItem(r, "tomate"))
}

func TestAssociatedRecipes_PreservesOrder(t *testing.T) {
	both := Recipe{
		Title:       "Shakshuka",
		Ingredients: []Ingredient{{Name: "Tomates"}, {Name: "Œufs"}},
	}
	recipes := []Recipe{tarte(), omelette(), both}

	got := AssociatedRecipes("tomate", recipes)
	require.Len(t, got, 2)
	assert.Equal(t, "Tarte aux tomates", got[0].Title)
	assert.Equal(t, "Shakshuka", got[1].Title)
}

func TestAssociatedRecipes_NoMatchIsEmpty(t *testing.T) {
	got := AssociatedRecipes("chocolat", []Recipe{tarte(), omelette()})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAssociatedRecipes_EmptyInput(t *testing.T) {
	assert.Empty(t, AssociatedRecipes("tomate", nil))
}
