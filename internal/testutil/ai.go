package testutil

import (
	"context"

	"github.com/Charles-pyt/Frigo-Ai/internal/recipe"
)

// ScriptedAI is an ai.Client double with canned responses.
//
// Call counters let tests assert that a gated or failed operation issued
// zero calls to the external service.
type ScriptedAI struct {
	FoodNames     []string
	FoodsErr      error
	Recipes       []recipe.Recipe
	RecipesErr    error
	IdentifyCalls int
	RecipeCalls   int
}

// IdentifyFoods returns the scripted names or error.
func (s *ScriptedAI) IdentifyFoods(ctx context.Context, image []byte, mimeType string) ([]string, error) {
	s.IdentifyCalls++
	if s.FoodsErr != nil {
		return nil, s.FoodsErr
	}
	return s.FoodNames, nil
}

// GenerateRecipes returns the scripted recipes or error.
func (s *ScriptedAI) GenerateRecipes(ctx context.Context, ingredients []string) ([]recipe.Recipe, error) {
	s.RecipeCalls++
	if s.RecipesErr != nil {
		return nil, s.RecipesErr
	}
	return s.Recipes, nil
}
