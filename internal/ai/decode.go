package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Charles-pyt/Frigo-Ai/internal/recipe"
)

// decodeFoodNames parses the identify-foods response: a JSON array of
// strings, nothing else. Malformed JSON, a non-array top level, or any
// non-string element is rejected outright.
func decodeFoodNames(text string) ([]string, error) {
	raw := stripFences(text)

	var top any
	if err := json.Unmarshal([]byte(raw), &top); err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}

	arr, ok := top.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON array, got %T", top)
	}

	names := make([]string, 0, len(arr))
	for i, v := range arr {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("element %d: expected a string, got %T", i, v)
		}
		names = append(names, s)
	}
	return names, nil
}

// decodeRecipes parses the generate-recipes response: a JSON array of
// recipe objects matching the structured-output schema. Each recipe must
// carry a title; a response with more than MaxRecipes entries is
// truncated, not rejected.
func decodeRecipes(text string) ([]recipe.Recipe, error) {
	raw := stripFences(text)

	var top any
	if err := json.Unmarshal([]byte(raw), &top); err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}
	if _, ok := top.([]any); !ok {
		return nil, fmt.Errorf("expected a JSON array, got %T", top)
	}

	var recipes []recipe.Recipe
	if err := json.Unmarshal([]byte(raw), &recipes); err != nil {
		return nil, fmt.Errorf("recipe shape mismatch: %w", err)
	}

	for i, r := range recipes {
		if r.Title == "" {
			return nil, fmt.Errorf("recipe %d: missing title", i)
		}
	}

	if len(recipes) > MaxRecipes {
		recipes = recipes[:MaxRecipes]
	}
	return recipes, nil
}

// stripFences removes a markdown code fence the model sometimes wraps
// around its JSON, even when asked not to.
func stripFences(text string) string {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
