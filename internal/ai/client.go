// Package ai wraps the external multimodal service behind a two-operation
// client: identify foods from an image, generate recipes from a list of
// ingredient names.
//
// The service is an opaque remote collaborator. Its only contract is the
// JSON shape of each response; anything that does not parse into exactly
// the expected shape is a hard failure with no partial recovery. The
// distinction between a transport failure and a schema violation is
// logged internally but never shown to the user - both surface as the
// same retry suggestion.
package ai

import (
	"context"

	"github.com/Charles-pyt/Frigo-Ai/internal/recipe"
)

// MaxRecipes is the upper bound requested from the recipe-generation
// operation; a response carrying more is truncated.
const MaxRecipes = 3

// Client is the AI service seen by the orchestrator.
//
// Implemented by Gemini (production) and the scripted double in
// internal/testutil.
type Client interface {
	// IdentifyFoods names the food items visible in an image. mimeType is
	// the declared media type of the image bytes ("image/jpeg").
	IdentifyFoods(ctx context.Context, image []byte, mimeType string) ([]string, error)

	// GenerateRecipes proposes up to MaxRecipes recipes using the given
	// ingredient names.
	GenerateRecipes(ctx context.Context, ingredients []string) ([]recipe.Recipe, error)
}
