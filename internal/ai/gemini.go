package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"

	"github.com/Charles-pyt/Frigo-Ai/internal/recipe"
)

const identifyPrompt = `Identify every distinct food item visible in this image.
Respond with a JSON array of food names in English, nothing else.
Example: ["Tomatoes", "Milk", "Eggs"]
If no food is visible, respond with an empty array: []`

// recipeSchema is the structured-output contract for recipe generation:
// explicit field names and types for every part of a recipe.
var recipeSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"prepTime":    {Type: genai.TypeString},
			"ingredients": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":     {Type: genai.TypeString},
						"quantity": {Type: genai.TypeString},
					},
					Required: []string{"name", "quantity"},
				},
			},
			"instructions": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"title", "description", "prepTime", "ingredients", "instructions"},
	},
}

// GeminiConfig configures the Vertex AI client.
type GeminiConfig struct {
	ProjectID       string
	Location        string
	CredentialsFile string
	VisionModel     string
	RecipeModel     string
}

// Gemini implements Client on Vertex AI.
type Gemini struct {
	client *genai.Client
	vision *genai.GenerativeModel
	chef   *genai.GenerativeModel
	log    *slog.Logger
}

var _ Client = (*Gemini)(nil)

// NewGemini creates the Vertex AI client and prepares both models. The
// recipe model is pinned to JSON output with the structured schema.
func NewGemini(ctx context.Context, cfg GeminiConfig, log *slog.Logger) (*Gemini, error) {
	opts := []option.ClientOption{}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	vision := client.GenerativeModel(cfg.VisionModel)

	chef := client.GenerativeModel(cfg.RecipeModel)
	chef.GenerationConfig.ResponseMIMEType = "application/json"
	chef.GenerationConfig.ResponseSchema = recipeSchema

	if log == nil {
		log = slog.Default()
	}

	return &Gemini{client: client, vision: vision, chef: chef, log: log}, nil
}

// Close releases the underlying connection.
func (g *Gemini) Close() error {
	return g.client.Close()
}

// IdentifyFoods implements Client.
func (g *Gemini) IdentifyFoods(ctx context.Context, image []byte, mimeType string) ([]string, error) {
	const op = "identify_foods"

	img := genai.ImageData(imageFormat(mimeType), image)
	resp, err := g.vision.GenerateContent(ctx, genai.Text(identifyPrompt), img)
	if err != nil {
		g.log.Error("ai call failed", "op", op, "kind", KindTransport, "error", err)
		return nil, transportErr(op, err)
	}

	text, err := candidateText(resp)
	if err != nil {
		g.log.Error("ai response unusable", "op", op, "kind", KindSchema, "error", err)
		return nil, schemaErr(op, err)
	}

	names, err := decodeFoodNames(text)
	if err != nil {
		g.log.Error("ai response violates contract", "op", op, "kind", KindSchema, "error", err)
		return nil, schemaErr(op, err)
	}
	return names, nil
}

// GenerateRecipes implements Client.
func (g *Gemini) GenerateRecipes(ctx context.Context, ingredients []string) ([]recipe.Recipe, error) {
	const op = "generate_recipes"

	prompt := fmt.Sprintf(
		"Here is what I have in my fridge: %s.\n"+
			"Propose up to %d recipes I can cook with these ingredients.",
		strings.Join(ingredients, ", "), MaxRecipes,
	)

	resp, err := g.chef.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		g.log.Error("ai call failed", "op", op, "kind", KindTransport, "error", err)
		return nil, transportErr(op, err)
	}

	text, err := candidateText(resp)
	if err != nil {
		g.log.Error("ai response unusable", "op", op, "kind", KindSchema, "error", err)
		return nil, schemaErr(op, err)
	}

	recipes, err := decodeRecipes(text)
	if err != nil {
		g.log.Error("ai response violates contract", "op", op, "kind", KindSchema, "error", err)
		return nil, schemaErr(op, err)
	}
	return recipes, nil
}

// candidateText extracts the text of the first candidate.
func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response generated")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("response contains no text parts")
	}
	return b.String(), nil
}

// imageFormat maps a declared media type to the bare format the SDK
// wants ("image/jpeg" -> "jpeg").
func imageFormat(mimeType string) string {
	if f, ok := strings.CutPrefix(mimeType, "image/"); ok {
		return f
	}
	return mimeType
}
