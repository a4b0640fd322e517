package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-recipe-be/internal/config"
	"ai-recipe-be/pkg/llm"
)

// EmptySelectionMessage is returned when no ingredients are submitted.
// No provider call is made in that case.
const EmptySelectionMessage = "Please select at least one ingredient and we will suggest a recipe for you."

// GenerationResult is what the gateway hands back. Fallback marks
// provenance: true when the text was computed locally because the
// provider failed or returned nothing usable.
type GenerationResult struct {
	Text     string
	Fallback bool
}

// IGeneratorService wraps the external text-generation provider with a
// guaranteed non-failing contract: it always returns text, never an error.
type IGeneratorService interface {
	Generate(ctx context.Context, ingredients []string) GenerationResult
}

type generatorService struct {
	provider    llm.LLMProvider
	maxTokens   int
	temperature float64
	timeout     time.Duration
}

func NewGeneratorService(provider llm.LLMProvider, cfg config.AIConfig) IGeneratorService {
	return &generatorService{
		provider:    provider,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
}

func (s *generatorService) Generate(ctx context.Context, ingredients []string) GenerationResult {
	ingredients = cleanIngredients(ingredients)
	if len(ingredients) == 0 {
		return GenerationResult{Text: EmptySelectionMessage, Fallback: false}
	}

	// One attempt, bounded by the configured timeout. The parent ctx is
	// the request context, so a client disconnect aborts the call too.
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := buildPrompt(ingredients)
	text, err := s.provider.Generate(callCtx, prompt,
		llm.WithTemperature(s.temperature),
		llm.WithMaxTokens(s.maxTokens),
	)
	if err != nil || strings.TrimSpace(text) == "" {
		return GenerationResult{Text: FallbackRecipe(ingredients), Fallback: true}
	}

	return GenerationResult{Text: text, Fallback: false}
}

func cleanIngredients(ingredients []string) []string {
	var out []string
	for _, ing := range ingredients {
		if trimmed := strings.TrimSpace(ing); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func buildPrompt(ingredients []string) string {
	return fmt.Sprintf(
		"Suggest a simple recipe that uses the following ingredients: %s. "+
			"Reply with a short title, the ingredient list with quantities, and numbered cooking steps.",
		strings.Join(ingredients, ", "),
	)
}

// FallbackRecipe builds a deterministic recipe from the ingredient list
// alone. It is used whenever the provider is unreachable or unusable.
func FallbackRecipe(ingredients []string) string {
	joined := strings.Join(ingredients, ", ")

	var b strings.Builder
	fmt.Fprintf(&b, "Simple %s Stir-Together\n\n", strings.Join(ingredients, " & "))
	fmt.Fprintf(&b, "Ingredients: %s\n\n", joined)
	b.WriteString("Steps:\n")
	b.WriteString("1. Wash and prepare all ingredients.\n")
	for i, ing := range ingredients {
		fmt.Fprintf(&b, "%d. Chop the %s and add it to a heated pan with a little oil.\n", i+2, ing)
	}
	fmt.Fprintf(&b, "%d. Season to taste, stir everything together over medium heat for 10 minutes.\n", len(ingredients)+2)
	fmt.Fprintf(&b, "%d. Serve hot.\n", len(ingredients)+3)
	return b.String()
}
