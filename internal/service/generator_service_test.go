package service

import (
	"context"
	"errors"
	"testing"

	"ai-recipe-be/internal/config"
	"ai-recipe-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

// fakeProvider counts invocations and returns a scripted response.
type fakeProvider struct {
	calls    int
	response string
	err      error
}

func (f *fakeProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

func testAIConfig() config.AIConfig {
	return config.AIConfig{MaxTokens: 100, Temperature: 0.5, TimeoutSeconds: 5}
}

func TestGenerateEmptySelection(t *testing.T) {
	provider := &fakeProvider{response: "should not be used"}
	svc := NewGeneratorService(provider, testAIConfig())

	res := svc.Generate(context.Background(), nil)
	assert.Equal(t, EmptySelectionMessage, res.Text)
	assert.False(t, res.Fallback)
	assert.Zero(t, provider.calls, "no provider call for an empty selection")

	// Whitespace-only entries count as empty too.
	res = svc.Generate(context.Background(), []string{"  ", ""})
	assert.Equal(t, EmptySelectionMessage, res.Text)
	assert.Zero(t, provider.calls)
}

func TestGenerateProviderSuccess(t *testing.T) {
	provider := &fakeProvider{response: "Tomato Egg Scramble\n\n1. Cook it."}
	svc := NewGeneratorService(provider, testAIConfig())

	res := svc.Generate(context.Background(), []string{"tomato", "egg"})
	assert.Equal(t, provider.response, res.Text)
	assert.False(t, res.Fallback)
	assert.Equal(t, 1, provider.calls)
}

func TestGenerateProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	svc := NewGeneratorService(provider, testAIConfig())

	res := svc.Generate(context.Background(), []string{"tomato", "egg"})
	assert.True(t, res.Fallback)
	assert.Contains(t, res.Text, "tomato")
	assert.Contains(t, res.Text, "egg")
	assert.Contains(t, res.Text, "Steps:")
}

func TestGenerateProviderBlankResponse(t *testing.T) {
	provider := &fakeProvider{response: "   \n  "}
	svc := NewGeneratorService(provider, testAIConfig())

	res := svc.Generate(context.Background(), []string{"rice"})
	assert.True(t, res.Fallback)
	assert.Contains(t, res.Text, "rice")
}

func TestFallbackRecipeMentionsEveryIngredient(t *testing.T) {
	text := FallbackRecipe([]string{"chicken", "garlic", "lemon"})
	assert.Contains(t, text, "chicken")
	assert.Contains(t, text, "garlic")
	assert.Contains(t, text, "lemon")
	assert.Contains(t, text, "Ingredients: chicken, garlic, lemon")
	assert.Contains(t, text, "1. Wash and prepare all ingredients.")
}
