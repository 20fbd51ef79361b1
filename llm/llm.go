// Package llm defines the text-generation port used for entity commentary,
// with a Gemini-backed implementation.
package llm

import "context"

// Generator is the text-generation backend: prompt in, text out, fallible.
type Generator interface {
	// Generate produces text for the given system and user prompts under a
	// token budget.
	Generate(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	return f(ctx, systemPrompt, userPrompt, maxTokens)
}
