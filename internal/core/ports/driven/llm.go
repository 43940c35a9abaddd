package driven

import "context"

// LLMService provides language model generation.
//
// Implementations may include:
//   - Ollama (local models)
//   - LM Studio or other local inference servers
type LLMService interface {
	// Generate produces a text completion from a prompt, blocking
	// until the model finishes or errors.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// GenerateStream produces a completion incrementally, invoking
	// onFragment for each text fragment in order. The concatenation
	// of all fragments equals the full completion.
	GenerateStream(ctx context.Context, prompt string, opts GenerateOptions, onFragment func(string)) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// StopWords are sequences that stop generation when encountered.
	StopWords []string
}
