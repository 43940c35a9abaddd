package domain

import (
	"fmt"
	"time"
)

// Default settings values.
const (
	// DefaultChunkSize is the default chunk length in characters.
	DefaultChunkSize = 500

	// DefaultChunkOverlap is the default overlap between consecutive
	// chunks in characters.
	DefaultChunkOverlap = 50

	// DefaultTopK is the default number of records retrieved per query.
	DefaultTopK = 5

	// DefaultBatchSize is the default number of chunks per embedding
	// request.
	DefaultBatchSize = 100

	// DefaultWorkers is the default number of concurrent embedding
	// workers during ingestion.
	DefaultWorkers = 4

	// DefaultOllamaURL is the default Ollama API base URL.
	DefaultOllamaURL = "http://localhost:11434"

	// DefaultEmbeddingModel is the default embedding model.
	DefaultEmbeddingModel = "nomic-embed-text"

	// DefaultLLMModel is the default generation model.
	DefaultLLMModel = "llama3.2"

	// DefaultEmbedTimeoutSeconds bounds a single embedding request.
	DefaultEmbedTimeoutSeconds = 30

	// DefaultGenerateTimeoutSeconds bounds a single generation request.
	DefaultGenerateTimeoutSeconds = 120
)

// Settings holds the complete runtime configuration. It is built once
// at startup and passed explicitly into constructors; there is no
// ambient global configuration.
type Settings struct {
	// InputFolder is the directory scanned for PDF files.
	InputFolder string `toml:"input_folder"`

	// Recursive controls whether the input folder is walked
	// recursively or scanned flat.
	Recursive bool `toml:"recursive"`

	// DataDir is where the vector store database lives.
	// Empty means the default under the user config directory.
	DataDir string `toml:"data_dir"`

	// OllamaURL is the base URL of the local Ollama server.
	OllamaURL string `toml:"ollama_url"`

	// EmbeddingModel is the embedding model name.
	EmbeddingModel string `toml:"embedding_model"`

	// LLMModel is the generation model name.
	LLMModel string `toml:"llm_model"`

	// ChunkSize is the chunk length in characters.
	ChunkSize int `toml:"chunk_size"`

	// ChunkOverlap is the overlap between consecutive chunks.
	ChunkOverlap int `toml:"chunk_overlap"`

	// TopK is the number of records retrieved per query.
	TopK int `toml:"top_k"`

	// BatchSize is the number of chunks per embedding request.
	BatchSize int `toml:"batch_size"`

	// Workers is the number of concurrent embedding workers.
	Workers int `toml:"workers"`

	// EmbedRequestsPerSecond rate-limits embedding requests.
	// Zero disables the limiter.
	EmbedRequestsPerSecond float64 `toml:"embed_requests_per_second"`

	// EmbedTimeoutSeconds bounds a single embedding request.
	EmbedTimeoutSeconds int `toml:"embed_timeout_seconds"`

	// GenerateTimeoutSeconds bounds a single generation request.
	GenerateTimeoutSeconds int `toml:"generate_timeout_seconds"`
}

// EmbedTimeout returns the embedding request timeout as a duration.
func (s Settings) EmbedTimeout() time.Duration {
	return time.Duration(s.EmbedTimeoutSeconds) * time.Second
}

// GenerateTimeout returns the generation request timeout as a duration.
func (s Settings) GenerateTimeout() time.Duration {
	return time.Duration(s.GenerateTimeoutSeconds) * time.Second
}

// DefaultSettings returns settings populated with defaults.
// The input folder has no sensible default and stays empty.
func DefaultSettings() Settings {
	return Settings{
		OllamaURL:              DefaultOllamaURL,
		EmbeddingModel:         DefaultEmbeddingModel,
		LLMModel:               DefaultLLMModel,
		ChunkSize:              DefaultChunkSize,
		ChunkOverlap:           DefaultChunkOverlap,
		TopK:                   DefaultTopK,
		BatchSize:              DefaultBatchSize,
		Workers:                DefaultWorkers,
		EmbedTimeoutSeconds:    DefaultEmbedTimeoutSeconds,
		GenerateTimeoutSeconds: DefaultGenerateTimeoutSeconds,
	}
}

// Validate checks the settings for internal consistency.
// Invalid settings are fatal at startup.
func (s Settings) Validate() error {
	if s.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk_size must be positive, got %d", ErrInvalidConfig, s.ChunkSize)
	}
	if s.ChunkOverlap < 0 {
		return fmt.Errorf("%w: chunk_overlap must not be negative, got %d", ErrInvalidConfig, s.ChunkOverlap)
	}
	if s.ChunkOverlap >= s.ChunkSize {
		return fmt.Errorf("%w: chunk_overlap (%d) must be smaller than chunk_size (%d)",
			ErrInvalidConfig, s.ChunkOverlap, s.ChunkSize)
	}
	if s.TopK <= 0 {
		return fmt.Errorf("%w: top_k must be positive, got %d", ErrInvalidConfig, s.TopK)
	}
	if s.BatchSize <= 0 {
		return fmt.Errorf("%w: batch_size must be positive, got %d", ErrInvalidConfig, s.BatchSize)
	}
	if s.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, s.Workers)
	}
	if s.EmbedRequestsPerSecond < 0 {
		return fmt.Errorf("%w: embed_requests_per_second must not be negative", ErrInvalidConfig)
	}
	if s.OllamaURL == "" {
		return fmt.Errorf("%w: ollama_url must not be empty", ErrInvalidConfig)
	}
	if s.EmbeddingModel == "" {
		return fmt.Errorf("%w: embedding_model must not be empty", ErrInvalidConfig)
	}
	if s.LLMModel == "" {
		return fmt.Errorf("%w: llm_model must not be empty", ErrInvalidConfig)
	}
	return nil
}
