// Package cli provides the cobra command tree for paperchat.
package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/paperchat/internal/adapters/driven/config/file"
	embedollama "github.com/custodia-labs/paperchat/internal/adapters/driven/embedding/ollama"
	llmollama "github.com/custodia-labs/paperchat/internal/adapters/driven/llm/ollama"
	"github.com/custodia-labs/paperchat/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/paperchat/internal/chunker"
	"github.com/custodia-labs/paperchat/internal/core/domain"
	"github.com/custodia-labs/paperchat/internal/core/ports/driven"
	"github.com/custodia-labs/paperchat/internal/core/ports/driving"
	"github.com/custodia-labs/paperchat/internal/core/services"
	"github.com/custodia-labs/paperchat/internal/loaders/pdf"
	"github.com/custodia-labs/paperchat/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0"

var (
	configPath string
	verbose    bool
)

// Services are wired once per invocation by initServices. Tests
// replace them directly.
var (
	settings         domain.Settings
	vectorStore      driven.VectorStore
	embeddingService driven.EmbeddingService
	llmService       driven.LLMService
	ingestService    driving.Ingestor
	retrieverService driving.Retriever
	answerService    driving.Answerer
)

var rootCmd = &cobra.Command{
	Use:   "paperchat",
	Short: "Ask questions about your PDF library",
	Long: `Paperchat answers questions about a folder of PDF documents.

Documents are chunked and embedded with a local Ollama model, stored in
a local vector database, and retrieved to ground answers generated by a
local LLM. Nothing leaves your machine.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)

		switch cmd.Name() {
		case "version", "help", "completion":
			return nil
		}
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to the settings file (default ~/.paperchat/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context, so
// long-running subcommands stop on cancellation.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// initServices loads the settings and wires the adapters and services.
// It is a no-op when services are already set, so tests can inject
// their own.
func initServices() error {
	if ingestService != nil || answerService != nil {
		return nil
	}

	var err error
	settings, err = file.LoadSettings(configPath)
	if err != nil {
		return err
	}

	dataDir := settings.DataDir
	if dataDir == "" {
		configDir, err := file.DefaultConfigDir()
		if err != nil {
			return err
		}
		dataDir = filepath.Join(configDir, "data")
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening vector store: %w", err)
	}
	vectorStore = store

	embeddingService = embedollama.NewEmbeddingService(embedollama.Config{
		BaseURL:           settings.OllamaURL,
		Model:             settings.EmbeddingModel,
		Timeout:           settings.EmbedTimeout(),
		BatchSize:         settings.BatchSize,
		RequestsPerSecond: settings.EmbedRequestsPerSecond,
	})

	llmService = llmollama.NewLLMService(llmollama.LLMConfig{
		BaseURL: settings.OllamaURL,
		Model:   settings.LLMModel,
		Timeout: settings.GenerateTimeout(),
	})

	prompts, err := file.NewPromptStore("")
	if err != nil {
		return err
	}

	loader := pdf.New(pdf.WithRecursive(settings.Recursive))
	split := chunker.New(
		chunker.WithChunkSize(settings.ChunkSize),
		chunker.WithOverlap(settings.ChunkOverlap),
	)

	ingestService = services.NewIngestService(loader, split, embeddingService, vectorStore, settings)
	retrieverService = services.NewRetrieverService(embeddingService, vectorStore, settings.TopK)
	answerService = services.NewAnswerService(retrieverService, llmService, prompts)

	return nil
}
