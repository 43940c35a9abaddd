package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the store contents and Ollama connectivity",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if vectorStore == nil {
		return errors.New("vector store not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cmd.Println("Paperchat Status")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Documents]")
	cmd.Printf("  Input folder: %s\n", settings.InputFolder)
	count, err := vectorStore.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}
	cmd.Printf("  Stored chunks: %d\n", count)
	cmd.Println()

	cmd.Println("[Ollama]")
	cmd.Printf("  URL: %s\n", settings.OllamaURL)
	cmd.Printf("  Embedding model: %s\n", embeddingService.ModelName())
	cmd.Printf("  LLM model: %s\n", llmService.ModelName())
	if err := embeddingService.Ping(ctx); err != nil {
		cmd.Printf("  Server: unreachable (%v)\n", err)
	} else {
		cmd.Printf("  Server: reachable\n")
	}

	return nil
}
