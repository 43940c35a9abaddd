package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/paperchat/internal/core/domain"
	"github.com/custodia-labs/paperchat/internal/core/ports/driving"
)

var (
	askTopK   int
	askJSON   bool
	askStream bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the ingested documents",
	Long: `Answers a question grounded on the ingested PDF documents.

The question is embedded, the most similar chunks are retrieved from
the vector store, and the configured Ollama model generates an answer
from them. Each answer lists the source pages it was grounded on.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "number of chunks to retrieve (0 = configured default)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	askCmd.Flags().BoolVar(&askStream, "stream", false, "print the answer as it is generated")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]

	if answerService == nil {
		return errors.New("answer service not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts := driving.AskOptions{TopK: askTopK}

	// Streaming prints fragments as they arrive; JSON needs the
	// complete answer, so the two are mutually exclusive.
	if askStream && !askJSON {
		opts.OnFragment = func(fragment string) {
			cmd.Print(fragment)
		}
	}

	answer, err := answerService.Ask(ctx, question, opts)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		return outputAnswerJSON(cmd, answer)
	}
	return outputAnswerText(cmd, answer, opts.OnFragment != nil)
}

func outputAnswerJSON(cmd *cobra.Command, answer *domain.Answer) error {
	data, err := json.MarshalIndent(answer, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnswerText(cmd *cobra.Command, answer *domain.Answer, streamed bool) error {
	if streamed && !answer.NoSources {
		// Fragments were already printed; just terminate the line.
		cmd.Println()
	} else {
		// No-sources answers skip the model, so nothing was streamed
		// and the canned reply still has to be printed.
		cmd.Println(answer.Text)
	}

	if len(answer.Citations) > 0 {
		cmd.Println()
		cmd.Println("Sources:")
		for _, citation := range answer.Citations {
			cmd.Printf("  %s, page %d\n", citation.Source, citation.Page)
		}
	}
	return nil
}
