package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all ingested documents from the vector store",
	Long: `Deletes every record from the vector store. The PDF files
themselves are not touched; re-running ingest rebuilds the store.

This is destructive and requires --force.`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "confirm deletion of all records")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	if !resetForce {
		return errors.New("refusing to clear the vector store without --force")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := ingestService.Reset(ctx); err != nil {
		return err
	}

	cmd.Println("Vector store cleared.")
	return nil
}
