package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/paperchat/internal/core/ports/driving"
	"github.com/custodia-labs/paperchat/internal/logger"
)

var (
	ingestReset bool
	ingestWatch bool
	ingestJSON  bool
)

// debounce delay between a filesystem event and the triggered
// re-ingestion, so bulk copies settle first.
const watchDebounce = 2 * time.Second

var ingestCmd = &cobra.Command{
	Use:   "ingest [paths...]",
	Short: "Ingest PDF documents into the vector store",
	Long: `Extracts text from PDF files, splits it into overlapping chunks,
embeds the chunks with the configured Ollama model and stores them in
the local vector database.

Without arguments the configured input folder is scanned. Explicit
paths ingest only those files. Chunks already present in the store are
skipped, so re-running after adding documents only processes what is
new.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestReset, "reset", false, "clear the vector store before ingesting")
	ingestCmd.Flags().BoolVar(&ingestWatch, "watch", false, "keep running and re-ingest when the input folder changes")
	ingestCmd.Flags().BoolVar(&ingestJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if ingestReset {
		cmd.Println("Clearing the vector store...")
		if err := ingestService.Reset(ctx); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
	}

	if err := ingestOnce(ctx, cmd, args); err != nil {
		return err
	}

	if ingestWatch {
		return watchAndIngest(ctx, cmd)
	}
	return nil
}

func ingestOnce(ctx context.Context, cmd *cobra.Command, paths []string) error {
	report, err := ingestService.Ingest(ctx, driving.IngestOptions{Paths: paths})
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	if ingestJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Ingested %d documents (%d pages, %d chunks)\n",
		report.Documents, report.Pages, report.Chunks)
	cmd.Printf("  Added:   %d\n", report.Added)
	cmd.Printf("  Skipped: %d (already stored)\n", report.Skipped)
	if len(report.Failures) > 0 {
		cmd.Printf("  Failed:  %d\n", len(report.Failures))
		for _, failure := range report.Failures {
			cmd.Printf("    %s\n", failure)
		}
	}
	cmd.Printf("Done in %s.\n", report.Duration.Round(time.Millisecond))
	return nil
}

// watchAndIngest blocks watching the input folder and re-ingests after
// each burst of changes. It returns when the context is cancelled.
func watchAndIngest(ctx context.Context, cmd *cobra.Command) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, settings.InputFolder, settings.Recursive); err != nil {
		return err
	}

	cmd.Printf("Watching %s for changes (Ctrl+C to stop)...\n", settings.InputFolder)

	// The timer is armed by events and fires once the folder has been
	// quiet for the debounce window.
	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if settings.Recursive {
				watchIfNewDir(watcher, event)
			}
			if !relevantEvent(event) {
				continue
			}
			logger.Debug("Change detected: %s", event)
			debounce.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)

		case <-debounce.C:
			if err := ingestOnce(ctx, cmd, nil); err != nil {
				logger.Warn("Re-ingestion failed: %v", err)
			}
		}
	}
}

// relevantEvent reports whether the event can change the PDF corpus.
func relevantEvent(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	return strings.EqualFold(filepath.Ext(event.Name), ".pdf")
}

// watchIfNewDir adds a freshly created directory to the watcher, so
// PDFs dropped into new subfolders are picked up without a restart.
func watchIfNewDir(watcher *fsnotify.Watcher, event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) {
		return
	}
	info, err := os.Stat(event.Name)
	if err != nil || !info.IsDir() {
		return
	}
	if err := watcher.Add(event.Name); err != nil {
		logger.Warn("Watching new folder %q failed: %v", event.Name, err)
	}
}

// addWatchDirs registers the folder, and its subfolders when
// recursive, with the watcher.
func addWatchDirs(watcher *fsnotify.Watcher, folder string, recursive bool) error {
	if err := watcher.Add(folder); err != nil {
		return fmt.Errorf("watching %q: %w", folder, err)
	}
	if !recursive {
		return nil
	}

	return filepath.WalkDir(folder, func(path string, d os.DirEntry, err error) error {
		if err != nil || !d.IsDir() || path == folder {
			return err
		}
		return watcher.Add(path)
	})
}
