// Package pdf discovers PDF files in a folder and extracts their text
// page by page.
package pdf

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/paperchat/internal/core/domain"
	"github.com/custodia-labs/paperchat/internal/core/ports/driven"
	"github.com/custodia-labs/paperchat/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Loader reads PDF files from a folder.
type Loader struct {
	recursive bool
}

// Option configures the loader.
type Option func(*Loader)

// WithRecursive makes Discover walk the folder tree instead of
// scanning only the top level.
func WithRecursive(recursive bool) Option {
	return func(l *Loader) {
		l.recursive = recursive
	}
}

// New creates a new PDF loader.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Discover lists the PDF files in the folder in lexical path order.
func (l *Loader) Discover(ctx context.Context, folder string) ([]domain.Document, error) {
	info, err := os.Stat(folder)
	if err != nil {
		return nil, fmt.Errorf("%w: input folder %q: %v", domain.ErrLoadFailed, folder, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: input folder %q is not a directory", domain.ErrLoadFailed, folder)
	}

	var paths []string
	if l.recursive {
		err = filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if !d.IsDir() && isPDF(path) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: walking %q: %v", domain.ErrLoadFailed, folder, err)
		}
	} else {
		entries, err := os.ReadDir(folder)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %q: %v", domain.ErrLoadFailed, folder, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && isPDF(entry.Name()) {
				paths = append(paths, filepath.Join(folder, entry.Name()))
			}
		}
	}

	sort.Strings(paths)

	docs := make([]domain.Document, 0, len(paths))
	for _, path := range paths {
		docs = append(docs, domain.Document{
			Path:  path,
			Title: titleFromPath(path),
		})
	}

	logger.Debug("Discovered %d PDF files in %q", len(docs), folder)
	return docs, nil
}

// Load extracts the per-page text of one PDF in page order. Pages that
// yield no extractable text are returned with empty text so page
// numbering stays faithful to the document.
func (l *Loader) Load(ctx context.Context, doc domain.Document) ([]domain.Page, error) {
	f, reader, err := pdf.Open(doc.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %v", domain.ErrLoadFailed, doc.Path, err)
	}
	defer f.Close()

	total := reader.NumPage()
	pages := make([]domain.Page, 0, total)

	for n := 1; n <= total; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(n)
		if page.V.IsNull() {
			pages = append(pages, domain.Page{Source: doc.Path, Number: n})
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page is not fatal for the document.
			logger.Warn("Skipping page %d of %q: %v", n, doc.Path, err)
			pages = append(pages, domain.Page{Source: doc.Path, Number: n})
			continue
		}

		pages = append(pages, domain.Page{
			Source: doc.Path,
			Number: n,
			Text:   cleanText(text),
		})
	}

	logger.Debug("Loaded %d pages from %q", len(pages), doc.Path)
	return pages, nil
}

// isPDF matches files by extension, case-insensitively.
func isPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// titleFromPath derives a document title from the file name.
func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// cleanText keeps printable runes and collapses control characters
// that PDF extraction tends to leave behind.
func cleanText(in string) string {
	var b strings.Builder
	b.Grow(len(in))
	for _, r := range in {
		if isPrintableRune(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func isPrintableRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return true
	}
	return r >= 32
}
