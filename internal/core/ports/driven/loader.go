package driven

import (
	"context"

	"github.com/custodia-labs/paperchat/internal/core/domain"
)

// DocumentLoader discovers documents in a folder and extracts their text.
//
// Implementations read PDF files; other formats may be added behind the
// same interface.
type DocumentLoader interface {
	// Discover lists the documents found in the folder. A missing
	// folder is an error wrapping domain.ErrLoadFailed.
	Discover(ctx context.Context, folder string) ([]domain.Document, error)

	// Load extracts the per-page text of a single document in page
	// order. A file that cannot be parsed is an error wrapping
	// domain.ErrLoadFailed; callers decide whether to skip or abort.
	Load(ctx context.Context, doc domain.Document) ([]domain.Page, error)
}
