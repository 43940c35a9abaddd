package driving

import (
	"context"

	"github.com/custodia-labs/paperchat/internal/core/domain"
)

// Retriever finds the stored records most similar to a query string.
type Retriever interface {
	// Retrieve embeds the query and searches the vector store.
	// topK <= 0 means the configured default. An empty collection
	// yields an empty result, not an error.
	Retrieve(ctx context.Context, query string, topK int) (domain.QueryResult, error)
}

// Answerer produces a grounded answer to a user question.
type Answerer interface {
	// Ask retrieves relevant records, assembles the prompt and runs
	// generation. When nothing is retrieved it returns an answer
	// stating that no relevant documents were found, without calling
	// the model.
	Ask(ctx context.Context, question string, opts AskOptions) (*domain.Answer, error)
}

// AskOptions configures a single question.
type AskOptions struct {
	// TopK overrides the configured number of retrieved records.
	// Zero means the configured default.
	TopK int

	// OnFragment, when set, receives answer fragments as the model
	// streams them. The final answer text is always returned whole.
	OnFragment func(string)
}
