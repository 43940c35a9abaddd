package domain

// ScoredRecord pairs a stored record with its similarity to a query.
type ScoredRecord struct {
	// Record is the matched vector record.
	Record VectorRecord

	// Score is the cosine similarity to the query embedding.
	Score float64
}

// QueryResult is an ordered sequence of scored records, highest
// similarity first, at most top-K entries. An empty result is a valid
// state (empty collection), not an error.
type QueryResult struct {
	// Records are the matches in descending score order.
	Records []ScoredRecord
}

// Empty returns true when the query matched nothing.
func (r QueryResult) Empty() bool {
	return len(r.Records) == 0
}

// Citation identifies a source location that contributed to an answer.
type Citation struct {
	// Source is the PDF file path.
	Source string `json:"source"`

	// Page is the 1-based page number.
	Page int `json:"page"`
}

// Citations extracts the (source, page) pairs from the result,
// deduplicated, in rank order.
func (r QueryResult) Citations() []Citation {
	seen := make(map[Citation]struct{}, len(r.Records))
	citations := make([]Citation, 0, len(r.Records))
	for _, sr := range r.Records {
		c := Citation{Source: sr.Record.Source, Page: sr.Record.Page}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		citations = append(citations, c)
	}
	return citations
}

// Answer is the generated response to a question together with the
// sources it was conditioned on. Transient; rendered by the caller.
type Answer struct {
	// Question is the user question as asked.
	Question string `json:"question"`

	// Text is the generated answer, verbatim from the model apart
	// from stripped reasoning tags.
	Text string `json:"text"`

	// Citations are the deduplicated sources in rank order.
	Citations []Citation `json:"citations"`

	// NoSources is true when the collection held no relevant
	// records and no model call was made.
	NoSources bool `json:"no_sources,omitempty"`
}
