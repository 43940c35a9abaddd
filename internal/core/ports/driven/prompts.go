package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next
	// access. Useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptAnswer renders retrieved context and the user question
	// into the final generation prompt. The template expects two %s
	// placeholders: the concatenated context first, the question second.
	PromptAnswer = "answer"

	// PromptNoSources is the canned reply used when retrieval returns
	// nothing. This prompt has no format placeholders and is never
	// sent to the model.
	PromptNoSources = "no_sources"
)
