package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/paperchat/internal/core/domain"
	"github.com/custodia-labs/paperchat/internal/core/ports/driven"
	"github.com/custodia-labs/paperchat/internal/core/ports/driving"
	"github.com/custodia-labs/paperchat/internal/logger"
)

// Ensure AnswerService implements the interface.
var _ driving.Answerer = (*AnswerService)(nil)

// contextSeparator joins retrieved passages inside the prompt.
const contextSeparator = "\n\n---\n\n"

// thinkTags matches reasoning traces that some models emit before the
// actual answer.
var thinkTags = regexp.MustCompile(`(?s)<think>.*?</think>`)

// AnswerService assembles the generation prompt from retrieved records
// and runs the language model.
type AnswerService struct {
	retriever driving.Retriever
	llm       driven.LLMService
	prompts   driven.PromptStore
}

// NewAnswerService creates a new answer service.
func NewAnswerService(
	retriever driving.Retriever,
	llm driven.LLMService,
	prompts driven.PromptStore,
) *AnswerService {
	return &AnswerService{
		retriever: retriever,
		llm:       llm,
		prompts:   prompts,
	}
}

// Ask answers a question grounded on retrieved records. When nothing
// is retrieved the model is not called; the reply states that no
// relevant documents were found.
func (s *AnswerService) Ask(ctx context.Context, question string, opts driving.AskOptions) (*domain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}

	result, err := s.retriever.Retrieve(ctx, question, opts.TopK)
	if err != nil {
		return nil, err
	}

	if result.Empty() {
		logger.Info("No records retrieved; skipping generation")
		text, err := s.prompts.Load(driven.PromptNoSources)
		if err != nil {
			return nil, err
		}
		return &domain.Answer{
			Question:  question,
			Text:      text,
			Citations: []domain.Citation{},
			NoSources: true,
		}, nil
	}

	prompt, err := s.buildPrompt(result, question)
	if err != nil {
		return nil, err
	}

	logger.Section("Generation")
	logger.Debug("Prompt is %d characters over %d passages", len(prompt), len(result.Records))

	var text string
	genOpts := driven.GenerateOptions{}
	if opts.OnFragment != nil {
		text, err = s.llm.GenerateStream(ctx, prompt, genOpts, opts.OnFragment)
	} else {
		text, err = s.llm.Generate(ctx, prompt, genOpts)
	}
	if err != nil {
		return nil, err
	}

	return &domain.Answer{
		Question:  question,
		Text:      stripThinkTags(text),
		Citations: result.Citations(),
	}, nil
}

// buildPrompt renders the answer template with the ranked passages and
// the question.
func (s *AnswerService) buildPrompt(result domain.QueryResult, question string) (string, error) {
	template, err := s.prompts.Load(driven.PromptAnswer)
	if err != nil {
		return "", err
	}

	passages := make([]string, len(result.Records))
	for i, sr := range result.Records {
		passages[i] = sr.Record.Content
	}

	return fmt.Sprintf(template, strings.Join(passages, contextSeparator), question), nil
}

// stripThinkTags removes reasoning traces and trims the remainder.
func stripThinkTags(text string) string {
	return strings.TrimSpace(thinkTags.ReplaceAllString(text, ""))
}
