package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/domain"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/ports/driven"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/ports/driving"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/logger"
)

// Ensure ChatService implements the interface.
var _ driving.ChatService = (*ChatService)(nil)

// Fixed user-facing answers for turns that never reach the model.
const (
	// NoDocumentsAnswer is returned before any documents are ingested.
	NoDocumentsAnswer = "Please upload PDF files before asking questions."

	// NoMatchAnswer is returned when retrieval finds nothing relevant.
	NoMatchAnswer = "I couldn't find any relevant information in the uploaded PDFs for your question."
)

// contextSeparator joins retrieved passages in the prompt.
const contextSeparator = "\n\n"

// ChatService answers questions grounded in the ingested documents.
type ChatService struct {
	embedding driven.EmbeddingService
	llm       driven.LLMService
	prompts   driven.PromptStore
	indexes   IndexProvider
	settings  domain.ChatSettings
}

// NewChatService creates a chat service.
func NewChatService(
	embedding driven.EmbeddingService,
	llm driven.LLMService,
	prompts driven.PromptStore,
	indexes IndexProvider,
	settings domain.ChatSettings,
) *ChatService {
	return &ChatService{
		embedding: embedding,
		llm:       llm,
		prompts:   prompts,
		indexes:   indexes,
		settings:  settings.Normalise(),
	}
}

// Answer runs the retrieval-augmented pipeline for one question:
// embed, search, assemble a grounded prompt, generate, append.
//
// Two failure classes behave differently on purpose. Embedding
// failures are returned to the caller and leave the session unchanged
// so the question can be retried. Generation failures are absorbed
// into the turn's answer text: the question stays visible in the
// history and can be re-asked.
func (s *ChatService) Answer(
	ctx context.Context, session *domain.ConversationSession, question string, k int,
) (domain.ConversationTurn, error) {
	logger.Section("Answer")
	logger.Debug("Question: %q, k=%d", question, k)

	if k <= 0 {
		return domain.ConversationTurn{}, fmt.Errorf("%w: k must be >= 1, got %d", domain.ErrInvalidArgument, k)
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.ConversationTurn{}, fmt.Errorf("%w: empty question", domain.ErrInvalidArgument)
	}

	index := s.indexes.Current()
	if index == nil || index.Len() == 0 {
		// No documents loaded: guidance answer, no service calls.
		logger.Debug("No index loaded, returning guidance")
		return s.record(session, question, NoDocumentsAnswer, nil), nil
	}

	queryVec, err := s.embedding.Embed(ctx, question)
	if err != nil {
		return domain.ConversationTurn{}, fmt.Errorf("embed question: %w", err)
	}

	retrieved, err := index.Search(ctx, queryVec, k)
	if err != nil {
		return domain.ConversationTurn{}, fmt.Errorf("search: %w", err)
	}
	logger.Debug("Retrieved %d passages", len(retrieved))

	if len(retrieved) == 0 {
		// Nothing relevant: fixed answer, skip the model call.
		return s.record(session, question, NoMatchAnswer, nil), nil
	}

	answer := s.generate(ctx, question, retrieved)
	return s.record(session, question, answer, retrieved), nil
}

// generate assembles the grounded prompt and calls the model.
// A generation failure becomes the answer text.
func (s *ChatService) generate(ctx context.Context, question string, retrieved []domain.RetrievedChunk) string {
	passages := make([]string, len(retrieved))
	for i := range retrieved {
		passages[i] = retrieved[i].Chunk.Content
	}
	contextText := strings.Join(passages, contextSeparator)

	systemPrompt, err := s.prompts.Load(driven.PromptChatSystem)
	if err != nil {
		return fmt.Sprintf("Error generating response: %v", err)
	}
	userTemplate, err := s.prompts.Load(driven.PromptChatUser)
	if err != nil {
		return fmt.Sprintf("Error generating response: %v", err)
	}

	messages := []driven.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: fmt.Sprintf(userTemplate, contextText, question)},
	}

	answer, err := s.llm.Chat(ctx, messages, driven.ChatOptions{
		Temperature: s.settings.Temperature,
	})
	if err != nil {
		logger.Warn("Generation failed: %v", err)
		return fmt.Sprintf("Error generating response: %v", err)
	}
	return answer
}

// record appends a finished turn to the session and returns it.
func (s *ChatService) record(
	session *domain.ConversationSession, question, answer string, retrieved []domain.RetrievedChunk,
) domain.ConversationTurn {
	turn := domain.ConversationTurn{
		Question:  question,
		Answer:    answer,
		Retrieved: retrieved,
		AskedAt:   time.Now(),
	}
	session.Append(turn)
	return turn
}

// History returns the session's turns in time order.
func (s *ChatService) History(session *domain.ConversationSession) []domain.ConversationTurn {
	return session.History()
}
