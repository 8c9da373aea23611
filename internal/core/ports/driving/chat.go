package driving

import (
	"context"

	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/domain"
)

// ChatService answers questions from the ingested documents and
// maintains the conversation history.
type ChatService interface {
	// Answer embeds the question, retrieves the k most relevant
	// chunks, obtains a grounded answer and appends the resulting
	// turn to the session. Generation failures are absorbed into the
	// turn's answer text; embedding failures are returned and leave
	// the session unchanged.
	Answer(ctx context.Context, session *domain.ConversationSession, question string, k int) (domain.ConversationTurn, error)

	// History returns the session's turns in time order.
	History(session *domain.ConversationSession) []domain.ConversationTurn
}
