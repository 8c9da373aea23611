package cli

import (
	"context"
	"time"

	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/domain"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/ports/driving"
)

// mockIngestService records ingested batches.
type mockIngestService struct {
	report  *driving.IngestReport
	err     error
	batches [][]domain.RawDocument
	docs    []domain.Document
}

func (m *mockIngestService) Ingest(_ context.Context, raws []domain.RawDocument) (*driving.IngestReport, error) {
	m.batches = append(m.batches, raws)
	if m.err != nil {
		return nil, m.err
	}
	if m.report != nil {
		return m.report, nil
	}
	return &driving.IngestReport{}, nil
}

func (m *mockIngestService) Documents() []domain.Document {
	return m.docs
}

// mockChatService returns a canned turn and records the questions asked.
type mockChatService struct {
	turn  domain.ConversationTurn
	err   error
	asked []string
	ks    []int
}

func (m *mockChatService) Answer(
	_ context.Context, session *domain.ConversationSession, question string, k int,
) (domain.ConversationTurn, error) {
	m.asked = append(m.asked, question)
	m.ks = append(m.ks, k)
	if m.err != nil {
		return domain.ConversationTurn{}, m.err
	}
	turn := m.turn
	if turn.Question == "" {
		turn.Question = question
	}
	turn.AskedAt = time.Now()
	session.Append(turn)
	return turn, nil
}

func (m *mockChatService) History(session *domain.ConversationSession) []domain.ConversationTurn {
	return session.History()
}

// setupTestServices injects mocks into the command wiring and returns
// a cleanup that restores the previous state.
func setupTestServices(ingest *mockIngestService, chat *mockChatService) func() {
	oldIngest, oldChat := ingestService, chatService
	oldSession, oldSettings := session, chatSettings

	SetServices(ingest, chat, domain.NewConversationSession(), domain.ChatSettings{
		Temperature: domain.DefaultTemperature,
		TopK:        domain.DefaultTopK,
	})

	return func() {
		ingestService = oldIngest
		chatService = oldChat
		session = oldSession
		chatSettings = oldSettings
	}
}
