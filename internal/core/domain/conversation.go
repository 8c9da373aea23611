package domain

import (
	"sync"
	"time"
)

// ConversationTurn is one question/answer exchange. A turn is recorded
// even when the answer is a fixed guidance message or an absorbed
// generation error, so the history always reflects what the user saw.
type ConversationTurn struct {
	// Question is the user's question as asked.
	Question string

	// Answer is the displayed answer text.
	Answer string

	// Retrieved are the passages the answer was grounded in, ranked.
	// Empty for turns that never reached retrieval.
	Retrieved []RetrievedChunk

	// AskedAt is when the question was asked.
	AskedAt time.Time
}

// ConversationSession holds the append-only turn history for one
// document set. Safe for concurrent use.
type ConversationSession struct {
	mu    sync.RWMutex
	turns []ConversationTurn
}

// NewConversationSession creates an empty session.
func NewConversationSession() *ConversationSession {
	return &ConversationSession{}
}

// Append adds a finished turn to the history.
func (s *ConversationSession) Append(turn ConversationTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, turn)
}

// History returns the turns in time order. The returned slice is a
// copy; mutating it does not affect the session.
func (s *ConversationSession) History() []ConversationTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ConversationTurn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of recorded turns.
func (s *ConversationSession) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}

// Reset clears the history. Called when the document set is replaced,
// since old turns refer to documents that no longer exist.
func (s *ConversationSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
}
