package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationSession_AppendAndHistory(t *testing.T) {
	s := NewConversationSession()
	assert.Equal(t, 0, s.Len())

	first := ConversationTurn{Question: "q1", Answer: "a1", AskedAt: time.Now()}
	s.Append(first)
	s.Append(ConversationTurn{Question: "q2", Answer: "a2"})

	history := s.History()
	require.Len(t, history, 2)
	assert.Equal(t, "q1", history[0].Question)
	assert.Equal(t, "q2", history[1].Question)
}

func TestConversationSession_HistoryIsCopy(t *testing.T) {
	s := NewConversationSession()
	s.Append(ConversationTurn{Question: "q1", Answer: "a1"})

	history := s.History()
	history[0].Answer = "tampered"

	assert.Equal(t, "a1", s.History()[0].Answer)
}

func TestConversationSession_PastTurnsUnchangedByAppend(t *testing.T) {
	s := NewConversationSession()
	s.Append(ConversationTurn{Question: "q1", Answer: "a1"})
	before := s.History()[0]

	s.Append(ConversationTurn{Question: "q2", Answer: "a2"})

	assert.Equal(t, before, s.History()[0])
	assert.Equal(t, 2, s.Len())
}

func TestConversationSession_Reset(t *testing.T) {
	s := NewConversationSession()
	s.Append(ConversationTurn{Question: "q1"})
	s.Reset()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.History())
}
