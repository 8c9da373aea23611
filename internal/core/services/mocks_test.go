package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/domain"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockEmbeddingService implements driven.EmbeddingService for testing.
// It maps each text to a deterministic unit vector so tests can steer
// retrieval: the vector for a text is looked up in vectors, falling
// back to fallback.
type mockEmbeddingService struct {
	vectors    map[string][]float32
	fallback   []float32
	embedErr   error
	embedCalls int
	batchCalls int
}

func (m *mockEmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	m.embedCalls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	return m.vectorFor(text), nil
}

func (m *mockEmbeddingService) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.batchCalls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = m.vectorFor(text)
	}
	return out, nil
}

func (m *mockEmbeddingService) vectorFor(text string) []float32 {
	if v, ok := m.vectors[text]; ok {
		return v
	}
	if m.fallback != nil {
		return m.fallback
	}
	return []float32{1, 0, 0}
}

func (m *mockEmbeddingService) Dimensions() int       { return 3 }
func (m *mockEmbeddingService) ModelName() string     { return "mock-embed" }
func (m *mockEmbeddingService) Ping(context.Context) error { return nil }
func (m *mockEmbeddingService) Close() error          { return nil }

// mockLLMService implements driven.LLMService for testing.
type mockLLMService struct {
	response  string
	chatErr   error
	chatCalls int
	messages  []driven.ChatMessage
	options   driven.ChatOptions
}

func (m *mockLLMService) Generate(_ context.Context, _ string, _ driven.GenerateOptions) (string, error) {
	if m.chatErr != nil {
		return "", m.chatErr
	}
	return m.response, nil
}

func (m *mockLLMService) Chat(_ context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	m.chatCalls++
	m.messages = messages
	m.options = opts
	if m.chatErr != nil {
		return "", m.chatErr
	}
	return m.response, nil
}

func (m *mockLLMService) ModelName() string          { return "mock-llm" }
func (m *mockLLMService) Ping(context.Context) error { return nil }
func (m *mockLLMService) Close() error               { return nil }

// mockPromptStore implements driven.PromptStore with fixed templates.
type mockPromptStore struct {
	prompts map[string]string
	loadErr error
}

func (m *mockPromptStore) Load(name string) (string, error) {
	if m.loadErr != nil {
		return "", m.loadErr
	}
	if p, ok := m.prompts[name]; ok {
		return p, nil
	}
	return "", fmt.Errorf("prompt %q not found", name)
}

func (m *mockPromptStore) Reload() {}

func testPrompts() *mockPromptStore {
	return &mockPromptStore{prompts: map[string]string{
		driven.PromptChatSystem: "Answer only from the supplied context.",
		driven.PromptChatUser:   "Context:\n%s\n\nQuestion: %s",
	}}
}

// mockExtractor implements driven.Extractor, recognising files by
// extension and serving canned text per filename.
type mockExtractor struct {
	ext   string
	texts map[string]string
	pages map[string]int
	err   error
}

func (m *mockExtractor) Supports(name, _ string) bool {
	return strings.HasSuffix(name, m.ext)
}

func (m *mockExtractor) Extract(_ context.Context, raw *domain.RawDocument) (*driven.ExtractResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	text, ok := m.texts[raw.Name]
	if !ok {
		text = string(raw.Content)
	}
	pages := m.pages[raw.Name]
	if pages == 0 {
		pages = 1
	}
	return &driven.ExtractResult{Text: text, PageCount: pages}, nil
}

// staticIndexProvider serves a fixed index to the chat service.
type staticIndexProvider struct {
	index driven.VectorIndex
}

func (p *staticIndexProvider) Current() driven.VectorIndex { return p.index }
