// Package tui implements the interactive chat interface using Bubble Tea.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/domain"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/ports/driving"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	summaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	chatBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	sourceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// answerMsg carries the outcome of one question back into the update loop.
type answerMsg struct {
	turn domain.ConversationTurn
	err  error
}

// Model is the Bubble Tea model for the chat session.
type Model struct {
	chat    driving.ChatService
	session *domain.ConversationSession
	topK    int

	input    textinput.Model
	viewport viewport.Model
	summary  string
	status   string
	thinking bool
	ready    bool
	width    int
}

// New creates a new chat TUI model bound to an existing session.
func New(chat driving.ChatService, session *domain.ConversationSession, docs []domain.Document, topK int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question about your documents"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)

	return Model{
		chat:     chat,
		session:  session,
		topK:     topK,
		input:    ti,
		viewport: vp,
		summary:  describeDocuments(docs),
		status:   "Ready. Type a question and press Enter. Esc or Ctrl+C to quit.",
	}
}

// Init initialises the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		_, ch := chatBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 2 + 1 + ih + 1 // header+summary, spacer, input frame, status
		vh := msg.Height - reserved - ch
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width-4)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderConversation())
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if msg.String() == "enter" && !m.thinking {
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				return m, nil
			}
			m.input.Reset()
			m.thinking = true
			m.status = "Thinking..."
			return m, m.ask(question)
		}

	case answerMsg:
		m.thinking = false
		if msg.err != nil {
			m.status = errorStyle.Render("Error: " + msg.err.Error())
		} else {
			m.status = fmt.Sprintf("Answered using %d passages. Ask another question.", len(msg.turn.Retrieved))
		}
		m.viewport.SetContent(m.renderConversation())
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("PDF Chat")
	summary := summaryStyle.Render(m.summary)
	conversation := chatBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + summary + "\n" + conversation + "\n" + input + "\n" + status
}

// ask runs the question through the chat service off the update loop.
func (m Model) ask(question string) tea.Cmd {
	chat, session, topK := m.chat, m.session, m.topK
	return func() tea.Msg {
		turn, err := chat.Answer(context.Background(), session, question, topK)
		return answerMsg{turn: turn, err: err}
	}
}

// renderConversation renders the full history, newest turn last.
func (m Model) renderConversation() string {
	history := m.session.History()
	if len(history) == 0 {
		return "No messages yet. Ask something about your documents."
	}

	blocks := make([]string, 0, len(history))
	for i := range history {
		blocks = append(blocks, renderTurn(&history[i]))
	}
	return strings.Join(blocks, "\n\n")
}

// renderTurn renders one question, its answer and the passage sources.
func renderTurn(turn *domain.ConversationTurn) string {
	var b strings.Builder
	b.WriteString(questionStyle.Render("You: " + turn.Question))
	b.WriteString("\n")
	b.WriteString(turn.Answer)

	if len(turn.Retrieved) > 0 {
		b.WriteString("\n")
		b.WriteString(sourceStyle.Render(describeSources(turn.Retrieved)))
	}
	return b.String()
}

// describeSources summarises where an answer was grounded.
func describeSources(retrieved []domain.RetrievedChunk) string {
	parts := make([]string, len(retrieved))
	for i := range retrieved {
		parts[i] = fmt.Sprintf("chunk %d (%.2f)", retrieved[i].Chunk.Position+1, retrieved[i].Score)
	}
	return "Sources: " + strings.Join(parts, ", ")
}

// describeDocuments summarises the loaded document set for the header.
func describeDocuments(docs []domain.Document) string {
	if len(docs) == 0 {
		return "No documents loaded."
	}
	names := make([]string, len(docs))
	pages := 0
	for i := range docs {
		names[i] = docs[i].Name
		pages += docs[i].PageCount
	}
	return fmt.Sprintf("%d document(s), %d page(s): %s", len(docs), pages, strings.Join(names, ", "))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
