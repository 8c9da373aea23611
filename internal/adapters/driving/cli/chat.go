package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/adapters/driving/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat [files...]",
	Short: "Start an interactive chat session",
	Long: `Launch the interactive chat interface.

Any files given as arguments are ingested before the session starts.
Questions are answered from the loaded documents; the sources of each
answer are shown beneath it.

Controls:
  Enter      - Ask the typed question
  ↑/↓        - Scroll the conversation
  Esc/Ctrl+C - Quit`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	// Panic recovery keeps a stack trace visible after the alt screen closes.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in chat UI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if err := checkPDFTool(args); err != nil {
		return err
	}
	if err := ensureServices(nil); err != nil {
		return err
	}

	if len(args) > 0 {
		raws, err := loadDocuments(args)
		if err != nil {
			return err
		}
		report, err := ingestService.Ingest(cmd.Context(), raws)
		if err != nil {
			return fmt.Errorf("ingest failed: %w", err)
		}
		reportIngest(cmd, report)
	}

	model := tui.New(chatService, session, ingestService.Documents(), chatSettings.Normalise().TopK)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat UI error: %w", err)
	}
	return nil
}
