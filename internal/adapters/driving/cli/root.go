// Package cli implements the pdfchat command line interface.
package cli

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/adapters/driven/ai"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/adapters/driven/config/file"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/chunker"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/domain"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/ports/driven"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/ports/driving"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/services"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/extractors/pdf"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/extractors/plaintext"
	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/logger"
)

var (
	verbose bool

	version = "dev"

	// Wired at startup by ensureServices, or injected by tests.
	ingestService driving.IngestService
	chatService   driving.ChatService
	session       *domain.ConversationSession
	chatSettings  domain.ChatSettings
)

var rootCmd = &cobra.Command{
	Use:   "pdfchat",
	Short: "Chat with your PDF documents",
	Long: `pdfchat answers questions about your PDF documents.

Documents are split into overlapping chunks, embedded, and indexed in
memory. Questions are answered by an LLM grounded in the most relevant
passages retrieved from the index.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices injects the application services. Used by tests.
func SetServices(
	ingest driving.IngestService,
	chat driving.ChatService,
	sess *domain.ConversationSession,
	settings domain.ChatSettings,
) {
	ingestService = ingest
	chatService = chat
	session = sess
	chatSettings = settings.Normalise()
}

// ensureServices builds the real service graph unless one was injected.
// The optional temperature override comes from the ask command flag.
func ensureServices(tempOverride *float64) error {
	if ingestService != nil && chatService != nil {
		return nil
	}

	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	settings := file.ChatSettings(store)
	if tempOverride != nil {
		settings.Temperature = *tempOverride
		settings = settings.Normalise()
	}

	embed, err := ai.CreateEmbeddingService(file.EmbeddingSettings(store))
	if err != nil {
		return err
	}
	llm, err := ai.CreateLLMService(file.LLMSettings(store))
	if err != nil {
		return err
	}
	prompts, err := file.NewPromptStore("")
	if err != nil {
		return err
	}

	var chunkOpts []chunker.Option
	if settings.ChunkSize > 0 {
		chunkOpts = append(chunkOpts, chunker.WithChunkSize(settings.ChunkSize))
	}
	if settings.ChunkOverlap > 0 {
		chunkOpts = append(chunkOpts, chunker.WithOverlap(settings.ChunkOverlap))
	}

	sess := domain.NewConversationSession()
	ingest := services.NewIngestService(
		[]driven.Extractor{pdf.New(), plaintext.New()},
		chunker.New(chunkOpts...),
		embed,
		sess,
	)

	ingestService = ingest
	chatService = services.NewChatService(embed, llm, prompts, ingest, settings)
	session = sess
	chatSettings = settings
	return nil
}

// loadDocuments reads the given file paths into raw upload documents.
func loadDocuments(paths []string) ([]domain.RawDocument, error) {
	raws := make([]domain.RawDocument, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		raws = append(raws, domain.RawDocument{
			Name:     filepath.Base(path),
			Content:  content,
			MIMEType: mime.TypeByExtension(filepath.Ext(path)),
		})
	}
	return raws, nil
}

// checkPDFTool verifies pdftotext is installed when the batch has PDFs.
func checkPDFTool(paths []string) error {
	for _, p := range paths {
		if strings.EqualFold(filepath.Ext(p), ".pdf") {
			if err := pdf.CheckAvailable(); err != nil {
				return fmt.Errorf("%w\n\n%s", err, pdf.InstallInstructions())
			}
			return nil
		}
	}
	return nil
}

// reportIngest prints the outcome of an upload batch.
func reportIngest(cmd *cobra.Command, report *driving.IngestReport) {
	for i := range report.Documents {
		cmd.Printf("Loaded %s (%d pages)\n", report.Documents[i].Name, report.Documents[i].PageCount)
	}
	for i := range report.Failures {
		cmd.Printf("Skipped %s: %v\n", report.Failures[i].Name, report.Failures[i].Err)
	}
	cmd.Printf("Indexed %d chunks from %d document(s)\n", report.ChunkCount, len(report.Documents))
}
