package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/domain"
)

var (
	askTopK        int
	askTemperature float64
	askJSON        bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question] [files...]",
	Short: "Ask a single question about one or more documents",
	Long: `Ingests the given documents and answers one question grounded in them.

The retrieved passages are printed with their similarity scores so the
answer can be traced back to the source documents.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", domain.DefaultTopK, "number of passages to retrieve (1-10)")
	askCmd.Flags().Float64VarP(&askTemperature, "temperature", "t", domain.DefaultTemperature, "sampling temperature (0.0-1.0)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]
	paths := args[1:]

	if err := checkPDFTool(paths); err != nil {
		return err
	}

	var tempOverride *float64
	if cmd.Flags().Changed("temperature") {
		tempOverride = &askTemperature
	}
	if err := ensureServices(tempOverride); err != nil {
		return err
	}

	ctx := cmd.Context()
	if len(paths) > 0 {
		raws, err := loadDocuments(paths)
		if err != nil {
			return err
		}
		report, err := ingestService.Ingest(ctx, raws)
		if err != nil {
			return fmt.Errorf("ingest failed: %w", err)
		}
		if !askJSON {
			reportIngest(cmd, report)
		}
	}

	k := askTopK
	if k < domain.MinTopK || k > domain.MaxTopK {
		k = domain.DefaultTopK
	}

	turn, err := chatService.Answer(ctx, session, question, k)
	if err != nil {
		return fmt.Errorf("answer failed: %w", err)
	}

	if askJSON {
		return outputTurnJSON(cmd, turn)
	}
	return outputTurnText(cmd, turn)
}

func outputTurnJSON(cmd *cobra.Command, turn domain.ConversationTurn) error {
	data, err := json.MarshalIndent(turn, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal turn: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputTurnText(cmd *cobra.Command, turn domain.ConversationTurn) error {
	cmd.Println()
	cmd.Println(turn.Answer)

	if len(turn.Retrieved) == 0 {
		return nil
	}

	cmd.Println()
	cmd.Println("Sources:")
	for i := range turn.Retrieved {
		r := &turn.Retrieved[i]
		cmd.Printf("  [%d] chunk %d, page %d (%.2f)\n", i+1, r.Chunk.Position+1, r.Chunk.Page, r.Score)
		cmd.Printf("      %s\n", snippet(r.Chunk.Content, 100))
	}
	return nil
}

// snippet returns the first maxLen characters of a passage on one line.
func snippet(text string, maxLen int) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "..."
}
