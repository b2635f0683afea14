package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JeremiasMeza/IA-Rag/internal/chat"
	"github.com/JeremiasMeza/IA-Rag/internal/models"
	"github.com/JeremiasMeza/IA-Rag/internal/picker"
)

var chatModelFlag string

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Chat against the documents in the current session scope",
	Long: `Chat against the backend using the documents indexed under the current
session scope.

Without arguments an interactive chat opens. With a message argument a
single turn is sent and the reply printed.

Examples:
  ragdesk chat
  ragdesk chat "¿Qué dice el contrato sobre la garantía?"
  ragdesk chat --model qwen3:8b "Resume el documento"`,
	Args: cobra.ArbitraryArgs,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatModelFlag, "model", "m", "", "model to use for this chat (default: backend selection)")
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Resolve the active model: flag, then config, then backend selection.
	model := chatModelFlag
	if model == "" {
		model = cfg.Model
	}
	if model == "" {
		state := picker.NewState(apiClient, nil, logger)
		state.Init(ctx)
		model = state.Active()
	}

	opts := chat.Options{
		Model:          model,
		AnswerMode:     cfg.AnswerMode,
		Locale:         cfg.Locale,
		MaxTokens:      cfg.MaxTokens,
		ScoreThreshold: cfg.ScoreThreshold,
	}

	if len(args) > 0 {
		return runChatOnce(ctx, strings.Join(args, " "), opts)
	}

	opts.Greeting = chat.DefaultGreeting
	session := chat.NewSession(apiClient, cfg.SessionID, opts, logger)
	return runChatUI(session)
}

// runChatOnce sends a single turn and prints the bot reply.
func runChatOnce(ctx context.Context, message string, opts chat.Options) error {
	session := chat.NewSession(apiClient, cfg.SessionID, opts, logger)
	if !session.Send(ctx, message) {
		return nil
	}

	transcript := session.Transcript()
	last := transcript[len(transcript)-1]
	if last.Sender != models.SenderBot {
		return nil
	}

	fmt.Println(last.Text)
	if last.Meta != "" {
		fmt.Println(defaultTheme.metaStyle().Render(last.Meta))
	}
	return nil
}
