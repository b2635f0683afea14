// Package cli provides the command-line interface for the IA-Rag client.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/JeremiasMeza/IA-Rag/internal/api"
	"github.com/JeremiasMeza/IA-Rag/internal/config"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose     bool
	forceFlag   bool
	sessionFlag string
	apiURLFlag  string

	// Global config, logger and backend client
	cfg           config.Config
	logger        *slog.Logger
	loggerCleanup func() error
	apiClient     *api.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ragdesk",
	Short: "Terminal client for the IA-Rag chat backend",
	Long: `Ragdesk is a terminal client for the IA-Rag retrieval-augmented chat
backend: pick a model, upload PDF or text documents into a session scope,
and chat against the indexed content.

All document and chat operations are partitioned by a session scope
(--session, RAG_SESSION_ID). Different scopes never see each other's data.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()
		if apiURLFlag != "" {
			cfg.BaseURL = apiURLFlag
		}
		if sessionFlag != "" {
			cfg.SessionID = sessionFlag
		}

		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}
		logger, loggerCleanup = config.SetupLogger(cfg.LogFile, level)

		opts := []api.Option{}
		if cfg.ClientTimeout != "" {
			d, err := time.ParseDuration(cfg.ClientTimeout)
			if err != nil {
				return fmt.Errorf("parse RAG_CLIENT_TIMEOUT: %w", err)
			}
			opts = append(opts, api.WithTimeout(d))
		}
		apiClient = api.New(cfg.BaseURL, opts...)

		logger.Debug("client configured", "base_url", cfg.BaseURL, "session", cfg.SessionID)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if loggerCleanup != nil {
			if err := loggerCleanup(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&forceFlag, "force", "f", false, "skip confirmation prompts")
	rootCmd.PersistentFlags().StringVarP(&sessionFlag, "session", "s", "", "session scope identifier (default from RAG_SESSION_ID)")
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "backend base URL (default from RAG_API_URL)")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(statusCmd)
}
