package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/JeremiasMeza/IA-Rag/internal/admin"
)

var adminTokenFlag string

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Token-gated destructive operations",
	Long: `Destructive maintenance operations. Both require the backend admin
token, read from --token, RAG_ADMIN_TOKEN, or an interactive prompt.
The token is never validated locally; a wrong token is rejected by the
backend.

Subcommands:
  wipe-client  Delete all data for one session scope
  wipe-all     Delete all data for every scope`,
}

var adminWipeClientCmd = &cobra.Command{
	Use:   "wipe-client [scope]",
	Short: "Delete all data for one session scope",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWipeClient,
}

var adminWipeAllCmd = &cobra.Command{
	Use:   "wipe-all",
	Short: "Delete all data for every scope",
	Args:  cobra.NoArgs,
	RunE:  runWipeAll,
}

func init() {
	adminCmd.PersistentFlags().StringVar(&adminTokenFlag, "token", "", "admin token (default from RAG_ADMIN_TOKEN)")

	adminCmd.AddCommand(adminWipeClientCmd)
	adminCmd.AddCommand(adminWipeAllCmd)
}

// adminToken resolves the token from flag, config, or an echo-free prompt.
func adminToken() (string, error) {
	if adminTokenFlag != "" {
		return adminTokenFlag, nil
	}
	if cfg.AdminToken != "" {
		return cfg.AdminToken, nil
	}

	fmt.Print("Admin token: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return string(raw), nil
}

func runWipeClient(cmd *cobra.Command, args []string) error {
	scope := cfg.SessionID
	if len(args) > 0 {
		scope = args[0]
	}

	if !confirmPrompt(fmt.Sprintf("¿Borrar todos los datos del cliente %q?", scope)) {
		fmt.Println("Cancelado.")
		return nil
	}

	token, err := adminToken()
	if err != nil {
		return err
	}

	ctrl := admin.NewController(apiClient, logger)
	fmt.Println(ctrl.WipeClient(context.Background(), scope, token))
	return nil
}

func runWipeAll(cmd *cobra.Command, args []string) error {
	if !confirmPrompt("¿Reset total? Esto borra los datos de todos los clientes") {
		fmt.Println("Cancelado.")
		return nil
	}

	token, err := adminToken()
	if err != nil {
		return err
	}

	ctrl := admin.NewController(apiClient, logger)
	fmt.Println(ctrl.WipeAll(context.Background(), token))
	return nil
}
