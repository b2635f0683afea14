package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that the backend is reachable",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := apiClient.Health(context.Background()); err != nil {
		fmt.Println(defaultTheme.errorStyle().Render("Backend no disponible: " + err.Error()))
		return nil
	}
	fmt.Println(defaultTheme.successStyle().Render("Backend OK") + " — " + apiClient.BaseURL())
	return nil
}
