package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JeremiasMeza/IA-Rag/internal/picker"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Show or change the active model",
	Long: `Show the available models and change the backend's global selection.

Subcommands:
  list  List available models (default)
  get   Show the backend's current selection
  set   Activate a model

Examples:
  ragdesk model
  ragdesk model set qwen3:8b`,
	RunE: runModelList,
}

var modelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available models",
	RunE:  runModelList,
}

var modelGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the backend's current selection",
	Args:  cobra.NoArgs,
	RunE:  runModelGet,
}

var modelSetCmd = &cobra.Command{
	Use:   "set <model>",
	Short: "Activate a model",
	Args:  cobra.ExactArgs(1),
	RunE:  runModelSet,
}

func init() {
	modelCmd.AddCommand(modelListCmd)
	modelCmd.AddCommand(modelGetCmd)
	modelCmd.AddCommand(modelSetCmd)
}

func runModelList(cmd *cobra.Command, args []string) error {
	state := picker.NewState(apiClient, nil, logger)
	state.Init(context.Background())
	active := state.Active()

	fmt.Println("Modelos disponibles:")
	fmt.Println()
	for _, id := range state.Models() {
		info := picker.Describe(id)
		marker := " "
		if id == active {
			marker = defaultTheme.successStyle().Render("*")
		}
		fmt.Printf("%s %s — %s\n", marker, info.ID, info.Name)
		if verbose && info.Description != "" {
			fmt.Printf("    %s\n", info.Description)
		}
	}
	return nil
}

func runModelGet(cmd *cobra.Command, args []string) error {
	selected, err := apiClient.SelectedModel(context.Background())
	if err != nil {
		return fmt.Errorf("fetch selection: %w", err)
	}
	fmt.Println(selected)
	return nil
}

func runModelSet(cmd *cobra.Command, args []string) error {
	model := args[0]

	state := picker.NewState(apiClient, nil, logger)
	state.Select(context.Background(), model)

	fmt.Printf("Modelo activo: %s\n", state.Active())
	return nil
}
