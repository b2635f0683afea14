package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/JeremiasMeza/IA-Rag/internal/docs"
)

var docsOutputFile string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Manage the active documents of the current session scope",
	Long: `Manage the documents indexed under the current session scope.

Subcommands:
  list        List active documents (default)
  upload      Upload and index a PDF or text file
  delete      Delete one document
  delete-all  Delete every document in the scope
  get         Download a stored document

Examples:
  ragdesk docs
  ragdesk docs upload contrato.pdf
  ragdesk docs delete contrato.pdf
  ragdesk docs get contrato.pdf -o /tmp/contrato.pdf`,
	RunE: runDocsList,
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active documents",
	RunE:  runDocsList,
}

var docsUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload and index a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsUpload,
}

var docsDeleteCmd = &cobra.Command{
	Use:   "delete <doc>",
	Short: "Delete one document from the scope",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsDelete,
}

var docsDeleteAllCmd = &cobra.Command{
	Use:   "delete-all",
	Short: "Delete every document in the scope",
	Args:  cobra.NoArgs,
	RunE:  runDocsDeleteAll,
}

var docsGetCmd = &cobra.Command{
	Use:   "get <doc>",
	Short: "Download a stored document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsGet,
}

func init() {
	docsGetCmd.Flags().StringVarP(&docsOutputFile, "output", "o", "", "write to file instead of the document name")

	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsUploadCmd)
	docsCmd.AddCommand(docsDeleteCmd)
	docsCmd.AddCommand(docsDeleteAllCmd)
	docsCmd.AddCommand(docsGetCmd)
}

// newDocsController wires the controller with the interactive
// confirmation gate.
func newDocsController() *docs.Controller {
	return docs.NewController(apiClient, cfg.SessionID, confirmPrompt, logger)
}

func runDocsList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	ctrl := newDocsController()

	if err := ctrl.Refresh(ctx); err != nil {
		return fmt.Errorf("list documents: %w", err)
	}

	list, _ := ctrl.Docs()
	if len(list) == 0 {
		fmt.Println("No hay documentos activos.")
		return nil
	}

	fmt.Printf("Documentos activos (%d):\n\n", len(list))
	for _, doc := range list {
		fmt.Printf("- %s\n", doc)
	}
	return nil
}

func runDocsUpload(cmd *cobra.Command, args []string) error {
	path := args[0]

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	ctrl := newDocsController()
	status := ctrl.Upload(context.Background(), filepath.Base(path), file)
	if status != "" {
		fmt.Println(status)
	}
	return nil
}

func runDocsDelete(cmd *cobra.Command, args []string) error {
	ctrl := newDocsController()
	status := ctrl.Delete(context.Background(), args[0])
	if status == "" {
		fmt.Println("Cancelado.")
		return nil
	}
	fmt.Println(status)
	return nil
}

func runDocsDeleteAll(cmd *cobra.Command, args []string) error {
	ctrl := newDocsController()
	status := ctrl.DeleteAll(context.Background())
	if status == "" {
		fmt.Println("Cancelado.")
		return nil
	}
	fmt.Println(status)
	return nil
}

func runDocsGet(cmd *cobra.Command, args []string) error {
	doc := args[0]
	ctx := context.Background()

	body, err := apiClient.FetchDocument(ctx, doc)
	if err != nil {
		return fmt.Errorf("fetch document: %w", err)
	}
	defer body.Close()

	target := docsOutputFile
	if target == "" {
		target = filepath.Base(doc)
	}

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	n, err := io.Copy(out, body)
	if err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	fmt.Printf("Guardado %s (%d bytes)\n", target, n)
	return nil
}
