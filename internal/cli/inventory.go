package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/JeremiasMeza/IA-Rag/internal/models"
)

var (
	productName     string
	productCategory string
	productQuantity int
	productPrice    float64
	productDate     string
	productDesc     string
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Manage the product inventory",
	Long: `Manage the backend's product inventory.

Subcommands:
  list    List products (default)
  get     Show one product
  add     Create a product
  update  Update a product
  delete  Delete a product

Examples:
  ragdesk inventory
  ragdesk inventory add --name "Notebook" --category electronics --quantity 5 --date 2026-08-31
  ragdesk inventory delete 3`,
	RunE: runInventoryList,
}

var inventoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE:  runInventoryList,
}

var inventoryGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE:  runInventoryGet,
}

var inventoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a product",
	Args:  cobra.NoArgs,
	RunE:  runInventoryAdd,
}

var inventoryUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runInventoryUpdate,
}

var inventoryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runInventoryDelete,
}

func init() {
	for _, c := range []*cobra.Command{inventoryAddCmd, inventoryUpdateCmd} {
		c.Flags().StringVar(&productName, "name", "", "product name")
		c.Flags().StringVar(&productCategory, "category", "", "product category")
		c.Flags().IntVar(&productQuantity, "quantity", 0, "stock quantity")
		c.Flags().Float64Var(&productPrice, "price", 0, "unit price")
		c.Flags().StringVar(&productDate, "date", "", "entry date (YYYY-MM-DD)")
		c.Flags().StringVar(&productDesc, "desc", "", "description")
	}

	inventoryCmd.AddCommand(inventoryListCmd)
	inventoryCmd.AddCommand(inventoryGetCmd)
	inventoryCmd.AddCommand(inventoryAddCmd)
	inventoryCmd.AddCommand(inventoryUpdateCmd)
	inventoryCmd.AddCommand(inventoryDeleteCmd)
}

func productInput() models.ProductInput {
	in := models.ProductInput{
		Name:        productName,
		Category:    productCategory,
		Quantity:    productQuantity,
		EntryDate:   productDate,
		Description: productDesc,
	}
	if productPrice > 0 {
		price := productPrice
		in.UnitPrice = &price
	}
	return in
}

func printProduct(p models.Product) {
	fmt.Printf("- #%d %s [%s] x%d", p.ID, p.Name, p.Category, p.Quantity)
	if p.UnitPrice != nil {
		fmt.Printf(" $%.2f", *p.UnitPrice)
	}
	fmt.Println()
	if verbose && p.Description != "" {
		fmt.Printf("    %s\n", p.Description)
	}
}

func runInventoryList(cmd *cobra.Command, args []string) error {
	products, err := apiClient.ListProducts(context.Background())
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}

	if len(products) == 0 {
		fmt.Println("No hay productos.")
		return nil
	}

	fmt.Printf("Productos (%d):\n\n", len(products))
	for _, p := range products {
		printProduct(p)
	}
	return nil
}

func runInventoryGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid product id: %w", err)
	}

	p, err := apiClient.GetProduct(context.Background(), id)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}
	printProduct(p)
	return nil
}

func runInventoryAdd(cmd *cobra.Command, args []string) error {
	p, err := apiClient.CreateProduct(context.Background(), productInput())
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	fmt.Printf("Creado #%d %s\n", p.ID, p.Name)
	return nil
}

func runInventoryUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid product id: %w", err)
	}

	p, err := apiClient.UpdateProduct(context.Background(), id, productInput())
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	fmt.Printf("Actualizado #%d %s\n", p.ID, p.Name)
	return nil
}

func runInventoryDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid product id: %w", err)
	}

	if !confirmPrompt(fmt.Sprintf("¿Eliminar el producto #%d?", id)) {
		fmt.Println("Cancelado.")
		return nil
	}

	if err := apiClient.DeleteProduct(context.Background(), id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	fmt.Printf("Eliminado #%d\n", id)
	return nil
}
