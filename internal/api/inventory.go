package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/JeremiasMeza/IA-Rag/internal/models"
)

// deletedProduct confirms an inventory delete.
type deletedProduct struct {
	OK        bool `json:"ok"`
	DeletedID int  `json:"deleted_id"`
}

// ListProducts returns every inventory product.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.getJSON(ctx, "/inventory/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct returns one product by id.
func (c *Client) GetProduct(ctx context.Context, id int) (models.Product, error) {
	var out models.Product
	if err := c.getJSON(ctx, fmt.Sprintf("/inventory/%d", id), nil, &out); err != nil {
		return models.Product{}, err
	}
	return out, nil
}

// CreateProduct validates the input locally, then creates the product.
func (c *Client) CreateProduct(ctx context.Context, in models.ProductInput) (models.Product, error) {
	if err := in.Validate(); err != nil {
		return models.Product{}, err
	}
	var out models.Product
	if err := c.postJSON(ctx, "/inventory/", in, &out); err != nil {
		return models.Product{}, err
	}
	return out, nil
}

// UpdateProduct validates the input locally, then replaces the product.
func (c *Client) UpdateProduct(ctx context.Context, id int, in models.ProductInput) (models.Product, error) {
	if err := in.Validate(); err != nil {
		return models.Product{}, err
	}
	var out models.Product
	if err := c.putJSON(ctx, fmt.Sprintf("/inventory/%d", id), in, &out); err != nil {
		return models.Product{}, err
	}
	return out, nil
}

// DeleteProduct removes one product by id.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	var out deletedProduct
	return c.delete(ctx, fmt.Sprintf("/inventory/%d", id), nil, nil, &out)
}

// putJSON issues a PUT with a JSON payload and decodes the response.
func (c *Client) putJSON(ctx context.Context, path string, payload, result any) error {
	return c.sendJSON(ctx, http.MethodPut, path, payload, result)
}
