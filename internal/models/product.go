package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Product is an inventory item as returned by the backend.
type Product struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Quantity    int        `json:"quantity"`
	UnitPrice   *float64   `json:"unit_price,omitempty"`
	EntryDate   string     `json:"entry_date"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// ProductInput is the payload for creating or updating a product.
// EntryDate uses the backend's YYYY-MM-DD wire format.
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Quantity    int      `json:"quantity" validate:"gte=0"`
	UnitPrice   *float64 `json:"unit_price,omitempty" validate:"omitempty,gte=0"`
	EntryDate   string   `json:"entry_date" validate:"required,datetime=2006-01-02"`
	Description string   `json:"description,omitempty"`
}

var validate = validator.New()

// Validate checks the input locally before it is sent to the backend.
func (in ProductInput) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		f := errs[0]
		return fmt.Errorf("invalid product: field %q fails %q", f.Field(), f.Tag())
	}
	return fmt.Errorf("invalid product: %w", err)
}
