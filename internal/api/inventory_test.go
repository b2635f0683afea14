package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JeremiasMeza/IA-Rag/internal/api"
	"github.com/JeremiasMeza/IA-Rag/internal/models"
)

func TestListProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inventory/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":1,"name":"Notebook","category":"electronics","quantity":5,"entry_date":"2026-08-01","created_at":"2026-08-01T10:00:00Z"}]`)
	}))
	defer srv.Close()

	client := api.New(srv.URL)
	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Notebook", products[0].Name)
	assert.Equal(t, 5, products[0].Quantity)
}

func TestCreateProductValidatesLocally(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := api.New(srv.URL)

	// Missing name and bad date must be rejected before any request.
	_, err := client.CreateProduct(context.Background(), models.ProductInput{
		Category:  "electronics",
		EntryDate: "31/08/2026",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid product")
	assert.False(t, called, "invalid input must not reach the backend")
}

func TestCreateProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/inventory/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":2,"name":"Mouse","category":"electronics","quantity":10,"entry_date":"2026-08-31","created_at":"2026-08-31T09:00:00Z"}`)
	}))
	defer srv.Close()

	client := api.New(srv.URL)
	p, err := client.CreateProduct(context.Background(), models.ProductInput{
		Name:      "Mouse",
		Category:  "electronics",
		Quantity:  10,
		EntryDate: "2026-08-31",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, p.ID)
	assert.Equal(t, "Mouse", p.Name)
}

func TestDeleteProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/inventory/3", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"ok":true,"deleted_id":3}`)
	}))
	defer srv.Close()

	client := api.New(srv.URL)
	require.NoError(t, client.DeleteProduct(context.Background(), 3))
}
