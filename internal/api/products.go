package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"pet-adoption-portal/internal/domain/products"
)

func (c *Client) Products(ctx context.Context) ([]products.Product, error) {
	out, _, err := call[[]products.Product](ctx, c, http.MethodGet, "/api/products", nil, false)
	return out, err
}

func (c *Client) CreateProduct(ctx context.Context, req products.CreateRequest) (products.Product, error) {
	out, _, err := call[products.Product](ctx, c, http.MethodPost, "/api/products", req, true)
	return out, err
}

// ProductPatch: nil = no tocar.
type ProductPatch struct {
	Price   *decimal.Decimal `json:"price,omitempty"`
	Stock   *int             `json:"stock,omitempty"`
	InStock *bool            `json:"inStock,omitempty"`
}

func (c *Client) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (products.Product, error) {
	out, _, err := call[products.Product](ctx, c, http.MethodPatch, idPath("/api/products/%s", id), patch, true)
	return out, err
}
