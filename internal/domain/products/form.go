package products

import (
	"strings"

	"github.com/shopspring/decimal"

	"pet-adoption-portal/internal/validation"
)

// Form es el formulario de alta de productos del admin (/product-reg).
type Form struct {
	ProductName string  `json:"productName" validate:"required,max=100"`
	Category    string  `json:"category" validate:"required"`
	Brand       string  `json:"brand" validate:"required"`
	Description string  `json:"description" validate:"required,max=1000"`
	Price       string  `json:"price" validate:"required"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Image       string  `json:"image" validate:"omitempty,url"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
}

// CreateRequest es el body de POST /api/products.
type CreateRequest struct {
	ProductName string          `json:"productName"`
	Category    string          `json:"category"`
	Brand       string          `json:"brand"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	InStock     bool            `json:"inStock"`
	Image       string          `json:"image,omitempty"`
	Rating      float64         `json:"rating"`
}

func (f Form) normalized() Form {
	f.ProductName = strings.TrimSpace(f.ProductName)
	f.Category = strings.ToLower(strings.TrimSpace(f.Category))
	f.Brand = strings.TrimSpace(f.Brand)
	f.Description = strings.TrimSpace(f.Description)
	f.Price = strings.TrimPrefix(strings.TrimSpace(f.Price), "$")
	f.Image = strings.TrimSpace(f.Image)
	return f
}

// Validate agrega la regla de precio (> 0, decimal) a las reglas de tags.
func (f Form) Validate() error {
	n := f.normalized()

	fe := validation.FieldErrors{}
	if err := validation.Struct(n); err != nil {
		verr, ok := err.(validation.FieldErrors)
		if !ok {
			return err
		}
		fe = verr
	}

	if _, exists := fe["price"]; !exists {
		price, err := decimal.NewFromString(n.Price)
		if err != nil {
			fe["price"] = "price must be a number"
		} else if !price.IsPositive() {
			fe["price"] = "price must be greater than 0"
		}
	}

	if len(fe) > 0 {
		return fe
	}
	return nil
}

// Request arma el body; asume Validate() == nil.
func (f Form) Request() CreateRequest {
	n := f.normalized()
	price, _ := decimal.NewFromString(n.Price)
	return CreateRequest{
		ProductName: n.ProductName,
		Category:    n.Category,
		Brand:       n.Brand,
		Description: n.Description,
		Price:       price.Round(2),
		Stock:       n.Stock,
		InStock:     n.Stock > 0,
		Image:       n.Image,
		Rating:      n.Rating,
	}
}
