package products

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"_id"`
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

// Available: marcado en stock y con unidades.
func (p Product) Available() bool {
	return p.InStock && p.Stock > 0
}

// Filter es el filtro de la página de productos (categoría + búsqueda).
type Filter struct {
	Category string
	Search   string
}

func (f Filter) Matches(p Product) bool {
	c := strings.TrimSpace(f.Category)
	if c != "" && !strings.EqualFold(c, "all") && !strings.EqualFold(p.Category, c) {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	for _, field := range []string{p.ProductName, p.Brand, p.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (f Filter) Apply(list []Product) []Product {
	out := make([]Product, 0, len(list))
	for _, p := range list {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Categories devuelve las categorías presentes, ordenadas y sin duplicados.
func Categories(list []Product) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, p := range list {
		c := strings.TrimSpace(p.Category)
		if c == "" {
			continue
		}
		key := strings.ToLower(c)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
