// Package cart es el carrito en memoria de la página de productos.
// Vive lo que vive la página: no se persiste en ningún lado.
package cart

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"pet-adoption-portal/internal/domain/products"
)

var (
	ErrLimitReached     = errors.New("stock limit reached")
	ErrMinimumReached   = errors.New("quantity cannot go below zero")
	ErrQuantityRequired = errors.New("select a quantity greater than zero")
	ErrOutOfStock       = errors.New("product is out of stock")
	ErrExceedsStock     = errors.New("not enough stock for the requested quantity")
	ErrLineNotFound     = errors.New("product is not in the cart")
)

type Line struct {
	Product  products.Product `json:"product"`
	Quantity int              `json:"quantity"`
}

func (l Line) Total() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart guarda dos cosas: el selector de cantidad de cada tarjeta y las líneas agregadas.
// Invariante: la cantidad de una línea nunca supera el último stock conocido del producto.
type Cart struct {
	lines []Line
	picks map[string]int
}

func New() *Cart {
	return &Cart{picks: map[string]int{}}
}

// Selected es la cantidad elegida en la tarjeta del producto (todavía no agregada).
func (c *Cart) Selected(productID string) int {
	return c.picks[productID]
}

// Increment sube el selector; en el tope de stock no cambia y devuelve ErrLimitReached.
func (c *Cart) Increment(p products.Product) (int, error) {
	cur := c.picks[p.ID]
	if cur >= p.Stock {
		if cur > p.Stock {
			cur = clampZero(p.Stock)
			c.picks[p.ID] = cur
		}
		return cur, ErrLimitReached
	}
	cur++
	c.picks[p.ID] = cur
	return cur, nil
}

// Decrement baja el selector; en 0 se queda en 0 y devuelve ErrMinimumReached.
func (c *Cart) Decrement(p products.Product) (int, error) {
	cur := c.picks[p.ID]
	if cur <= 0 {
		c.picks[p.ID] = 0
		return 0, ErrMinimumReached
	}
	cur--
	c.picks[p.ID] = cur
	return cur, nil
}

// Add agrega qty unidades. Si el producto ya está, suma a la línea existente,
// salvo que el total supere el stock: en ese caso el carrito no cambia.
func (c *Cart) Add(p products.Product, qty int) error {
	if qty <= 0 {
		return ErrQuantityRequired
	}
	if !p.Available() {
		return ErrOutOfStock
	}

	if i := c.index(p.ID); i >= 0 {
		total := c.lines[i].Quantity + qty
		if total > p.Stock {
			return ErrExceedsStock
		}
		c.lines[i].Quantity = total
		c.lines[i].Product = p
	} else {
		if qty > p.Stock {
			return ErrExceedsStock
		}
		c.lines = append(c.lines, Line{Product: p, Quantity: qty})
	}

	c.picks[p.ID] = 0
	return nil
}

// AddSelected agrega lo que marca el selector de la tarjeta.
func (c *Cart) AddSelected(p products.Product) error {
	return c.Add(p, c.picks[p.ID])
}

func (c *Cart) Remove(productID string) error {
	i := c.index(productID)
	if i < 0 {
		return ErrLineNotFound
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return nil
}

// Quantity es la cantidad ya agregada para el producto.
func (c *Cart) Quantity(productID string) int {
	if i := c.index(productID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Lines devuelve una copia; el llamador no puede romper la invariante.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Subtotal() decimal.Decimal {
	return Subtotal(c.lines)
}

func (c *Cart) Clear() {
	c.lines = nil
	c.picks = map[string]int{}
}

// Subtotal suma precio * cantidad de cada línea.
func Subtotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total())
	}
	return total
}

func (c *Cart) index(productID string) int {
	productID = strings.TrimSpace(productID)
	for i, l := range c.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
