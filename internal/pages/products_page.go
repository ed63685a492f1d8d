package pages

import (
	"context"
	"errors"
	"fmt"

	"pet-adoption-portal/internal/domain/cart"
	"pet-adoption-portal/internal/domain/products"
	"pet-adoption-portal/internal/session"
	"pet-adoption-portal/internal/ui"
)

// CheckoutState es lo que /products le pasa a /order-summary al navegar.
type CheckoutState struct {
	Lines []cart.Line
}

// Products es /products: catálogo, selector de cantidad y carrito.
type Products struct {
	base

	All    []products.Product
	Filter products.Filter
	Cart   *cart.Cart
}

func NewProducts(d Deps) *Products {
	p := &Products{Cart: cart.New()}
	p.init(d)
	return p
}

func (p *Products) Mount(ctx context.Context, _ ui.Navigation) error {
	p.mount(ctx)
	return p.Refresh(ctx)
}

func (p *Products) Refresh(ctx context.Context) error {
	c, cancel := p.scope(ctx)
	defer cancel()

	list, err := p.API.Products(c)
	if err := p.done(err, "Failed to load products"); err != nil {
		return err
	}
	p.All = list
	return nil
}

func (p *Products) Visible() []products.Product {
	return p.Filter.Apply(p.All)
}

func (p *Products) Categories() []string {
	return products.Categories(p.All)
}

func (p *Products) SetCategory(c string) { p.Filter.Category = c }
func (p *Products) SetSearch(q string)   { p.Filter.Search = q }

func (p *Products) find(id string) (products.Product, bool) {
	for _, pr := range p.All {
		if pr.ID == id {
			return pr, true
		}
	}
	return products.Product{}, false
}

// Increment sube el selector hasta el stock; en el tope avisa con un toast.
func (p *Products) Increment(id string) (int, error) {
	pr, ok := p.find(id)
	if !ok {
		return 0, ErrNotFound
	}
	n, err := p.Cart.Increment(pr)
	if errors.Is(err, cart.ErrLimitReached) {
		p.Notify.Warning(fmt.Sprintf("Only %d %s available in stock", pr.Stock, pr.ProductName))
	}
	return n, err
}

func (p *Products) Decrement(id string) (int, error) {
	pr, ok := p.find(id)
	if !ok {
		return 0, ErrNotFound
	}
	n, err := p.Cart.Decrement(pr)
	if errors.Is(err, cart.ErrMinimumReached) {
		p.Notify.Warning("Quantity cannot be less than 0")
	}
	return n, err
}

// AddToCart exige sesión; sin sesión abre "login required" y el carrito no cambia.
func (p *Products) AddToCart(id string) error {
	if _, err := p.Sessions.Gate(session.KindUser); err != nil {
		p.Modal = ui.ModalLoginRequired
		return err
	}

	pr, ok := p.find(id)
	if !ok {
		return ErrNotFound
	}

	qty := p.Cart.Selected(pr.ID)
	err := p.Cart.Add(pr, qty)
	switch {
	case errors.Is(err, cart.ErrQuantityRequired):
		p.Notify.Warning("Please select a quantity")
	case errors.Is(err, cart.ErrOutOfStock):
		p.Notify.Error(fmt.Sprintf("%s is out of stock", pr.ProductName))
	case errors.Is(err, cart.ErrExceedsStock):
		p.Notify.Error(fmt.Sprintf("Cannot add %d more: only %d %s in stock and %d already in your cart",
			qty, pr.Stock, pr.ProductName, p.Cart.Quantity(pr.ID)))
	case err == nil:
		p.Notify.Success(fmt.Sprintf("Added %d × %s to cart", qty, pr.ProductName))
	}
	return err
}

func (p *Products) RemoveFromCart(id string) error {
	if err := p.Cart.Remove(id); err != nil {
		return err
	}
	p.Notify.Info("Item removed from cart")
	return nil
}

func (p *Products) GoToLogin(ctx context.Context) error {
	p.Modal = ui.ModalNone
	return p.Nav.Navigate(ctx, "/login", nil)
}

// Checkout entrega las líneas a /order-summary como estado de navegación.
func (p *Products) Checkout(ctx context.Context) error {
	if p.Cart.Empty() {
		p.Notify.Warning("Your cart is empty")
		return ErrEmptyCart
	}
	return p.Nav.Navigate(ctx, "/order-summary", CheckoutState{Lines: p.Cart.Lines()})
}
