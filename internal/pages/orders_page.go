package pages

import (
	"context"
	"errors"

	"pet-adoption-portal/internal/domain/cart"
	"pet-adoption-portal/internal/domain/orders"
	"pet-adoption-portal/internal/ui"
)

// OrderSummary es /order-summary. Sin carrito en el estado de navegación vuelve a /products.
type OrderSummary struct {
	base

	Lines   []cart.Line
	Summary orders.Summary
}

func NewOrderSummary(d Deps) *OrderSummary {
	p := &OrderSummary{}
	p.init(d)
	if p.Placer == nil {
		p.Placer = orders.NewPlacer(0)
	}
	return p
}

func (p *OrderSummary) Mount(ctx context.Context, nav ui.Navigation) error {
	p.mount(ctx)

	st, ok := nav.State.(CheckoutState)
	if !ok || len(st.Lines) == 0 {
		p.Notify.Info("Your cart is empty")
		return p.Nav.Navigate(ctx, "/products", nil)
	}

	p.Lines = st.Lines
	p.Summary = orders.Summarize(st.Lines)
	p.Status = ui.StatusLoaded
	return nil
}

// PlaceOrder simula la colocación (timer) y navega a /order-success.
// Un segundo click mientras espera devuelve ErrSubmitting.
func (p *OrderSummary) PlaceOrder(ctx context.Context) error {
	if !p.beginSubmit() {
		return ErrSubmitting
	}
	defer p.endSubmit()

	c, cancel := p.scope(ctx)
	defer cancel()

	conf, err := p.Placer.Place(c, p.Lines)
	if p.stale() {
		return ErrStale
	}
	if err != nil {
		if errors.Is(err, orders.ErrEmptyOrder) {
			p.Notify.Warning("Your cart is empty")
		} else {
			p.failed(err, "Failed to place order")
		}
		return err
	}

	p.Notify.Success("Order placed successfully!")
	return p.Nav.Navigate(ctx, "/order-success", conf)
}

func (p *OrderSummary) BackToShop(ctx context.Context) error {
	return p.Nav.Navigate(ctx, "/products", nil)
}

// OrderSuccess es /order-success: muestra la confirmación recibida.
type OrderSuccess struct {
	base

	Confirmation orders.Confirmation
}

func NewOrderSuccess(d Deps) *OrderSuccess {
	p := &OrderSuccess{}
	p.init(d)
	return p
}

func (p *OrderSuccess) Mount(ctx context.Context, nav ui.Navigation) error {
	p.mount(ctx)

	conf, ok := nav.State.(orders.Confirmation)
	if !ok {
		return p.Nav.Navigate(ctx, "/", nil)
	}
	p.Confirmation = conf
	p.Status = ui.StatusLoaded
	return nil
}

func (p *OrderSuccess) ContinueShopping(ctx context.Context) error {
	return p.Nav.Navigate(ctx, "/products", nil)
}
