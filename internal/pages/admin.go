package pages

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"pet-adoption-portal/internal/api"
	"pet-adoption-portal/internal/domain/pets"
	"pet-adoption-portal/internal/domain/products"
	"pet-adoption-portal/internal/ui"
	"pet-adoption-portal/internal/validation"
)

// AdminDashboard es /admin: moderación de registros. Cada cambio re-trae la lista completa.
type AdminDashboard struct {
	base

	All      []pets.Registration
	Filter   pets.StatusFilter
	Selected *pets.Registration
}

func NewAdminDashboard(d Deps) *AdminDashboard {
	p := &AdminDashboard{}
	p.init(d)
	return p
}

func (p *AdminDashboard) Mount(ctx context.Context, _ ui.Navigation) error {
	p.mount(ctx)
	if err := p.requireAdmin(ctx); err != nil {
		return err
	}
	return p.Refresh(ctx)
}

func (p *AdminDashboard) Refresh(ctx context.Context) error {
	c, cancel := p.scope(ctx)
	defer cancel()

	list, err := p.API.AllRegistrations(c)
	if err != nil && !p.stale() && p.expired(ctx, err, "/login") {
		p.Status = ui.StatusFailed
		return err
	}
	if err := p.done(err, "Failed to load registrations"); err != nil {
		return err
	}
	p.All = list
	return nil
}

func (p *AdminDashboard) Visible() []pets.Registration {
	return p.Filter.Apply(p.All)
}

// Counts alimenta las tarjetas por estado.
func (p *AdminDashboard) Counts() map[pets.Status]int {
	return pets.CountByStatus(p.All)
}

func (p *AdminDashboard) SetStatus(st string) { p.Filter.Status = st }
func (p *AdminDashboard) SetSearch(q string)  { p.Filter.Search = q }

func (p *AdminDashboard) ShowDetails(id string) error {
	for i := range p.All {
		if p.All[i].ID == id {
			r := p.All[i]
			p.Selected = &r
			p.Modal = ui.ModalDetails
			return nil
		}
	}
	return ErrNotFound
}

func (p *AdminDashboard) Approve(ctx context.Context, id string) error {
	return p.setStatus(ctx, id, pets.StatusApproved)
}

func (p *AdminDashboard) Reject(ctx context.Context, id string) error {
	return p.setStatus(ctx, id, pets.StatusRejected)
}

func (p *AdminDashboard) setStatus(ctx context.Context, id string, st pets.Status) error {
	return p.mutate(ctx, "Registration "+string(st)+" successfully", "Failed to update status", func(c context.Context) error {
		_, err := p.API.UpdateRegistrationStatus(c, id, st)
		return err
	})
}

func (p *AdminDashboard) Delete(ctx context.Context, id string) error {
	return p.mutate(ctx, "Registration deleted successfully", "Failed to delete registration", func(c context.Context) error {
		return p.API.DeleteRegistration(c, id)
	})
}

// mutate corre la acción y, si salió bien, re-sincroniza la lista desde la API.
func (p *AdminDashboard) mutate(ctx context.Context, okMsg, fallback string, action func(context.Context) error) error {
	if !p.beginSubmit() {
		return ErrSubmitting
	}
	defer p.endSubmit()

	c, cancel := p.scope(ctx)
	defer cancel()

	err := action(c)
	if p.stale() {
		return ErrStale
	}
	if err != nil {
		if !p.expired(ctx, err, "/login") {
			p.failed(err, fallback)
		}
		return err
	}

	p.Notify.Success(okMsg)
	p.Modal = ui.ModalNone
	p.Selected = nil
	return p.Refresh(ctx)
}

// ProductReg es /product-reg: alta de productos e inventario (sólo admin).
type ProductReg struct {
	base

	Form      products.Form
	Errors    validation.FieldErrors
	Inventory []products.Product
}

func NewProductReg(d Deps) *ProductReg {
	p := &ProductReg{}
	p.init(d)
	return p
}

func (p *ProductReg) Mount(ctx context.Context, _ ui.Navigation) error {
	p.mount(ctx)
	if err := p.requireAdmin(ctx); err != nil {
		return err
	}
	return p.Refresh(ctx)
}

func (p *ProductReg) Refresh(ctx context.Context) error {
	c, cancel := p.scope(ctx)
	defer cancel()

	list, err := p.API.Products(c)
	if err := p.done(err, "Failed to load products"); err != nil {
		return err
	}
	p.Inventory = list
	return nil
}

func (p *ProductReg) Submit(ctx context.Context, f products.Form) error {
	p.Form = f
	if err := f.Validate(); err != nil {
		p.Errors = p.invalid(err)
		return err
	}
	p.Errors = nil

	if !p.beginSubmit() {
		return ErrSubmitting
	}
	defer p.endSubmit()

	c, cancel := p.scope(ctx)
	defer cancel()

	created, err := p.API.CreateProduct(c, f.Request())
	if p.stale() {
		return ErrStale
	}
	if err != nil {
		if !p.expired(ctx, err, "/login") {
			p.failed(err, "Failed to add product")
		}
		return err
	}

	p.Notify.Success(fmt.Sprintf("%s added successfully", created.ProductName))
	p.Form = products.Form{}
	p.Inventory = append(p.Inventory, created)
	return nil
}

// Restock cambia el stock; inStock se sincroniza del lado de la API.
func (p *ProductReg) Restock(ctx context.Context, id string, stock int) error {
	if stock < 0 {
		p.Notify.Error("Stock cannot be negative")
		return validation.FieldErrors{"stock": "Stock cannot be negative"}
	}
	return p.patch(ctx, id, api.ProductPatch{Stock: &stock})
}

func (p *ProductReg) Reprice(ctx context.Context, id, price string) error {
	d, err := decimal.NewFromString(price)
	if err != nil || !d.IsPositive() {
		p.Notify.Error("Price must be a positive number")
		return validation.FieldErrors{"price": "Price must be a positive number"}
	}
	d = d.Round(2)
	return p.patch(ctx, id, api.ProductPatch{Price: &d})
}

func (p *ProductReg) patch(ctx context.Context, id string, patch api.ProductPatch) error {
	if !p.beginSubmit() {
		return ErrSubmitting
	}
	defer p.endSubmit()

	c, cancel := p.scope(ctx)
	defer cancel()

	updated, err := p.API.UpdateProduct(c, id, patch)
	if p.stale() {
		return ErrStale
	}
	if err != nil {
		if !p.expired(ctx, err, "/login") {
			p.failed(err, "Failed to update product")
		}
		return err
	}

	for i := range p.Inventory {
		if p.Inventory[i].ID == updated.ID {
			p.Inventory[i] = updated
		}
	}
	p.Notify.Success(fmt.Sprintf("%s updated", updated.ProductName))
	return nil
}
