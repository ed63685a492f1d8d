package pages

import (
	"context"
	"fmt"

	"pet-adoption-portal/internal/domain/adoption"
	"pet-adoption-portal/internal/domain/pets"
	"pet-adoption-portal/internal/session"
	"pet-adoption-portal/internal/ui"
	"pet-adoption-portal/internal/validation"
)

// Pets es /pets: listado público de mascotas aprobadas y flujo de adopción.
type Pets struct {
	base

	All      []pets.Registration
	Filter   pets.Filter
	Selected *pets.Registration
	Form     adoption.Form
	Errors   validation.FieldErrors
}

func NewPets(d Deps) *Pets {
	p := &Pets{}
	p.init(d)
	return p
}

func (p *Pets) Mount(ctx context.Context, _ ui.Navigation) error {
	p.mount(ctx)
	return p.Refresh(ctx)
}

func (p *Pets) Refresh(ctx context.Context) error {
	c, cancel := p.scope(ctx)
	defer cancel()

	list, err := p.API.ApprovedPets(c)
	if err := p.done(err, "Failed to load pets"); err != nil {
		return err
	}
	p.All = list
	return nil
}

// Visible aplica el filtro en memoria.
func (p *Pets) Visible() []pets.Registration {
	return p.Filter.Apply(p.All)
}

func (p *Pets) SetType(t string)   { p.Filter.Type = t }
func (p *Pets) SetSearch(q string) { p.Filter.Search = q }

func (p *Pets) find(id string) (*pets.Registration, bool) {
	for i := range p.All {
		if p.All[i].ID == id {
			r := p.All[i]
			return &r, true
		}
	}
	return nil, false
}

func (p *Pets) ShowDetails(id string) error {
	r, ok := p.find(id)
	if !ok {
		return ErrNotFound
	}
	p.Selected = r
	p.Modal = ui.ModalDetails
	return nil
}

// Adopt abre el formulario; sin sesión de usuario abre "login required" y no hace nada más.
func (p *Pets) Adopt(id string) error {
	r, ok := p.find(id)
	if !ok {
		return ErrNotFound
	}
	if !r.Adoptable() {
		p.Notify.Warning(fmt.Sprintf("%s has already been adopted", r.Pet.Name))
		return ErrUnavailable
	}

	s, err := p.Sessions.Gate(session.KindUser)
	if err != nil {
		p.Selected = r
		p.Modal = ui.ModalLoginRequired
		return err
	}

	p.Selected = r
	p.Errors = nil
	p.Form = adoption.Form{
		PetID:        r.ID,
		AdopterName:  s.Identity.DisplayName(),
		AdopterEmail: s.Identity.Email,
	}
	p.Modal = ui.ModalAdoptForm
	return nil
}

// GoToLogin es el botón del modal "login required".
func (p *Pets) GoToLogin(ctx context.Context) error {
	p.Modal = ui.ModalNone
	return p.Nav.Navigate(ctx, "/login", nil)
}

// SubmitAdoption valida antes de llamar a la API: un formulario inválido no genera request.
func (p *Pets) SubmitAdoption(ctx context.Context, f adoption.Form) error {
	if p.Modal != ui.ModalAdoptForm || p.Selected == nil {
		return ErrNotFound
	}
	if _, err := p.Sessions.Gate(session.KindUser); err != nil {
		p.Modal = ui.ModalLoginRequired
		return err
	}

	f.PetID = p.Selected.ID
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

	_, err := p.API.SubmitAdoption(c, f)
	if p.stale() {
		return ErrStale
	}
	if err != nil {
		p.failed(err, "Failed to submit adoption request")
		return err
	}

	p.Notify.Success(fmt.Sprintf("Adoption request for %s submitted! The owner will contact you soon.", p.Selected.Pet.Name))
	p.Modal = ui.ModalNone
	p.Form = adoption.Form{}
	return nil
}

// AgeLabel expone el formateo de edad para la vista.
func (p *Pets) AgeLabel(r pets.Registration) string {
	return pets.AgeLabel(r.Pet.Age)
}
