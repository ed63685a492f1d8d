package pages

import (
	"context"
	"fmt"

	"pet-adoption-portal/internal/domain/adoption"
	"pet-adoption-portal/internal/domain/pets"
	"pet-adoption-portal/internal/session"
	"pet-adoption-portal/internal/ui"
	"pet-adoption-portal/internal/ui/chrome"
	"pet-adoption-portal/internal/validation"
)

// AdoptionRequests es /adoption-requests: el dueño revisa las solicitudes sobre su mascota.
type AdoptionRequests struct {
	base

	All    []adoption.Request
	Filter adoption.Filter
}

func NewAdoptionRequests(d Deps) *AdoptionRequests {
	p := &AdoptionRequests{}
	p.init(d)
	return p
}

func (p *AdoptionRequests) Mount(ctx context.Context, _ ui.Navigation) error {
	p.mount(ctx)
	if _, err := p.requireOwner(ctx); err != nil {
		return err
	}
	return p.Refresh(ctx)
}

func (p *AdoptionRequests) Refresh(ctx context.Context) error {
	c, cancel := p.scope(ctx)
	defer cancel()

	list, err := p.API.OwnerAdoptionRequests(c)
	if err != nil && !p.stale() && p.expired(ctx, err, "/pet-owner-login") {
		p.Status = ui.StatusFailed
		return err
	}
	if err := p.done(err, "Failed to load adoption requests"); err != nil {
		return err
	}
	p.All = list
	return nil
}

func (p *AdoptionRequests) Visible() []adoption.Request {
	return p.Filter.Apply(p.All)
}

func (p *AdoptionRequests) SetStatus(st string) { p.Filter.Status = st }

func (p *AdoptionRequests) Counts() map[adoption.Status]int {
	out := map[adoption.Status]int{
		adoption.StatusPending:  0,
		adoption.StatusApproved: 0,
		adoption.StatusRejected: 0,
	}
	for _, r := range p.All {
		out[r.AdoptionStatus]++
	}
	return out
}

func (p *AdoptionRequests) Approve(ctx context.Context, id string) error {
	return p.decide(ctx, id, adoption.StatusApproved)
}

func (p *AdoptionRequests) Reject(ctx context.Context, id string) error {
	return p.decide(ctx, id, adoption.StatusRejected)
}

func (p *AdoptionRequests) decide(ctx context.Context, id string, st adoption.Status) error {
	if !p.beginSubmit() {
		return ErrSubmitting
	}
	defer p.endSubmit()

	c, cancel := p.scope(ctx)
	defer cancel()

	_, err := p.API.UpdateAdoptionStatus(c, id, st)
	if p.stale() {
		return ErrStale
	}
	if err != nil {
		if !p.expired(ctx, err, "/pet-owner-login") {
			p.failed(err, "Failed to update request")
		}
		return err
	}

	p.Notify.Success("Adoption request " + string(st))
	return p.Refresh(ctx)
}

// PetOwnerProfile es /pet-owner-profile: datos del dueño y su mascota, edición y contraseña.
type PetOwnerProfile struct {
	base

	Registration pets.Registration
	PetForm      pets.PetForm
	OwnerForm    pets.OwnerUpdateForm
	PasswordForm pets.PasswordForm
	Errors       validation.FieldErrors

	header *chrome.Header
}

func NewPetOwnerProfile(d Deps, header *chrome.Header) *PetOwnerProfile {
	p := &PetOwnerProfile{header: header}
	p.init(d)
	return p
}

func (p *PetOwnerProfile) Mount(ctx context.Context, _ ui.Navigation) error {
	p.mount(ctx)
	if _, err := p.requireOwner(ctx); err != nil {
		return err
	}
	return p.Refresh(ctx)
}

func (p *PetOwnerProfile) Refresh(ctx context.Context) error {
	c, cancel := p.scope(ctx)
	defer cancel()

	reg, err := p.API.MyProfile(c)
	if err != nil && !p.stale() && p.expired(ctx, err, "/pet-owner-login") {
		p.Status = ui.StatusFailed
		return err
	}
	if err := p.done(err, "Failed to load profile"); err != nil {
		return err
	}
	p.Registration = reg
	return nil
}

// AgeLabel de la mascota del perfil.
func (p *PetOwnerProfile) AgeLabel() string {
	return pets.AgeLabel(p.Registration.Pet.Age)
}

func (p *PetOwnerProfile) EditPet() {
	p.PetForm = pets.FormFromPet(p.Registration.Pet)
	p.Errors = nil
	p.Modal = ui.ModalEditPet
}

func (p *PetOwnerProfile) EditOwner() {
	o := p.Registration.Owner
	p.OwnerForm = pets.OwnerUpdateForm{Name: o.Name, Email: o.Email, Phone: o.Phone}
	p.Errors = nil
	p.Modal = ui.ModalEditOwner
}

func (p *PetOwnerProfile) ChangePassword() {
	p.PasswordForm = pets.PasswordForm{}
	p.Errors = nil
	p.Modal = ui.ModalPassword
}

func (p *PetOwnerProfile) SavePet(ctx context.Context, f pets.PetForm) error {
	p.PetForm = f
	if err := f.Validate(); err != nil {
		p.Errors = p.invalid(err)
		return err
	}
	var reg pets.Registration
	err := p.save(ctx, "Pet details updated successfully", "Failed to update pet details", func(c context.Context) error {
		var err error
		reg, err = p.API.UpdatePet(c, f.Pet())
		return err
	})
	if err == nil {
		p.Registration = reg
	}
	return err
}

func (p *PetOwnerProfile) SaveOwner(ctx context.Context, f pets.OwnerUpdateForm) error {
	p.OwnerForm = f
	if err := f.Validate(); err != nil {
		p.Errors = p.invalid(err)
		return err
	}
	var reg pets.Registration
	err := p.save(ctx, "Owner details updated successfully", "Failed to update owner details", func(c context.Context) error {
		var err error
		reg, err = p.API.UpdateOwner(c, f)
		return err
	})
	if err != nil {
		return err
	}
	p.Registration = reg

	// el nombre mostrado en el header sale de la sesión
	if s, ok := p.Sessions.CurrentUser(); ok && s.Kind == session.KindPetOwner {
		s.Identity.Name, s.Identity.Email = reg.Owner.Name, reg.Owner.Email
		if err := p.Sessions.SignIn(s); err != nil {
			p.Log.Warn("session refresh failed", map[string]any{"error": err.Error()})
		}
	}
	return nil
}

func (p *PetOwnerProfile) SavePassword(ctx context.Context, f pets.PasswordForm) error {
	p.PasswordForm = f
	if err := f.Validate(); err != nil {
		p.Errors = p.invalid(err)
		return err
	}

	var msg string
	err := p.save(ctx, "", "Failed to update password", func(c context.Context) error {
		var err error
		msg, err = p.API.UpdatePassword(c, f)
		return err
	})
	if err == nil {
		if msg == "" {
			msg = "Password updated successfully"
		}
		p.Notify.Success(msg)
		p.PasswordForm = pets.PasswordForm{}
	}
	return err
}

func (p *PetOwnerProfile) save(ctx context.Context, okMsg, fallback string, action func(context.Context) error) error {
	p.Errors = nil
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
		if !p.expired(ctx, err, "/pet-owner-login") {
			p.failed(err, fallback)
		}
		return err
	}

	if okMsg != "" {
		p.Notify.Success(okMsg)
	}
	p.Modal = ui.ModalNone
	return nil
}

// Logout delega en el header: misma lógica que el botón de la barra.
func (p *PetOwnerProfile) Logout(ctx context.Context) error {
	if p.header == nil {
		return fmt.Errorf("logout: header not configured")
	}
	return p.header.Logout(ctx)
}
