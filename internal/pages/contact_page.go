package pages

import (
	"context"

	"pet-adoption-portal/internal/domain/contact"
	"pet-adoption-portal/internal/ui"
	"pet-adoption-portal/internal/validation"
)

// Contact es /contact.
type Contact struct {
	base

	Form   contact.Form
	Errors validation.FieldErrors
}

func NewContact(d Deps) *Contact {
	p := &Contact{}
	p.init(d)
	return p
}

func (p *Contact) Mount(ctx context.Context, _ ui.Navigation) error {
	p.mount(ctx)
	p.Status = ui.StatusLoaded
	return nil
}

func (p *Contact) Submit(ctx context.Context, f contact.Form) error {
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

	msg, err := p.API.SendContact(c, f)
	if p.stale() {
		return ErrStale
	}
	if err != nil {
		p.failed(err, "Failed to send message. Please try again.")
		return err
	}

	if msg == "" {
		msg = "Message sent successfully!"
	}
	p.Notify.Success(msg)
	p.Form = contact.Form{}
	return nil
}

// About es /about: contenido estático.
type About struct {
	base

	Mission string
	Values  []string
	Stats   []Stat
}

type Stat struct {
	Label string
	Value string
}

func NewAbout(d Deps) *About {
	p := &About{}
	p.init(d)
	return p
}

func (p *About) Mount(ctx context.Context, _ ui.Navigation) error {
	p.mount(ctx)
	p.Mission = "We connect pets who need a home with people who have room in their hearts, " +
		"and we stock everything they need once they get there."
	p.Values = []string{
		"Every pet deserves a safe and loving home",
		"Owners know their pets best, so they review every adoption request",
		"Every listing is reviewed by our team before it goes live",
	}
	p.Stats = []Stat{
		{Label: "Pets adopted", Value: "1,200+"},
		{Label: "Partner shelters", Value: "45"},
		{Label: "Products in store", Value: "300+"},
	}
	p.Status = ui.StatusLoaded
	return nil
}
