package pages

import (
	"context"

	"pet-adoption-portal/internal/api"
	"pet-adoption-portal/internal/domain/accounts"
	"pet-adoption-portal/internal/domain/pets"
	"pet-adoption-portal/internal/session"
	"pet-adoption-portal/internal/ui"
	"pet-adoption-portal/internal/validation"
)

// UserReg es /user-reg: alta de cuenta regular. Al terminar queda logueado.
type UserReg struct {
	base

	Form   accounts.SignupForm
	Errors validation.FieldErrors
}

func NewUserReg(d Deps) *UserReg {
	p := &UserReg{}
	p.init(d)
	return p
}

func (p *UserReg) Mount(ctx context.Context, _ ui.Navigation) error {
	p.mount(ctx)
	p.Status = ui.StatusLoaded
	return nil
}

func (p *UserReg) Submit(ctx context.Context, f accounts.SignupForm) error {
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

	res, err := p.API.Register(c, f)
	if p.stale() {
		return ErrStale
	}
	if err != nil {
		p.failed(err, "Registration failed. Please try again.")
		return err
	}

	if err := p.Sessions.SignIn(userSession(res)); err != nil {
		p.failed(err, "Could not start session")
		return err
	}
	p.Notify.Success("Account created successfully! Welcome, " + res.User.Username)
	p.Form = accounts.SignupForm{}
	return p.Nav.Navigate(ctx, "/", nil)
}

func userSession(res api.AuthResult) session.Session {
	return session.Session{
		Kind:  session.KindUser,
		Token: res.Token,
		Identity: session.Identity{
			ID:       res.User.ID,
			Username: res.User.Username,
			Email:    res.User.Email,
			Role:     session.Role(res.User.Role),
		},
	}
}

// UserLogin es /login. Los admins van directo al dashboard.
type UserLogin struct {
	base

	Form   accounts.LoginForm
	Errors validation.FieldErrors
}

func NewUserLogin(d Deps) *UserLogin {
	p := &UserLogin{}
	p.init(d)
	return p
}

func (p *UserLogin) Mount(ctx context.Context, _ ui.Navigation) error {
	p.mount(ctx)
	p.Status = ui.StatusLoaded
	return nil
}

func (p *UserLogin) Submit(ctx context.Context, f accounts.LoginForm) error {
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

	res, err := p.API.Login(c, f)
	if p.stale() {
		return ErrStale
	}
	if err != nil {
		p.failed(err, "Login failed. Please try again.")
		return err
	}

	s := userSession(res)
	if err := p.Sessions.SignIn(s); err != nil {
		p.failed(err, "Could not start session")
		return err
	}
	p.Notify.Success("Login successful!")
	p.Form = accounts.LoginForm{}

	if s.IsAdmin() {
		return p.Nav.Navigate(ctx, "/admin", nil)
	}
	return p.Nav.Navigate(ctx, "/", nil)
}

// PetOwnerLogin es /pet-owner-login.
type PetOwnerLogin struct {
	base

	Form   accounts.LoginForm
	Errors validation.FieldErrors
}

func NewPetOwnerLogin(d Deps) *PetOwnerLogin {
	p := &PetOwnerLogin{}
	p.init(d)
	return p
}

func (p *PetOwnerLogin) Mount(ctx context.Context, _ ui.Navigation) error {
	p.mount(ctx)
	p.Status = ui.StatusLoaded
	return nil
}

func (p *PetOwnerLogin) Submit(ctx context.Context, f accounts.LoginForm) error {
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

	res, err := p.API.OwnerLogin(c, f)
	if p.stale() {
		return ErrStale
	}
	if err != nil {
		p.failed(err, "Login failed. Please check your credentials.")
		return err
	}

	err = p.Sessions.SignIn(session.Session{
		Kind:  session.KindPetOwner,
		Token: res.Token,
		Identity: session.Identity{
			ID:    res.Owner.ID,
			Name:  res.Owner.Name,
			Email: res.Owner.Email,
			Role:  session.RoleOwner,
		},
	})
	if err != nil {
		p.failed(err, "Could not start session")
		return err
	}
	p.Notify.Success("Welcome back, " + res.Owner.Name + "!")
	p.Form = accounts.LoginForm{}
	return p.Nav.Navigate(ctx, "/pet-owner-profile", nil)
}

// PetReg es /pet-reg: registro de dueño + mascota. Queda pendiente de aprobación.
type PetReg struct {
	base

	Form   pets.RegistrationForm
	Errors validation.FieldErrors
}

func NewPetReg(d Deps) *PetReg {
	p := &PetReg{}
	p.init(d)
	return p
}

func (p *PetReg) Mount(ctx context.Context, _ ui.Navigation) error {
	p.mount(ctx)
	p.Status = ui.StatusLoaded
	return nil
}

func (p *PetReg) Submit(ctx context.Context, f pets.RegistrationForm) error {
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

	_, msg, err := p.API.RegisterPet(c, f.Request())
	if p.stale() {
		return ErrStale
	}
	if err != nil {
		p.failed(err, "Registration failed. Please try again.")
		return err
	}

	if msg == "" {
		msg = "Pet registered successfully! It will be listed once approved."
	}
	p.Notify.Success(msg)
	p.Form = pets.RegistrationForm{}
	return p.Nav.Navigate(ctx, "/pet-owner-login", nil)
}
