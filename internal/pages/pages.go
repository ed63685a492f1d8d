// Package pages son los controladores de cada ruta. Cada página guarda su estado
// local (carga, listas, filtros, modal, formulario) y expone las acciones del usuario.
// Una instancia vive lo que dura la visita: al navegar se cancela su ctx de montaje
// y cualquier resultado pendiente se descarta.
package pages

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"pet-adoption-portal/internal/api"
	"pet-adoption-portal/internal/domain/orders"
	"pet-adoption-portal/internal/platform/logger"
	"pet-adoption-portal/internal/session"
	"pet-adoption-portal/internal/ui"
	"pet-adoption-portal/internal/validation"
)

var (
	ErrSubmitting  = errors.New("a submission is already in progress")
	ErrStale       = errors.New("page is no longer mounted")
	ErrNotFound    = errors.New("item not found")
	ErrUnavailable = errors.New("pet is not available for adoption")
	ErrEmptyCart   = errors.New("cart is empty")
	ErrForbidden   = errors.New("not allowed")
)

// Deps son las dependencias compartidas por todas las páginas.
type Deps struct {
	API      *api.Client
	Sessions *session.Provider
	Nav      ui.Navigator
	Notify   ui.Notifier
	Log      logger.Logger
	Placer   *orders.Placer
	Now      func() time.Time
}

// base es el ciclo de vida común.
type base struct {
	Deps

	Status ui.Status
	Modal  ui.Modal

	mounted    context.Context
	submitting atomic.Bool
}

func (b *base) init(d Deps) {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Notify == nil {
		d.Notify = ui.NewRecorder()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	b.Deps = d
	b.Status = ui.StatusLoading
}

func (b *base) mount(ctx context.Context) {
	b.mounted = ctx
	b.Status = ui.StatusLoading
	b.Modal = ui.ModalNone
}

// scope deriva un ctx que se cancela si se cancela ctx o si la página se desmonta.
func (b *base) scope(ctx context.Context) (context.Context, context.CancelFunc) {
	c, cancel := context.WithCancel(ctx)
	if b.mounted == nil {
		return c, cancel
	}
	stop := context.AfterFunc(b.mounted, cancel)
	return c, func() {
		stop()
		cancel()
	}
}

// stale: la página ya no está montada; el resultado no se aplica.
func (b *base) stale() bool {
	return b.mounted != nil && b.mounted.Err() != nil
}

// Submitting indica si hay un envío en curso (botón deshabilitado).
func (b *base) Submitting() bool {
	return b.submitting.Load()
}

func (b *base) beginSubmit() bool {
	return b.submitting.CompareAndSwap(false, true)
}

func (b *base) endSubmit() {
	b.submitting.Store(false)
}

func (b *base) CloseModal() {
	b.Modal = ui.ModalNone
}

// failed muestra el mensaje del servidor o el fallback y loguea el error.
func (b *base) failed(err error, fallback string) {
	msg := api.MessageOf(err, fallback)
	b.Log.Warn("page action failed", map[string]any{"error": err.Error(), "toast": msg})
	b.Notify.Error(msg)
}

// invalid publica el primer error de validación como toast.
func (b *base) invalid(err error) validation.FieldErrors {
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		b.Notify.Error(fe.First())
		return fe
	}
	b.Notify.Error(err.Error())
	return validation.FieldErrors{"_": err.Error()}
}

// done cierra el estado de carga según err y descarta si la página se desmontó.
func (b *base) done(err error, fallback string) error {
	if b.stale() {
		return ErrStale
	}
	if err != nil {
		b.Status = ui.StatusFailed
		b.failed(err, fallback)
		return err
	}
	b.Status = ui.StatusLoaded
	return nil
}

// requireAdmin es un redirect de UX; la API es la que autoriza.
func (b *base) requireAdmin(ctx context.Context) error {
	s, ok := b.Sessions.CurrentUser()
	if !ok {
		b.Status = ui.StatusFailed
		b.Notify.Error("Please log in as an admin to continue")
		return errors.Join(session.ErrLoginRequired, b.Nav.Navigate(ctx, "/login", nil))
	}
	if !s.IsAdmin() {
		b.Status = ui.StatusFailed
		b.Notify.Error("Access denied. Admins only.")
		return errors.Join(ErrForbidden, b.Nav.Navigate(ctx, "/", nil))
	}
	return nil
}

func (b *base) requireOwner(ctx context.Context) (session.Session, error) {
	s, err := b.Sessions.Gate(session.KindPetOwner)
	if err != nil {
		b.Status = ui.StatusFailed
		b.Notify.Error("Please log in as a pet owner to continue")
		return session.Session{}, errors.Join(err, b.Nav.Navigate(ctx, "/pet-owner-login", nil))
	}
	return s, nil
}

// expired: si la API rechazó el token (401), se limpia la sesión y se manda al login.
// Un 403 no cierra la sesión; el llamador muestra el mensaje del servidor.
func (b *base) expired(ctx context.Context, err error, loginPath string) bool {
	if !api.IsUnauthorized(err) {
		return false
	}
	if soErr := b.Sessions.SignOut(); soErr != nil {
		b.Log.Warn("sign out failed", map[string]any{"error": soErr.Error()})
	}
	b.Notify.Error("Your session has expired. Please log in again.")
	if navErr := b.Nav.Navigate(ctx, loginPath, nil); navErr != nil {
		b.Log.Warn("redirect to login failed", map[string]any{"error": navErr.Error()})
	}
	return true
}
