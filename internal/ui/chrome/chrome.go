// Package chrome es el header y footer compartidos por todas las páginas.
package chrome

import (
	"context"
	"fmt"
	"time"

	"pet-adoption-portal/internal/platform/logger"
	"pet-adoption-portal/internal/session"
	"pet-adoption-portal/internal/ui"
)

const Brand = "PetNest"

type Link struct {
	Label string
	Path  string
}

// OwnerLogouter cierra la sesión de dueño del lado de la API.
type OwnerLogouter interface {
	OwnerLogout(ctx context.Context) error
}

type Header struct {
	Sessions *session.Provider
	API      OwnerLogouter
	Nav      ui.Navigator
	Notify   ui.Notifier
	Log      logger.Logger

	Modal ui.Modal
}

// Links depende de la sesión: visitante, usuario, admin o dueño.
func (h *Header) Links() []Link {
	links := []Link{
		{Label: "Home", Path: "/"},
		{Label: "Adopt", Path: "/pets"},
		{Label: "Shop", Path: "/products"},
		{Label: "About", Path: "/about"},
		{Label: "Contact", Path: "/contact"},
	}

	s, ok := h.Sessions.CurrentUser()
	switch {
	case !ok:
		links = append(links,
			Link{Label: "Register Pet", Path: "/pet-reg"},
			Link{Label: "Sign Up", Path: "/user-reg"},
		)
	case s.Kind == session.KindPetOwner:
		links = append(links,
			Link{Label: "My Profile", Path: "/pet-owner-profile"},
			Link{Label: "Adoption Requests", Path: "/adoption-requests"},
		)
	case s.IsAdmin():
		links = append(links,
			Link{Label: "Dashboard", Path: "/admin"},
			Link{Label: "Add Product", Path: "/product-reg"},
		)
	}
	return links
}

// Greeting es el texto junto al botón de logout ("" sin sesión).
func (h *Header) Greeting() string {
	s, ok := h.Sessions.CurrentUser()
	if !ok {
		return ""
	}
	return "Hi, " + s.Identity.DisplayName()
}

// OpenLogin abre el selector: cuenta de usuario o de dueño de mascota.
func (h *Header) OpenLogin() {
	h.Modal = ui.ModalLoginChooser
}

func (h *Header) CloseModal() {
	h.Modal = ui.ModalNone
}

func (h *Header) ChooseLogin(ctx context.Context, owner bool) error {
	h.Modal = ui.ModalNone
	if owner {
		return h.Nav.Navigate(ctx, "/pet-owner-login", nil)
	}
	return h.Nav.Navigate(ctx, "/login", nil)
}

// Logout limpia la sesión y vuelve al inicio. Para dueños avisa a la API primero;
// si esa llamada falla la sesión local se limpia igual.
func (h *Header) Logout(ctx context.Context) error {
	s, ok := h.Sessions.CurrentUser()
	if !ok {
		return h.Nav.Navigate(ctx, "/", nil)
	}

	if s.Kind == session.KindPetOwner && h.API != nil {
		if err := h.API.OwnerLogout(ctx); err != nil && h.Log != nil {
			h.Log.Warn("owner logout failed", map[string]any{"error": err.Error()})
		}
	}
	if err := h.Sessions.SignOut(); err != nil {
		h.Notify.Error("Failed to log out")
		return err
	}

	h.Notify.Success("Logged out successfully")
	return h.Nav.Navigate(ctx, "/", nil)
}

type Footer struct {
	Now func() time.Time
}

func (f Footer) Links() []Link {
	return []Link{
		{Label: "Adopt a Pet", Path: "/pets"},
		{Label: "Register a Pet", Path: "/pet-reg"},
		{Label: "Shop", Path: "/products"},
		{Label: "About Us", Path: "/about"},
		{Label: "Contact", Path: "/contact"},
	}
}

func (f Footer) Copyright() string {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	return fmt.Sprintf("© %d %s. All rights reserved.", now().Year(), Brand)
}
