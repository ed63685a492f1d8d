// Package ui tiene los tipos compartidos por las páginas: estado de carga,
// modales, navegación y toasts.
package ui

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("page not found")

// Status es el estado de carga de una página.
type Status string

const (
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusFailed  Status = "failed"
)

// Modal es el modal abierto en la página ("" = ninguno).
type Modal string

const (
	ModalNone          Modal = ""
	ModalDetails       Modal = "details"
	ModalAdoptForm     Modal = "adopt-form"
	ModalLoginRequired Modal = "login-required"
	ModalLoginChooser  Modal = "login-chooser"
	ModalEditPet       Modal = "edit-pet"
	ModalEditOwner     Modal = "edit-owner"
	ModalPassword      Modal = "password"
)

// Navigation es lo que recibe una página al montarse.
type Navigation struct {
	Path   string
	Params map[string]string
	State  any
}

func (n Navigation) Param(key string) string {
	return n.Params[key]
}

// Page se monta con un ctx que se cancela cuando se navega a otra página.
type Page interface {
	Mount(ctx context.Context, nav Navigation) error
}

type Navigator interface {
	Navigate(ctx context.Context, path string, state any) error
	Back(ctx context.Context) error
}
