package fakeapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-adoption-portal/internal/domain/pets"
	"pet-adoption-portal/internal/validation"
)

func (s *Server) registerPet(w http.ResponseWriter, r *http.Request) {
	var req pets.RegistrationRequest
	if !decode(r, &req) {
		fail(w, http.StatusBadRequest, "invalid json")
		return
	}
	if msg := firstError(validation.Struct(req.Owner)); msg != "" {
		fail(w, http.StatusBadRequest, msg)
		return
	}
	if req.Pet.Name == "" || req.Pet.Type == "" {
		fail(w, http.StatusBadRequest, "pet name and type are required")
		return
	}

	owner := pets.Owner{Name: req.Owner.Name, Email: req.Owner.Email, Phone: req.Owner.Phone}
	reg, err := s.store.CreateRegistration(owner, req.Owner.Password, req.Pet)
	if errors.Is(err, ErrEmailTaken) {
		fail(w, http.StatusConflict, "An owner with this email is already registered")
		return
	}
	if err != nil {
		fail(w, http.StatusInternalServerError, "could not save registration")
		return
	}
	ok(w, http.StatusCreated, "Registration submitted. It will be visible once an admin approves it.", reg)
}

func (s *Server) approvedPets(w http.ResponseWriter, _ *http.Request) {
	ok(w, http.StatusOK, "", s.store.Registrations(pets.StatusApproved))
}

func (s *Server) myProfile(w http.ResponseWriter, r *http.Request) {
	c, _ := GetClaims(r.Context())
	reg, err := s.store.RegistrationOfOwner(c.Subject)
	if err != nil {
		fail(w, http.StatusNotFound, "Registration not found")
		return
	}
	ok(w, http.StatusOK, "", reg)
}

func (s *Server) updatePet(w http.ResponseWriter, r *http.Request) {
	c, _ := GetClaims(r.Context())

	var p pets.Pet
	if !decode(r, &p) {
		fail(w, http.StatusBadRequest, "invalid json")
		return
	}
	if p.Name == "" {
		fail(w, http.StatusBadRequest, "pet name is required")
		return
	}

	reg, err := s.store.UpdatePet(c.Subject, p)
	if err != nil {
		fail(w, http.StatusNotFound, "Registration not found")
		return
	}
	ok(w, http.StatusOK, "Pet details updated", reg)
}

func (s *Server) updateOwner(w http.ResponseWriter, r *http.Request) {
	c, _ := GetClaims(r.Context())

	var f pets.OwnerUpdateForm
	if !decode(r, &f) {
		fail(w, http.StatusBadRequest, "invalid json")
		return
	}
	if msg := firstError(f.Validate()); msg != "" {
		fail(w, http.StatusBadRequest, msg)
		return
	}

	f = f.Normalized()
	reg, err := s.store.UpdateOwner(c.Subject, pets.Owner{Name: f.Name, Email: f.Email, Phone: f.Phone})
	switch {
	case errors.Is(err, ErrEmailTaken):
		fail(w, http.StatusConflict, "An owner with this email is already registered")
	case err != nil:
		fail(w, http.StatusNotFound, "Registration not found")
	default:
		ok(w, http.StatusOK, "Owner details updated", reg)
	}
}

type passwordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

func (s *Server) updatePassword(w http.ResponseWriter, r *http.Request) {
	c, _ := GetClaims(r.Context())

	var req passwordRequest
	if !decode(r, &req) {
		fail(w, http.StatusBadRequest, "invalid json")
		return
	}
	if msg := firstError(validation.Struct(req)); msg != "" {
		fail(w, http.StatusBadRequest, msg)
		return
	}

	err := s.store.UpdateOwnerPassword(c.Subject, req.CurrentPassword, req.NewPassword)
	switch {
	case errors.Is(err, ErrBadCredential):
		fail(w, http.StatusBadRequest, "Current password is incorrect")
	case err != nil:
		fail(w, http.StatusNotFound, "Owner not found")
	default:
		ok(w, http.StatusOK, "Password updated successfully", nil)
	}
}

func (s *Server) allRegistrations(w http.ResponseWriter, _ *http.Request) {
	ok(w, http.StatusOK, "", s.store.Registrations(""))
}

func (s *Server) setRegistrationStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status pets.Status `json:"status"`
	}
	if !decode(r, &req) {
		fail(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !req.Status.Valid() {
		fail(w, http.StatusBadRequest, "status must be pending, approved or rejected")
		return
	}

	reg, err := s.store.SetRegistrationStatus(chi.URLParam(r, "id"), req.Status)
	if err != nil {
		fail(w, http.StatusNotFound, "Registration not found")
		return
	}
	ok(w, http.StatusOK, "Registration "+string(req.Status), reg)
}

func (s *Server) deleteRegistration(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteRegistration(chi.URLParam(r, "id")); err != nil {
		fail(w, http.StatusNotFound, "Registration not found")
		return
	}
	ok(w, http.StatusOK, "Registration deleted", nil)
}
