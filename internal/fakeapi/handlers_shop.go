package fakeapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-adoption-portal/internal/domain/adoption"
	"pet-adoption-portal/internal/domain/contact"
	"pet-adoption-portal/internal/domain/products"
)

func (s *Server) listProducts(w http.ResponseWriter, _ *http.Request) {
	ok(w, http.StatusOK, "", s.store.Products())
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var req products.CreateRequest
	if !decode(r, &req) {
		fail(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ProductName == "" || !req.Price.IsPositive() || req.Stock < 0 {
		fail(w, http.StatusBadRequest, "product name, a positive price and a non-negative stock are required")
		return
	}

	p := s.store.CreateProduct(products.Product{
		ProductName: req.ProductName,
		Category:    req.Category,
		Brand:       req.Brand,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		InStock:     req.InStock,
		Image:       req.Image,
		Rating:      req.Rating,
	})
	ok(w, http.StatusCreated, "Product added successfully", p)
}

func (s *Server) patchProduct(w http.ResponseWriter, r *http.Request) {
	var patch productPatch
	if !decode(r, &patch) {
		fail(w, http.StatusBadRequest, "invalid json")
		return
	}
	if patch.Price != nil && !patch.Price.IsPositive() {
		fail(w, http.StatusBadRequest, "price must be greater than 0")
		return
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		fail(w, http.StatusBadRequest, "stock cannot be negative")
		return
	}

	p, err := s.store.PatchProduct(chi.URLParam(r, "id"), patch)
	if err != nil {
		fail(w, http.StatusNotFound, "Product not found")
		return
	}
	ok(w, http.StatusOK, "Product updated", p)
}

func (s *Server) submitAdoption(w http.ResponseWriter, r *http.Request) {
	c, _ := GetClaims(r.Context())

	var f adoption.Form
	if !decode(r, &f) {
		fail(w, http.StatusBadRequest, "invalid json")
		return
	}
	if msg := firstError(f.Validate()); msg != "" {
		fail(w, http.StatusBadRequest, msg)
		return
	}

	req, err := s.store.CreateRequest(c.Subject, f.Normalized())
	switch {
	case errors.Is(err, ErrNotFound):
		fail(w, http.StatusNotFound, "Pet not found")
	case errors.Is(err, ErrUnavailable):
		fail(w, http.StatusBadRequest, "This pet is no longer available for adoption")
	case errors.Is(err, ErrDuplicate):
		fail(w, http.StatusConflict, "You already have a pending request for this pet")
	case err != nil:
		fail(w, http.StatusInternalServerError, "could not save request")
	default:
		ok(w, http.StatusCreated, "Adoption request submitted successfully", req)
	}
}

func (s *Server) ownerRequests(w http.ResponseWriter, r *http.Request) {
	c, _ := GetClaims(r.Context())
	list, err := s.store.RequestsForOwner(c.Subject)
	if err != nil {
		fail(w, http.StatusNotFound, "Owner not found")
		return
	}
	ok(w, http.StatusOK, "", list)
}

func (s *Server) decideAdoption(w http.ResponseWriter, r *http.Request) {
	c, _ := GetClaims(r.Context())

	var req struct {
		AdoptionStatus adoption.Status `json:"adoptionStatus"`
	}
	if !decode(r, &req) {
		fail(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.AdoptionStatus != adoption.StatusApproved && req.AdoptionStatus != adoption.StatusRejected {
		fail(w, http.StatusBadRequest, "adoptionStatus must be approved or rejected")
		return
	}

	out, err := s.store.DecideRequest(c.Subject, chi.URLParam(r, "id"), req.AdoptionStatus)
	switch {
	case errors.Is(err, ErrNotFound):
		fail(w, http.StatusNotFound, "Adoption request not found")
	case errors.Is(err, ErrForbidden):
		fail(w, http.StatusForbidden, "This request is not for your pet")
	case err != nil:
		fail(w, http.StatusInternalServerError, "could not update request")
	default:
		ok(w, http.StatusOK, "Adoption request "+string(req.AdoptionStatus), out)
	}
}

func (s *Server) sendContact(w http.ResponseWriter, r *http.Request) {
	var f contact.Form
	if !decode(r, &f) {
		fail(w, http.StatusBadRequest, "invalid json")
		return
	}
	if msg := firstError(f.Validate()); msg != "" {
		fail(w, http.StatusBadRequest, msg)
		return
	}
	s.store.AddContact(f.Normalized())
	ok(w, http.StatusOK, "Thank you for contacting us! We'll get back to you soon.", nil)
}
