package api

import (
	"context"
	"net/http"

	"pet-adoption-portal/internal/domain/adoption"
	"pet-adoption-portal/internal/domain/contact"
)

func (c *Client) SubmitAdoption(ctx context.Context, f adoption.Form) (adoption.Request, error) {
	out, _, err := call[adoption.Request](ctx, c, http.MethodPost, "/api/adoptions", f.Normalized(), true)
	return out, err
}

// OwnerAdoptionRequests trae las solicitudes sobre las mascotas del dueño logueado.
func (c *Client) OwnerAdoptionRequests(ctx context.Context) ([]adoption.Request, error) {
	out, _, err := call[[]adoption.Request](ctx, c, http.MethodGet, "/api/adoptions/owner", nil, true)
	return out, err
}

func (c *Client) UpdateAdoptionStatus(ctx context.Context, id string, st adoption.Status) (adoption.Request, error) {
	body := map[string]adoption.Status{"adoptionStatus": st}
	out, _, err := call[adoption.Request](ctx, c, http.MethodPatch, idPath("/api/adoptions/%s/status", id), body, true)
	return out, err
}

func (c *Client) SendContact(ctx context.Context, f contact.Form) (string, error) {
	_, msg, err := call[struct{}](ctx, c, http.MethodPost, "/api/contact", f.Normalized(), false)
	return msg, err
}
