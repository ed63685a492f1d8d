package api

import (
	"context"
	"net/http"

	"pet-adoption-portal/internal/domain/pets"
)

func (c *Client) RegisterPet(ctx context.Context, req pets.RegistrationRequest) (pets.Registration, string, error) {
	return call[pets.Registration](ctx, c, http.MethodPost, "/api/pets/register", req, false)
}

// ApprovedPets es la lista pública de la página /pets.
func (c *Client) ApprovedPets(ctx context.Context) ([]pets.Registration, error) {
	out, _, err := call[[]pets.Registration](ctx, c, http.MethodGet, "/api/pets/approved", nil, false)
	return out, err
}

func (c *Client) MyProfile(ctx context.Context) (pets.Registration, error) {
	out, _, err := call[pets.Registration](ctx, c, http.MethodGet, "/api/pets/my-profile", nil, true)
	return out, err
}

func (c *Client) UpdatePet(ctx context.Context, p pets.Pet) (pets.Registration, error) {
	out, _, err := call[pets.Registration](ctx, c, http.MethodPatch, "/api/pets/update-pet", p, true)
	return out, err
}

func (c *Client) UpdateOwner(ctx context.Context, f pets.OwnerUpdateForm) (pets.Registration, error) {
	out, _, err := call[pets.Registration](ctx, c, http.MethodPatch, "/api/pets/update-owner", f.Normalized(), true)
	return out, err
}

func (c *Client) UpdatePassword(ctx context.Context, f pets.PasswordForm) (string, error) {
	_, msg, err := call[struct{}](ctx, c, http.MethodPatch, "/api/pets/update-password", f, true)
	return msg, err
}

// AllRegistrations es sólo para admin.
func (c *Client) AllRegistrations(ctx context.Context) ([]pets.Registration, error) {
	out, _, err := call[[]pets.Registration](ctx, c, http.MethodGet, "/api/pets/all-registrations", nil, true)
	return out, err
}

func (c *Client) UpdateRegistrationStatus(ctx context.Context, id string, st pets.Status) (pets.Registration, error) {
	body := map[string]pets.Status{"status": st}
	out, _, err := call[pets.Registration](ctx, c, http.MethodPatch, idPath("/api/pets/status/%s", id), body, true)
	return out, err
}

func (c *Client) DeleteRegistration(ctx context.Context, id string) error {
	_, _, err := call[struct{}](ctx, c, http.MethodDelete, idPath("/api/admin/delete-registration/%s", id), nil, true)
	return err
}
