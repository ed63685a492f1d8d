package pages_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-portal/internal/domain/adoption"
	"pet-adoption-portal/internal/domain/pets"
	"pet-adoption-portal/internal/fakeapi"
	"pet-adoption-portal/internal/pages"
	"pet-adoption-portal/internal/session"
	"pet-adoption-portal/internal/ui"
)

func TestAdoptionRequests_OwnerOnly(t *testing.T) {
	h := newHarness(t, 0)

	err := h.app.Router.Navigate(h.ctx, "/adoption-requests", nil)
	assert.ErrorIs(t, err, session.ErrLoginRequired)
	assert.Equal(t, "/pet-owner-login", currentPath(h))

	h.loginUser(t, fakeapi.SeedUserEmail, fakeapi.SeedUserPassword)
	err = h.app.Router.Navigate(h.ctx, "/adoption-requests", nil)
	assert.ErrorIs(t, err, session.ErrLoginRequired)
	assert.Equal(t, 0, h.calls.count("GET /api/adoptions/owner"))
}

func TestAdoptionFlow_OwnerApprovesAndPetIsAdopted(t *testing.T) {
	h := newHarness(t, 0)

	// adoptante pide a Biscuit
	h.loginUser(t, fakeapi.SeedUserEmail, fakeapi.SeedUserPassword)
	petsPage := open[*pages.Pets](t, h, "/pets", nil)
	biscuit := findPet(t, petsPage.All, "Biscuit")
	require.NoError(t, petsPage.Adopt(biscuit.ID))
	require.NoError(t, petsPage.SubmitAdoption(h.ctx, adoption.Form{
		AdopterName: "Ada", AdopterEmail: "ada@example.com", AdopterPhone: "555-123-4567", Message: "I have a big yard",
	}))

	// el dueño entra (reemplaza la sesión del adoptante) y aprueba
	h.loginOwner(t, fakeapi.SeedOwnerEmail, fakeapi.SeedOwnerPassword)
	s, ok := h.app.Sessions.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, session.KindPetOwner, s.Kind)

	req := open[*pages.AdoptionRequests](t, h, "/adoption-requests", nil)
	require.Len(t, req.All, 1)
	assert.Equal(t, 1, req.Counts()[adoption.StatusPending])

	req.SetStatus("approved")
	assert.Empty(t, req.Visible())
	req.SetStatus("all")

	require.NoError(t, req.Approve(h.ctx, req.All[0].ID))
	assert.Equal(t, adoption.StatusApproved, req.All[0].AdoptionStatus)
	assert.Equal(t, 2, h.calls.count("GET /api/adoptions/owner"))

	// Biscuit ya no se puede adoptar
	petsPage = open[*pages.Pets](t, h, "/pets", nil)
	biscuit = findPet(t, petsPage.All, "Biscuit")
	assert.Equal(t, pets.AdoptionAdopted, biscuit.AdoptionStatus)
	assert.ErrorIs(t, petsPage.Adopt(biscuit.ID), pages.ErrUnavailable)
}

func TestPetOwnerProfile_EditAndLogout(t *testing.T) {
	h := newHarness(t, 0)
	h.loginOwner(t, fakeapi.SeedOwnerEmail, fakeapi.SeedOwnerPassword)

	p := current[*pages.PetOwnerProfile](t, h)
	assert.Equal(t, "Biscuit", p.Registration.Pet.Name)
	assert.Equal(t, "2 years", p.AgeLabel())

	p.EditPet()
	assert.Equal(t, ui.ModalEditPet, p.Modal)
	f := p.PetForm
	f.Name = ""
	require.Error(t, p.SavePet(h.ctx, f))
	assert.Contains(t, p.Errors, "name")
	assert.Equal(t, 0, h.calls.count("PATCH /api/pets/update-pet"))

	f.Name = "Biscuit Jr"
	f.Age = 2.5
	require.NoError(t, p.SavePet(h.ctx, f))
	assert.Equal(t, "Biscuit Jr", p.Registration.Pet.Name)
	assert.Equal(t, "2.5 years", p.AgeLabel())
	assert.Equal(t, ui.ModalNone, p.Modal)

	p.EditOwner()
	of := p.OwnerForm
	of.Name = "Grace B. Hopper"
	require.NoError(t, p.SaveOwner(h.ctx, of))
	assert.Equal(t, "Hi, Grace B. Hopper", h.app.Header.Greeting())

	p.ChangePassword()
	require.Error(t, p.SavePassword(h.ctx, pets.PasswordForm{CurrentPassword: fakeapi.SeedOwnerPassword, NewPassword: "newpass1", ConfirmPassword: "other"}))
	assert.Contains(t, p.Errors, "confirmPassword")
	assert.Equal(t, 0, h.calls.count("PATCH /api/pets/update-password"))

	require.Error(t, p.SavePassword(h.ctx, pets.PasswordForm{CurrentPassword: "wrong-one", NewPassword: "newpass1", ConfirmPassword: "newpass1"}))
	assert.Equal(t, "Current password is incorrect", h.rec.Last().Message)

	require.NoError(t, p.SavePassword(h.ctx, pets.PasswordForm{CurrentPassword: fakeapi.SeedOwnerPassword, NewPassword: "newpass1", ConfirmPassword: "newpass1"}))

	require.NoError(t, p.Logout(h.ctx))
	_, ok := h.app.Sessions.CurrentUser()
	assert.False(t, ok)
	assert.Equal(t, "/", currentPath(h))
	assert.Equal(t, 1, h.calls.count("GET /api/pets/logout"))
}
