package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-portal/internal/api"
	"pet-adoption-portal/internal/domain/accounts"
	"pet-adoption-portal/internal/domain/adoption"
	"pet-adoption-portal/internal/domain/contact"
	"pet-adoption-portal/internal/domain/pets"
	"pet-adoption-portal/internal/fakeapi"
	"pet-adoption-portal/internal/platform/httpclient"
	"pet-adoption-portal/internal/session"
	"pet-adoption-portal/internal/validation"
)

func newClient(t *testing.T, baseURL string) (*api.Client, *session.Provider) {
	t.Helper()
	hc, err := httpclient.NewWithBaseURL(baseURL, 0, nil)
	require.NoError(t, err)
	sp := session.NewProvider(session.NewMemoryStore())
	return api.NewClient(hc, sp), sp
}

func newFake(t *testing.T) (*api.Client, *session.Provider, *fakeapi.Server) {
	t.Helper()
	srv, err := fakeapi.New(fakeapi.Options{JWTSecret: "test", Seed: true})
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	c, sp := newClient(t, ts.URL)
	return c, sp, srv
}

func signIn(t *testing.T, c *api.Client, sp *session.Provider, email, password string) {
	t.Helper()
	res, err := c.Login(context.Background(), accounts.LoginForm{Email: email, Password: password})
	require.NoError(t, err)
	require.NoError(t, sp.SignIn(session.Session{Kind: session.KindUser, Token: res.Token}))
}

func TestClient_LoginAndRegister(t *testing.T) {
	c, _, _ := newFake(t)
	ctx := context.Background()

	res, err := c.Login(ctx, accounts.LoginForm{Email: "  ADA@petnest.test ", Password: fakeapi.SeedUserPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, accounts.RoleUser, res.User.Role)

	_, err = c.Login(ctx, accounts.LoginForm{Email: fakeapi.SeedUserEmail, Password: "bad"})
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", api.MessageOf(err, "Login failed"))
	assert.True(t, api.IsUnauthorized(err))

	reg, err := c.Register(ctx, accounts.SignupForm{Username: "newbie", Email: "new@example.com", Password: "secret1", ConfirmPassword: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "newbie", reg.User.Username)

	_, err = c.Register(ctx, accounts.SignupForm{Username: "again", Email: "new@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.Equal(t, "An account with this email already exists", api.MessageOf(err, "x"))
}

func TestClient_LoginWithoutTokenIsRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"ok","user":{"_id":"1"}}`))
	}))
	defer ts.Close()

	c, _ := newClient(t, ts.URL)
	_, err := c.Login(context.Background(), accounts.LoginForm{Email: "a@b.co", Password: "x"})
	var aerr *api.Error
	require.ErrorAs(t, err, &aerr)
}

func TestClient_SuccessFalseIsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"message":"Database unavailable"}`))
	}))
	defer ts.Close()

	c, _ := newClient(t, ts.URL)
	_, err := c.Products(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Database unavailable", api.MessageOf(err, "fallback"))
}

func TestClient_AuthHeaderOnlyOnAuthedCalls(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.URL.Path+"|"+r.Header.Get("Authorization"))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer ts.Close()

	c, sp := newClient(t, ts.URL)
	require.NoError(t, sp.SignIn(session.Session{Kind: session.KindPetOwner, Token: "tok"}))

	_, err := c.ApprovedPets(context.Background())
	require.NoError(t, err)
	_, err = c.OwnerAdoptionRequests(context.Background())
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/api/pets/approved|", "/api/adoptions/owner|Bearer tok"}, seen)
}

func TestClient_AdoptionFlow(t *testing.T) {
	c, sp, srv := newFake(t)
	ctx := context.Background()

	list, err := c.ApprovedPets(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	target := list[0]

	form := adoption.Form{PetID: target.ID, AdopterName: "Ada", AdopterEmail: "ada@example.com", AdopterPhone: "555 123 4567"}

	_, err = c.SubmitAdoption(ctx, form)
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))
	assert.Equal(t, 0, srv.Store().RequestCount())

	signIn(t, c, sp, fakeapi.SeedUserEmail, fakeapi.SeedUserPassword)
	req, err := c.SubmitAdoption(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, adoption.StatusPending, req.AdoptionStatus)
	assert.Equal(t, target.Pet.Name, req.PetName)
}

func TestClient_AdminModeration(t *testing.T) {
	c, sp, _ := newFake(t)
	ctx := context.Background()
	signIn(t, c, sp, fakeapi.SeedAdminEmail, fakeapi.SeedAdminPassword)

	all, err := c.AllRegistrations(ctx)
	require.NoError(t, err)
	counts := pets.CountByStatus(all)
	require.Equal(t, 1, counts[pets.StatusPending])

	var pendingID string
	for _, r := range all {
		if r.Status == pets.StatusPending {
			pendingID = r.ID
		}
	}

	reg, err := c.UpdateRegistrationStatus(ctx, pendingID, pets.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, pets.StatusRejected, reg.Status)

	require.NoError(t, c.DeleteRegistration(ctx, pendingID))
	err = c.DeleteRegistration(ctx, pendingID)
	var herr *httpclient.HTTPError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, http.StatusNotFound, herr.StatusCode)
}

func TestClient_ForbiddenIsNotUnauthorized(t *testing.T) {
	c, sp, _ := newFake(t)
	signIn(t, c, sp, fakeapi.SeedUserEmail, fakeapi.SeedUserPassword)

	_, err := c.AllRegistrations(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsForbidden(err))
	assert.False(t, api.IsUnauthorized(err))
	assert.Equal(t, "You are not allowed to do that", api.MessageOf(err, "fallback"))
}

func TestClient_ProductUpdate(t *testing.T) {
	c, sp, _ := newFake(t)
	ctx := context.Background()
	signIn(t, c, sp, fakeapi.SeedAdminEmail, fakeapi.SeedAdminPassword)

	list, err := c.Products(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, list)

	price := decimal.RequireFromString("19.99")
	p, err := c.UpdateProduct(ctx, list[0].ID, api.ProductPatch{Price: &price})
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(price))
	assert.Equal(t, list[0].Stock, p.Stock)
}

func TestClient_OwnerProfileAndLogout(t *testing.T) {
	c, sp, _ := newFake(t)
	ctx := context.Background()

	res, err := c.OwnerLogin(ctx, accounts.LoginForm{Email: fakeapi.SeedOwnerEmail, Password: fakeapi.SeedOwnerPassword})
	require.NoError(t, err)
	require.NoError(t, sp.SignIn(session.Session{Kind: session.KindPetOwner, Token: res.Token}))

	reg, err := c.MyProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Biscuit", reg.Pet.Name)

	msg, err := c.UpdatePassword(ctx, pets.PasswordForm{CurrentPassword: fakeapi.SeedOwnerPassword, NewPassword: "another1", ConfirmPassword: "another1"})
	require.NoError(t, err)
	assert.Equal(t, "Password updated successfully", msg)

	require.NoError(t, c.OwnerLogout(ctx))
	_, err = c.MyProfile(ctx)
	assert.True(t, api.IsUnauthorized(err))
}

func TestClient_Contact(t *testing.T) {
	c, _, srv := newFake(t)

	msg, err := c.SendContact(context.Background(), contact.Form{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello there, friends!"})
	require.NoError(t, err)
	assert.NotEmpty(t, msg)
	assert.Len(t, srv.Store().Contacts(), 1)
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "", api.MessageOf(nil, "x"))
	assert.Equal(t, "srv", api.MessageOf(&httpclient.HTTPError{StatusCode: 500, Message: "srv"}, "x"))
	assert.Equal(t, "x", api.MessageOf(&httpclient.HTTPError{StatusCode: 500}, "x"))
	assert.Equal(t, "bad", api.MessageOf(&api.Error{Message: "bad"}, "x"))
	assert.Equal(t, "Name is required", api.MessageOf(validation.FieldErrors{"name": "Name is required"}, "x"))
	assert.Equal(t, "x", api.MessageOf(errors.New("boom"), "x"))
}

func TestClient_NotConfigured(t *testing.T) {
	var c *api.Client
	_, err := c.Products(context.Background())
	assert.ErrorIs(t, err, api.ErrNotConfigured)
}
