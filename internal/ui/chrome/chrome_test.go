package chrome_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-portal/internal/session"
	"pet-adoption-portal/internal/ui"
	"pet-adoption-portal/internal/ui/chrome"
)

type navSpy struct{ paths []string }

func (n *navSpy) Navigate(_ context.Context, path string, _ any) error {
	n.paths = append(n.paths, path)
	return nil
}

func (n *navSpy) Back(context.Context) error { return nil }

type logoutSpy struct {
	calls int
	err   error
}

func (l *logoutSpy) OwnerLogout(context.Context) error {
	l.calls++
	return l.err
}

func newHeader() (*chrome.Header, *navSpy, *logoutSpy, *ui.Recorder) {
	nav, out, rec := &navSpy{}, &logoutSpy{}, ui.NewRecorder()
	return &chrome.Header{
		Sessions: session.NewProvider(nil),
		API:      out,
		Nav:      nav,
		Notify:   rec,
	}, nav, out, rec
}

func paths(links []chrome.Link) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.Path)
	}
	return out
}

func TestHeader_LinksDependOnSession(t *testing.T) {
	h, _, _, _ := newHeader()

	assert.Contains(t, paths(h.Links()), "/user-reg")
	assert.NotContains(t, paths(h.Links()), "/admin")
	assert.Equal(t, "", h.Greeting())

	require.NoError(t, h.Sessions.SignIn(session.Session{Token: "t", Identity: session.Identity{Username: "root", Role: session.RoleAdmin}}))
	assert.Contains(t, paths(h.Links()), "/admin")
	assert.NotContains(t, paths(h.Links()), "/user-reg")
	assert.Equal(t, "Hi, root", h.Greeting())

	require.NoError(t, h.Sessions.SignIn(session.Session{Kind: session.KindPetOwner, Token: "t", Identity: session.Identity{Name: "Grace"}}))
	assert.Contains(t, paths(h.Links()), "/adoption-requests")
	assert.NotContains(t, paths(h.Links()), "/admin")
}

func TestHeader_LoginChooser(t *testing.T) {
	h, nav, _, _ := newHeader()

	h.OpenLogin()
	assert.Equal(t, ui.ModalLoginChooser, h.Modal)

	require.NoError(t, h.ChooseLogin(context.Background(), true))
	assert.Equal(t, ui.ModalNone, h.Modal)
	require.NoError(t, h.ChooseLogin(context.Background(), false))
	assert.Equal(t, []string{"/pet-owner-login", "/login"}, nav.paths)
}

func TestHeader_LogoutOwnerCallsAPIEvenIfItFails(t *testing.T) {
	h, nav, out, rec := newHeader()
	out.err = errors.New("down")
	require.NoError(t, h.Sessions.SignIn(session.Session{Kind: session.KindPetOwner, Token: "t"}))

	require.NoError(t, h.Logout(context.Background()))
	assert.Equal(t, 1, out.calls)
	_, ok := h.Sessions.CurrentUser()
	assert.False(t, ok)
	assert.Equal(t, []string{"/"}, nav.paths)
	assert.Equal(t, ui.LevelSuccess, rec.Last().Level)
}

func TestHeader_LogoutUserSkipsOwnerEndpoint(t *testing.T) {
	h, _, out, _ := newHeader()
	require.NoError(t, h.Sessions.SignIn(session.Session{Kind: session.KindUser, Token: "t"}))

	require.NoError(t, h.Logout(context.Background()))
	assert.Equal(t, 0, out.calls)
}

func TestFooter(t *testing.T) {
	f := chrome.Footer{Now: func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }}
	assert.Equal(t, "© 2026 PetNest. All rights reserved.", f.Copyright())
	assert.NotEmpty(t, f.Links())
}
