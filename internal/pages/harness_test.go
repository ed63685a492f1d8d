package pages_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pet-adoption-portal/internal/app"
	"pet-adoption-portal/internal/config"
	"pet-adoption-portal/internal/domain/accounts"
	"pet-adoption-portal/internal/fakeapi"
	"pet-adoption-portal/internal/pages"
	"pet-adoption-portal/internal/platform/logger"
	"pet-adoption-portal/internal/ui"
)

// callCounter cuenta requests por "METHOD /path".
type callCounter struct {
	mu    sync.Mutex
	calls map[string]int
}

func (c *callCounter) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.mu.Lock()
		c.calls[r.Method+" "+r.URL.Path]++
		c.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (c *callCounter) count(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[key]
}

type harness struct {
	app   *app.App
	rec   *ui.Recorder
	srv   *fakeapi.Server
	calls *callCounter
	ctx   context.Context
}

func newHarness(t *testing.T, delay time.Duration) *harness {
	t.Helper()
	return newHarnessWith(t, delay)
}

// newHarnessWith aplica opts después de los defaults del harness.
func newHarnessWith(t *testing.T, delay time.Duration, opts ...app.Option) *harness {
	t.Helper()

	srv, err := fakeapi.New(fakeapi.Options{JWTSecret: "pages-test", Seed: true})
	require.NoError(t, err)

	calls := &callCounter{calls: map[string]int{}}
	ts := httptest.NewServer(calls.wrap(srv.Handler()))
	t.Cleanup(ts.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = ts.URL
	cfg.Order.PlacementDelay = delay

	rec := ui.NewRecorder()
	a, err := app.New(cfg, append([]app.Option{app.WithNotifier(rec), app.WithLogger(logger.Nop())}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(a.Close)

	return &harness{app: a, rec: rec, srv: srv, calls: calls, ctx: context.Background()}
}

func open[P ui.Page](t *testing.T, h *harness, path string, state any) P {
	t.Helper()
	p, err := app.Open[P](h.ctx, h.app, path, state)
	require.NoError(t, err)
	return p
}

func current[P ui.Page](t *testing.T, h *harness) P {
	t.Helper()
	p, err := app.Current[P](h.app)
	require.NoError(t, err)
	return p
}

func currentPath(h *harness) string {
	_, nav, _ := h.app.Router.Current()
	return nav.Path
}

func (h *harness) loginUser(t *testing.T, email, password string) {
	t.Helper()
	p := open[*pages.UserLogin](t, h, "/login", nil)
	require.NoError(t, p.Submit(h.ctx, accounts.LoginForm{Email: email, Password: password}))
}

func (h *harness) loginOwner(t *testing.T, email, password string) {
	t.Helper()
	p := open[*pages.PetOwnerLogin](t, h, "/pet-owner-login", nil)
	require.NoError(t, p.Submit(h.ctx, accounts.LoginForm{Email: email, Password: password}))
}
