// Package router es la tabla de rutas de páginas. Usa el matcher de chi
// sobre paths de la app (no sirve HTTP).
package router

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"pet-adoption-portal/internal/platform/logger"
	"pet-adoption-portal/internal/ui"
)

var ErrNoHistory = errors.New("no previous page")

// Factory crea una instancia nueva de la página en cada visita (estado local por visita).
type Factory func() ui.Page

type entry struct {
	nav  ui.Navigation
	page ui.Page
}

type Router struct {
	mux       *chi.Mux
	factories map[string]Factory
	patterns  []string
	log       logger.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	history []entry
}

func New(log logger.Logger) *Router {
	if log == nil {
		log = logger.Nop()
	}
	return &Router{
		mux:       chi.NewMux(),
		factories: map[string]Factory{},
		log:       log,
	}
}

func (r *Router) Handle(pattern string, f Factory) {
	r.mux.Get(pattern, func(http.ResponseWriter, *http.Request) {})
	if _, exists := r.factories[pattern]; !exists {
		r.patterns = append(r.patterns, pattern)
	}
	r.factories[pattern] = f
}

// Routes devuelve los patterns en orden de registro.
func (r *Router) Routes() []string {
	out := make([]string, len(r.patterns))
	copy(out, r.patterns)
	return out
}

// Navigate desmonta la página actual (cancela su ctx) y monta la del path.
func (r *Router) Navigate(ctx context.Context, path string, state any) error {
	nav, f, err := r.resolve(path)
	if err != nil {
		return err
	}
	nav.State = state
	return r.mount(ctx, nav, f)
}

// Back vuelve a la página anterior con su estado original.
func (r *Router) Back(ctx context.Context) error {
	r.mu.Lock()
	if len(r.history) < 2 {
		r.mu.Unlock()
		return ErrNoHistory
	}
	r.history = r.history[:len(r.history)-1]
	prev := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	r.mu.Unlock()

	_, f, err := r.resolve(prev.nav.Path)
	if err != nil {
		return err
	}
	return r.mount(ctx, prev.nav, f)
}

// Current devuelve la página montada.
func (r *Router) Current() (ui.Page, ui.Navigation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return nil, ui.Navigation{}, false
	}
	e := r.history[len(r.history)-1]
	return e.page, e.nav, true
}

func (r *Router) resolve(raw string) (ui.Navigation, Factory, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ui.Navigation{}, nil, ui.ErrNotFound
	}
	path := u.Path
	if path == "" {
		path = "/"
	}

	rctx := chi.NewRouteContext()
	if !r.mux.Match(rctx, http.MethodGet, path) {
		return ui.Navigation{}, nil, ui.ErrNotFound
	}
	f, ok := r.factories[rctx.RoutePattern()]
	if !ok {
		return ui.Navigation{}, nil, ui.ErrNotFound
	}

	params := map[string]string{}
	for k, vals := range u.Query() {
		if len(vals) > 0 {
			params[k] = vals[0]
		}
	}
	for i, k := range rctx.URLParams.Keys {
		params[k] = rctx.URLParams.Values[i]
	}
	return ui.Navigation{Path: path, Params: params}, f, nil
}

// pageKey marca los ctx de montaje que emite el router.
type pageKey struct{}

func (r *Router) mount(ctx context.Context, nav ui.Navigation, f Factory) error {
	page := f()

	// Un redirect desde Mount llega con el ctx de la página que se está
	// desmontando: la nueva página no puede heredar esa cancelación.
	parent := ctx
	if ctx.Value(pageKey{}) != nil {
		parent = context.WithoutCancel(ctx)
	}
	pageCtx, cancel := context.WithCancel(context.WithValue(parent, pageKey{}, nav.Path))

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	r.cancel = cancel
	r.history = append(r.history, entry{nav: nav, page: page})
	r.mu.Unlock()

	r.log.Debug("navigate", map[string]any{"path": nav.Path})
	return page.Mount(pageCtx, nav)
}

// Close desmonta la página actual.
func (r *Router) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}
