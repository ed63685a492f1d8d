// Package app arma las dependencias de la app a partir de la config.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"pet-adoption-portal/internal/api"
	"pet-adoption-portal/internal/config"
	"pet-adoption-portal/internal/domain/orders"
	"pet-adoption-portal/internal/pages"
	"pet-adoption-portal/internal/platform/httpclient"
	"pet-adoption-portal/internal/platform/logger"
	"pet-adoption-portal/internal/session"
	"pet-adoption-portal/internal/ui"
	"pet-adoption-portal/internal/ui/chrome"
	"pet-adoption-portal/internal/ui/router"
)

type App struct {
	Config   *config.Config
	Log      logger.Logger
	API      *api.Client
	Sessions *session.Provider
	Notify   ui.Notifier
	Router   *router.Router
	Header   *chrome.Header
	Footer   chrome.Footer
}

type Option func(*options)

type options struct {
	notify ui.Notifier
	store  session.Store
	log    logger.Logger
}

// WithNotifier reemplaza los toasts de consola (tests usan ui.Recorder).
func WithNotifier(n ui.Notifier) Option {
	return func(o *options) { o.notify = n }
}

func WithSessionStore(s session.Store) Option {
	return func(o *options) { o.store = s }
}

func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("app: nil config")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	log := o.log
	if log == nil {
		log = logger.New(logger.Options{
			Level:  logger.ParseLevel(cfg.Log.Level),
			Format: logger.ParseFormat(cfg.Log.Format),
			App:    cfg.Log.App,
			Out:    os.Stderr,
		})
	}

	store := o.store
	if store == nil {
		if cfg.Session.File != "" {
			store = session.NewFileStore(cfg.Session.File)
		} else {
			store = session.NewMemoryStore()
		}
	}

	notify := o.notify
	if notify == nil {
		notify = ui.NewConsole(os.Stderr)
	}

	hc, err := httpclient.NewWithBaseURL(cfg.API.BaseURL, cfg.API.Timeout, log.With(map[string]any{"component": "httpclient"}))
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	sessions := session.NewProvider(store)
	client := api.NewClient(hc, sessions)
	r := router.New(log.With(map[string]any{"component": "router"}))

	header := &chrome.Header{
		Sessions: sessions,
		API:      client,
		Nav:      r,
		Notify:   notify,
		Log:      log,
	}

	pages.Register(r, pages.Deps{
		API:      client,
		Sessions: sessions,
		Nav:      r,
		Notify:   notify,
		Log:      log.With(map[string]any{"component": "pages"}),
		Placer:   orders.NewPlacer(cfg.Order.PlacementDelay),
	}, header)

	return &App{
		Config:   cfg,
		Log:      log,
		API:      client,
		Sessions: sessions,
		Notify:   notify,
		Router:   r,
		Header:   header,
		Footer:   chrome.Footer{Now: time.Now},
	}, nil
}

// Open navega a path y devuelve la página montada, tipada.
func Open[P ui.Page](ctx context.Context, a *App, path string, state any) (P, error) {
	var zero P
	if err := a.Router.Navigate(ctx, path, state); err != nil {
		return zero, err
	}
	return Current[P](a)
}

// Current devuelve la página actual si es del tipo pedido (puede haber habido redirect).
func Current[P ui.Page](a *App) (P, error) {
	var zero P
	page, nav, ok := a.Router.Current()
	if !ok {
		return zero, ui.ErrNotFound
	}
	p, ok := page.(P)
	if !ok {
		return zero, fmt.Errorf("app: redirected to %s", nav.Path)
	}
	return p, nil
}

func (a *App) Close() {
	a.Router.Close()
}
