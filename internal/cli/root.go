// Package cli expone el portal como comandos: cada comando monta la página
// correspondiente y opera sobre ella igual que lo haría la UI.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pet-adoption-portal/internal/app"
	"pet-adoption-portal/internal/config"
	"pet-adoption-portal/internal/ui"
)

// Env son las dependencias del proceso; los tests las reemplazan.
type Env struct {
	Load    func() (*config.Config, error)
	Out     io.Writer
	Err     io.Writer
	Options []app.Option
}

type runtime struct {
	env Env

	apiURL      string
	sessionFile string
	logLevel    string

	cfg *config.Config
	app *app.App
}

// NewRootCmd arma el árbol de comandos.
func NewRootCmd(env Env) *cobra.Command {
	if env.Load == nil {
		env.Load = config.Load
	}
	if env.Out == nil {
		env.Out = os.Stdout
	}
	if env.Err == nil {
		env.Err = os.Stderr
	}
	rt := &runtime{env: env}

	root := &cobra.Command{
		Use:           "portal",
		Short:         "PetNest: adopt a pet, register yours, shop for supplies",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.loadConfig()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			rt.close()
		},
	}
	root.SetOut(env.Out)
	root.SetErr(env.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&rt.apiURL, "api-url", "", "backend base URL (overrides API_BASE_URL)")
	pf.StringVar(&rt.sessionFile, "session-file", "", "where the login session is kept (overrides SESSION_FILE)")
	pf.StringVar(&rt.logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")

	root.AddCommand(
		newRoutesCmd(rt),
		newHomeCmd(rt),
		newAboutCmd(rt),
		newSignupCmd(rt),
		newLoginCmd(rt),
		newLogoutCmd(rt),
		newWhoamiCmd(rt),
		newPetsCmd(rt),
		newProductsCmd(rt),
		newShopCmd(rt),
		newContactCmd(rt),
		newAdminCmd(rt),
		newOwnerCmd(rt),
		newFakeAPICmd(rt),
	)
	return root
}

// Execute corre el CLI con args y devuelve el error final (ya impreso).
func Execute(ctx context.Context, env Env, args []string) error {
	root := NewRootCmd(env)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), errorColor.Sprint("Error: ")+err.Error())
	}
	return err
}

func (rt *runtime) loadConfig() error {
	cfg, err := rt.env.Load()
	if err != nil {
		return err
	}
	if rt.apiURL != "" {
		cfg.API.BaseURL = rt.apiURL
	}
	if rt.sessionFile != "" {
		cfg.Session.File = rt.sessionFile
	}
	if rt.logLevel != "" {
		cfg.Log.Level = rt.logLevel
	}
	// el CLI necesita que la sesión sobreviva entre invocaciones
	if cfg.Session.File == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.Session.File = filepath.Join(dir, "petnest", "session.json")
		}
	}
	rt.cfg = cfg
	return nil
}

// portal construye la app la primera vez que un comando la pide.
func (rt *runtime) portal() (*app.App, error) {
	if rt.app != nil {
		return rt.app, nil
	}
	if rt.cfg == nil {
		if err := rt.loadConfig(); err != nil {
			return nil, err
		}
	}
	opts := append([]app.Option{app.WithNotifier(ui.NewConsole(rt.env.Err))}, rt.env.Options...)
	a, err := app.New(rt.cfg, opts...)
	if err != nil {
		return nil, err
	}
	rt.app = a
	return a, nil
}

func (rt *runtime) close() {
	if rt.app != nil {
		rt.app.Close()
		rt.app = nil
	}
}

// open monta la página de path y la devuelve tipada.
func open[P ui.Page](cmd *cobra.Command, rt *runtime, path string) (P, error) {
	var zero P
	a, err := rt.portal()
	if err != nil {
		return zero, err
	}
	return app.Open[P](cmd.Context(), a, path, nil)
}

// current devuelve la página a la que se llegó tras una acción que navega.
func current[P ui.Page](rt *runtime) (P, error) {
	var zero P
	a, err := rt.portal()
	if err != nil {
		return zero, err
	}
	return app.Current[P](a)
}
