package main

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/storemanage/internal/application/storemanage"
	"github.com/jhoicas/storemanage/internal/infrastructure/notify"
	"github.com/jhoicas/storemanage/internal/infrastructure/restclient"
	"github.com/jhoicas/storemanage/pkg/config"
	"github.com/jhoicas/storemanage/pkg/logger"
)

// notifiedError error que la vista ya mostró al usuario; main no lo repite.
type notifiedError struct{ err error }

func (e notifiedError) Error() string { return e.err.Error() }
func (e notifiedError) Unwrap() error { return e.err }

type options struct {
	apiURL   string
	email    string
	password string
	timeout  time.Duration
	json     bool
}

// app lo que comparten los subcomandos una vez resuelta la configuración.
type app struct {
	opts   *options
	log    *logger.Logger
	client *restclient.Client
	view   *storemanage.View
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:   "storemanage",
		Short: "Gestión de stocks de una tienda",
		Long: `Carga una tienda, sus stocks y el catálogo completo desde la API y permite
asociar o desasociar stocks. Tras cada cambio se recarga todo desde el servidor.

La configuración sale de API_BASE_URL, API_EMAIL, API_PASSWORD y API_TIMEOUT_SECONDS;
los flags tienen prioridad.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.apiURL, "api-url", "", "URL base de la API (API_BASE_URL)")
	pf.StringVar(&opts.email, "email", "", "email para autenticarse (API_EMAIL)")
	pf.StringVar(&opts.password, "password", "", "password (API_PASSWORD)")
	pf.DurationVar(&opts.timeout, "timeout", 0, "timeout por petición (API_TIMEOUT_SECONDS)")
	pf.BoolVar(&opts.json, "json", false, "salida JSON en lugar de tablas")

	root.AddCommand(
		a.showCmd(),
		a.mutateCmd("add", "Asocia un stock a la tienda", (*storemanage.View).AddStock),
		a.mutateCmd("remove", "Desasocia un stock de la tienda", (*storemanage.View).RemoveStock),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cc := cfg.Client
	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cc.BaseURL = a.opts.apiURL
	}
	if flags.Changed("email") {
		cc.Email = a.opts.email
	}
	if flags.Changed("password") {
		cc.Password = a.opts.password
	}
	if flags.Changed("timeout") {
		cc.Timeout = a.opts.timeout
	}

	a.log = logger.New(logger.Config{
		Env:    cfg.App.Env,
		Level:  cfg.App.LogLevel,
		Output: cmd.ErrOrStderr(),
	})
	a.client = restclient.New(cc.BaseURL, cc.Timeout, a.log)

	if cc.Email != "" && cc.Password != "" {
		if _, err := a.client.Login(cmd.Context(), cc.Email, cc.Password); err != nil {
			return err
		}
	}

	// Con --json stdout queda solo para el documento.
	notifyOut := cmd.OutOrStdout()
	if a.opts.json {
		notifyOut = cmd.ErrOrStderr()
	}
	notifier := notify.Multi{
		notify.NewWriterNotifier(notifyOut),
		notify.NewLogNotifier(a.log).WithLevel(zerolog.DebugLevel),
	}
	a.view = storemanage.NewView(a.client, a.client, notifier, a.log)
	return nil
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <storeID>",
		Short: "Muestra la tienda, sus stocks y los disponibles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.view.Initialize(cmd.Context(), args[0]); err != nil {
				return notifiedError{err}
			}
			return a.render(cmd)
		},
	}
}

func (a *app) mutateCmd(use, short string, op func(*storemanage.View, context.Context, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <storeID> <stockID>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.view.Initialize(ctx, args[0]); err != nil {
				return notifiedError{err}
			}
			if err := op(a.view, ctx, args[1]); err != nil {
				return notifiedError{err}
			}
			return a.render(cmd)
		},
	}
}

func (a *app) render(cmd *cobra.Command) error {
	st := a.view.State()
	if a.opts.json {
		return renderJSON(cmd.OutOrStdout(), st)
	}
	return renderTables(cmd.OutOrStdout(), st)
}
