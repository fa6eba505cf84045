package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/courseplan/internal/api"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.config()
			serverCfg := cfg.Server
			if cmd.Flags().Changed("addr") {
				serverCfg.Addr = addr
			}

			deps := api.Deps{
				Plans:   app.Plans,
				Catalog: app.Catalog,
				History: app.History,
				Logger:  app.Logger,
			}
			if cfg.Metrics.Enabled {
				deps.Metrics = app.Metrics
				deps.MetricsPath = cfg.Metrics.Path
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if app.CatalogCache != nil {
				hup := make(chan os.Signal, 1)
				signal.Notify(hup, syscall.SIGHUP)
				defer signal.Stop(hup)
				go func() {
					for {
						select {
						case <-hup:
							app.CatalogCache.Invalidate()
							app.Logger.Info().Msg("catalog cache invalidated")
						case <-ctx.Done():
							return
						}
					}
				}()
			}

			return api.Serve(ctx, serverCfg, api.NewHandler(deps), app.Logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}
