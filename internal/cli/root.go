package cli

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/courseplan/internal/config"
	"github.com/alexanderramin/courseplan/internal/service"
)

// App holds the services and settings CLI commands run against.
type App struct {
	Plans   service.PlanService
	Catalog service.CatalogService
	History service.HistoryService

	Config *config.Config
	Logger zerolog.Logger

	// Metrics is served by `serve` when metrics are enabled. Optional.
	Metrics http.Handler
	// CatalogCache is invalidated by `serve` on SIGHUP. Optional.
	CatalogCache interface{ Invalidate() }

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	Now           func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now().UTC()
}

func (a *App) config() *config.Config {
	if a.Config == nil {
		cfg := config.Default()
		a.Config = &cfg
	}
	return a.Config
}

// NewRootCmd creates the top-level "courseplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "courseplan",
		Short:         "Conflict-free course schedule planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	// Read by main before the command tree is built; registered here so
	// cobra accepts it and lists it in help.
	root.PersistentFlags().String("config", "", "Path to a YAML or JSON config file")

	root.AddCommand(
		newPlanCmd(app),
		newCatalogCmd(app),
		newHistoryCmd(app),
		newServeCmd(app),
	)
	return root
}
