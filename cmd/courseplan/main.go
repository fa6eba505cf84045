package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/courseplan/internal/cli"
	"github.com/alexanderramin/courseplan/internal/config"
	"github.com/alexanderramin/courseplan/internal/db"
	"github.com/alexanderramin/courseplan/internal/logger"
	"github.com/alexanderramin/courseplan/internal/metrics"
	"github.com/alexanderramin/courseplan/internal/repository"
	"github.com/alexanderramin/courseplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configPath picks --config out of the arguments before cobra sees them,
// since the services have to exist before the command tree is built.
func configPath(args []string) string {
	fs := pflag.NewFlagSet("courseplan", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	path := fs.String("config", os.Getenv("COURSEPLAN_CONFIG"), "")
	_ = fs.Parse(args)
	return *path
}

func run() error {
	cfg, err := config.Load(configPath(os.Args[1:]))
	if err != nil {
		return err
	}
	log := logger.New("courseplan", cfg.Logging, os.Stderr)

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	courseRepo := repository.NewSQLiteCourseRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	planMetrics, err := metrics.NewPlanMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}
	observer := service.NewLogUseCaseObserver(log)

	// Wire services
	catalogs := service.NewCachedCatalogSource(service.NewRepoCatalogSource(courseRepo))
	catalogSvc := service.NewCatalogService(courseRepo, uow, observer)

	if err := seedCatalog(context.Background(), cfg, courseRepo, catalogSvc); err != nil {
		return err
	}

	app := &cli.App{
		Plans:        service.NewPlanService(catalogs, planRepo, cfg.Planner, planMetrics, observer),
		Catalog:      catalogSvc,
		History:      service.NewHistoryService(planRepo),
		Config:       cfg,
		Logger:       log,
		Metrics:      metrics.Handler(prometheus.DefaultGatherer),
		CatalogCache: catalogs,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// seedCatalog imports catalog.path when the database holds no courses yet.
func seedCatalog(ctx context.Context, cfg *config.Config, courses repository.CourseRepo, catalog service.CatalogService) error {
	if cfg.Catalog.Path == "" {
		return nil
	}
	n, err := courses.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting courses: %w", err)
	}
	if n > 0 {
		return nil
	}
	if _, err := catalog.Import(ctx, cfg.Catalog.Path); err != nil {
		return fmt.Errorf("importing %s: %w", cfg.Catalog.Path, err)
	}
	return nil
}
