package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexanderramin/courseplan/internal/app"
	"github.com/alexanderramin/courseplan/internal/config"
)

const maxBodyBytes = 1 << 20

// Deps are the use cases and collaborators the HTTP surface is built on.
// Metrics is optional.
type Deps struct {
	Plans       app.PlanUseCase
	Catalog     app.CatalogUseCase
	History     app.HistoryUseCase
	Metrics     http.Handler
	MetricsPath string
	Logger      zerolog.Logger
}

type handler struct {
	plans   app.PlanUseCase
	catalog app.CatalogUseCase
	history app.HistoryUseCase
	log     zerolog.Logger
}

// NewHandler wires every route onto a fresh ServeMux and wraps it with
// request id, access log and CORS middleware.
func NewHandler(d Deps) http.Handler {
	h := &handler{plans: d.Plans, catalog: d.Catalog, history: d.History, log: d.Logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /courses", h.listCourses)
	mux.HandleFunc("POST /plan/generate", h.generatePlan)
	mux.HandleFunc("GET /plans", h.listPlans)
	mux.HandleFunc("GET /plans/{id}", h.getPlan)
	if d.Metrics != nil {
		path := d.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, d.Metrics)
	}

	return withRequestID(withAccessLog(d.Logger, withCORS(mux)))
}

// Serve runs the HTTP server until ctx is canceled, then shuts it down
// gracefully.
func Serve(ctx context.Context, cfg config.ServerConfig, h http.Handler, log zerolog.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("http server stopped")
	return nil
}
