package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"salonbook/pkg/config"
	"salonbook/pkg/contracts"
	"salonbook/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

type Application struct {
	cfg           *config.Config
	server        *http.Server
	shutdownHooks []func()
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

// OnShutdown registers cleanup to run during graceful shutdown, after the
// HTTP server has stopped accepting requests.
func (a *Application) OnShutdown(hooks ...func()) {
	a.shutdownHooks = append(a.shutdownHooks, hooks...)
}

// SetApp wires the domain handlers behind the middleware stack and mounts
// health endpoints with minimal middleware alongside them.
func (a *Application) SetApp(handlers ...contracts.Handler) {
	router := httprouter.New()
	for _, h := range handlers {
		h.RegisterRoutes(router)
	}

	var appHandler http.Handler = router
	appHandler = middleware.RequestTimeout(a.cfg.RequestTimeout)(appHandler)
	appHandler = middleware.ContentTypeValidation(a.cfg.Log)(appHandler)
	appHandler = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(appHandler)
	appHandler = middleware.RequestLogging(a.cfg.Log)(appHandler)
	appHandler = middleware.Recovery(a.cfg.Log)(appHandler)

	var healthHandler http.Handler = a.healthRouter()
	healthHandler = middleware.RequestLogging(a.cfg.Log)(healthHandler)
	healthHandler = middleware.Recovery(a.cfg.Log)(healthHandler)

	mux := http.NewServeMux()
	mux.Handle("/health", healthHandler)
	mux.Handle("/ready", healthHandler)
	mux.Handle("/", appHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) healthRouter() *httprouter.Router {
	router := httprouter.New()
	probe := func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if a.cfg.Client.Mongo != nil {
			if err := a.cfg.Client.Mongo.Ping(r.Context(), nil); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"degraded"}`))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
	router.GET("/health", probe)
	router.GET("/ready", probe)
	return router
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	for _, hook := range a.shutdownHooks {
		hook()
	}

	a.cfg.GracefulShutdown()
	a.cfg.Log.Info("Server stopped gracefully")
}
