package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/reachronakofficial756/excelSort/internal/observability"
	"github.com/reachronakofficial756/excelSort/pkg/config"
	"github.com/reachronakofficial756/excelSort/pkg/contracts"
	"github.com/reachronakofficial756/excelSort/pkg/middleware"
)

type Application struct {
	cfg           *config.Config
	server        *http.Server
	handler       http.Handler
	pageCache     *middleware.InMemoryPageCache
	rateLimiter   *middleware.MobileRateLimiter
	healthHandler *http.Handler
	pagesHandler  *http.Handler
	cachedPages   *http.Handler
	apiHandler    *http.Handler
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

// SetApp wires the three surfaces onto one server: the browser pages, the
// JSON API and the health endpoints. Pages and API get separate routers
// because their middleware stacks differ.
func (a *Application) SetApp(pages, api, health contracts.Handler) {
	a.pageCache = middleware.NewInMemoryPageCache(a.cfg.PageCacheTTL)
	a.rateLimiter = middleware.NewMobileRateLimiter(
		a.cfg.RateLimitRequests,
		a.cfg.RateLimitWindow,
		middleware.DefaultMobileExtractor,
		a.cfg.Log,
	)

	a.setHealthHandler(health)
	a.setPagesHandler(pages)
	a.setAPIHandler(api)
	a.setAppServer()
}

func (a *Application) setHealthHandler(health contracts.Handler) {
	healthRouter := httprouter.New()
	health.RegisterRoutes(healthRouter)

	var healthHTTPHandler http.Handler = healthRouter
	healthHTTPHandler = middleware.RequestLogging(a.cfg.Log)(healthHTTPHandler)
	healthHTTPHandler = middleware.Recovery(a.cfg.Log)(healthHTTPHandler)
	a.healthHandler = &healthHTTPHandler
	a.cfg.Log.Info("Health endpoints configured with minimal middleware (Recovery + Logging only)")
}

func (a *Application) setPagesHandler(pages contracts.Handler) {
	pagesRouter := httprouter.New()
	pages.RegisterRoutes(pagesRouter)

	// Two variants of the same stack: customer pages are immutable per
	// process and safe to cache, the landing and search routes are not.
	var cachedHandler http.Handler = middleware.PageCache(a.pageCache)(pagesRouter)
	cachedHandler = a.wrapPageStack(cachedHandler)
	a.cachedPages = &cachedHandler

	var plainHandler http.Handler = a.wrapPageStack(pagesRouter)
	a.pagesHandler = &plainHandler
	a.cfg.Log.Info("Page endpoints configured", "cache_ttl", a.cfg.PageCacheTTL)
}

func (a *Application) wrapPageStack(h http.Handler) http.Handler {
	h = middleware.RequestTimeout(a.cfg.RequestTimeout)(h)
	h = middleware.MobileRateLimit(a.rateLimiter)(h)
	h = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(h)
	h = middleware.Metrics(observability.HTTPRequests, observability.RequestDuration)(h)
	h = middleware.RequestLogging(a.cfg.Log)(h)
	h = middleware.Recovery(a.cfg.Log)(h)
	return h
}

func (a *Application) setAPIHandler(api contracts.Handler) {
	apiRouter := httprouter.New()
	api.RegisterRoutes(apiRouter)

	var apiHTTPHandler http.Handler = apiRouter
	apiHTTPHandler = middleware.RequestTimeout(a.cfg.RequestTimeout)(apiHTTPHandler)
	apiHTTPHandler = middleware.MobileRateLimit(a.rateLimiter)(apiHTTPHandler)
	apiHTTPHandler = middleware.ContentTypeValidation(a.cfg.Log)(apiHTTPHandler)
	apiHTTPHandler = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(apiHTTPHandler)
	apiHTTPHandler = middleware.Metrics(observability.HTTPRequests, observability.RequestDuration)(apiHTTPHandler)
	apiHTTPHandler = middleware.RequestLogging(a.cfg.Log)(apiHTTPHandler)
	apiHTTPHandler = middleware.Recovery(a.cfg.Log)(apiHTTPHandler)
	a.apiHandler = &apiHTTPHandler
	a.cfg.Log.Info("API endpoints configured with full middleware stack")
}

func (a *Application) setAppServer() {
	var metricsHandler http.Handler = promhttp.Handler()
	metricsHandler = middleware.RequestLogging(a.cfg.Log)(metricsHandler)
	metricsHandler = middleware.Recovery(a.cfg.Log)(metricsHandler)

	mux := http.NewServeMux()
	mux.Handle("/health", *a.healthHandler)
	mux.Handle("/ready", *a.healthHandler)
	mux.Handle("/metrics", metricsHandler)
	mux.Handle("/api/v1/", *a.apiHandler)
	mux.Handle("/customer/", *a.cachedPages)
	mux.Handle("/", *a.pagesHandler)

	a.handler = mux
	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

// Handler exposes the fully wired mux so in-process tests can serve it
// without binding a port.
func (a *Application) Handler() http.Handler {
	return a.handler
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

// StopBackground halts the cache and rate limiter janitor goroutines. Tests
// that never call Run use it for cleanup.
func (a *Application) StopBackground() {
	a.pageCache.Stop()
	a.rateLimiter.Stop()
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	a.cfg.Log.Info("Stopping background workers...")
	a.StopBackground()
	a.cfg.Log.Info("Background workers stopped")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	a.cfg.Log.Info("Server stopped gracefully")
}
