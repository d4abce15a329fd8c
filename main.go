package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"

	"wordle/internal/calendar"
	"wordle/internal/store"
	"wordle/internal/vocab"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logFatal("Invalid configuration: %v", err)
	}
	logInfo("Starting wordle in %s mode", map[bool]string{true: "production", false: "development"}[cfg.IsProduction()])

	app, err := newApp(cfg)
	if err != nil {
		logFatal("Failed to initialise: %v", err)
	}
	defer func() {
		if err := app.Store.Close(); err != nil {
			logWarn("Failed to close store: %v", err)
		}
	}()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	startServer(app.setupRouter(), cfg.Port)
}

// newApp loads the vocabulary and opens the configured store.
func newApp(cfg Config) (*App, error) {
	loc, err := calendar.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	v, err := vocab.Load(cfg.AnswersPath, cfg.AllowedPath)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(cfg.StoreBackend, cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StoreBackend, err)
	}
	logInfo("Using %s store at %q", cfg.StoreBackend, cfg.StatePath)

	return &App{
		Vocab:          v,
		Store:          st,
		Clock:          calendar.SystemClock{},
		Location:       loc,
		LimiterMap:     make(map[string]*clientLimiter),
		IsProduction:   cfg.IsProduction(),
		StartTime:      time.Now(),
		CookieMaxAge:   cfg.CookieMaxAge,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		StoreBackend:   cfg.StoreBackend,
	}, nil
}

// setupRouter wires middleware and routes.
func (app *App) setupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression, ginGzip.WithExcludedPaths([]string{RouteMetrics})))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.Use(requestIDMiddleware())
	router.Use(cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	}))

	router.GET(RoutePuzzle, app.puzzleHandler)
	router.POST(RouteGuess, app.rateLimitMiddleware(), app.guessHandler)
	router.GET(RouteStats, app.statsHandler)
	router.GET(RouteShare, app.shareHandler)
	router.GET(RouteHealthz, app.healthzHandler)
	router.GET(RouteMetrics, gin.WrapH(promhttp.Handler()))

	return router
}

func startServer(router *gin.Engine, port string) {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
