package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frontend/internal/apiclient"
	"frontend/internal/auth"
	"frontend/internal/commands"
	intconfig "frontend/internal/config"
	router "frontend/internal/http"
	"frontend/internal/http/handlers"
	"frontend/internal/utils"
	"frontend/internal/view"

	"github.com/gin-gonic/gin"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "hash-password":
			os.Exit(commands.HashPassword(os.Args[2:]))
		case "calendar":
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			code := commands.Calendar(ctx, os.Args[2:], os.Stdout, os.Stderr)
			stop()
			os.Exit(code)
		case "serve":
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q (want serve, hash-password or calendar)\n", os.Args[1])
			os.Exit(2)
		}
	}

	if err := serve(); err != nil {
		utils.Logger().Fatal().Err(err).Msg("server failed")
	}
}

func serve() error {
	cfg, err := intconfig.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	utils.InitLogger(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	log := utils.Logger()

	if cfg.App.GinMode != "" {
		gin.SetMode(cfg.App.GinMode)
	}

	var creds *auth.Credentials
	if cfg.Security.AnalyticsAuthFile != "" {
		creds, err = auth.LoadCredentials(cfg.Security.AnalyticsAuthFile)
		if err != nil {
			return fmt.Errorf("load analytics credentials: %w", err)
		}
		log.Info().Int("users", creds.Len()).Msg("analytics basic auth enabled")
	} else {
		log.Warn().Msg("analytics pages are not password protected (security.analytics_auth_file is empty)")
	}

	if cfg.Security.FormSecret == "" {
		log.Warn().Msg("security.form_secret is empty; purchase forms will not survive a restart")
	}
	tokens, err := auth.NewPurchaseTokens(cfg.Security.FormSecret, cfg.Security.PurchaseTokenTTL)
	if err != nil {
		return fmt.Errorf("purchase tokens: %w", err)
	}

	views, err := view.NewRenderer()
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}

	client := apiclient.New(cfg.API, nil)
	r := router.NewRouter(*cfg, router.Deps{
		Handler:     handlers.New(client, tokens, views),
		Credentials: creds,
	})

	srv := &http.Server{
		Addr:              cfg.App.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      cfg.API.Timeout + 20*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.App.Addr).Str("api", client.BaseURL()).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return err
	case <-quit:
	}

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("server stopped cleanly")
	return nil
}
