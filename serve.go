package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/andersonsilva/portfolio/internal/analytics"
	"github.com/andersonsilva/portfolio/internal/telemetry"
)

func newServeCmd(app *appContext) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long:  "Run the HTTP server. This is also what runs when no subcommand is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), app, port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "Listen port (env PORT, default 8080)")
	return cmd
}

func runServe(ctx context.Context, app *appContext, port string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := app.cfg
	if port != "" {
		cfg.Port = port
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	log := app.log.With("component", "server")

	var store *analytics.Store
	if cfg.AnalyticsEnabled() {
		var err error
		store, err = analytics.Open(ctx, cfg.AnalyticsDB)
		if err != nil {
			return err
		}
		defer store.Close()
		log.With("db", cfg.AnalyticsDB).Info("visitor tracking enabled with hashed IP addresses")
	}

	tracer, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return err
	}
	defer tracer.Shutdown(context.Background())

	srv, err := newServer(serverOptions{
		Content:   app.content,
		Logger:    log,
		Store:     store,
		Tracer:    tracer,
		Admin:     resolveAdminCredentials(cfg, gin.Mode(), log),
		Retention: cfg.CleanupAfter,
	})
	if err != nil {
		return err
	}
	go runRetention(ctx, srv)

	httpSrv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: srv.Engine(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.With("addr", httpSrv.Addr).Info("listening")
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
