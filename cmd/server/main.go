// cmd/server/main.go
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/unclebandit/advocates-backend/internal/config"
	"github.com/unclebandit/advocates-backend/internal/controller"
	"github.com/unclebandit/advocates-backend/internal/db"
	"github.com/unclebandit/advocates-backend/internal/handler"
	"github.com/unclebandit/advocates-backend/internal/logger"
	"github.com/unclebandit/advocates-backend/internal/repository"
	"github.com/unclebandit/advocates-backend/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env
	envErr := godotenv.Load()

	cfg := config.Load()
	flags := pflag.NewFlagSet("server", pflag.ContinueOnError)
	flags.StringVar(&cfg.Port, "port", cfg.Port, "port to listen on")
	flags.BoolVar(&cfg.UseDatabase, "use-database", cfg.UseDatabase, "serve advocates from Postgres instead of the bundled seed data")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	if envErr != nil {
		log.Info("⚠️ No .env file found, relying on OS environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	advocateService := &service.AdvocateService{Log: log}

	// The store is optional: if it cannot be opened the service keeps serving seed data.
	if cfg.UseDatabase {
		conn, err := openStore(ctx, cfg, log)
		if err != nil {
			log.Warn("⚠️ Database unavailable, serving seed data", zap.Error(err))
		} else {
			defer conn.Close()
			advocateService.Repo = &repository.AdvocateRepository{DB: conn}
			advocateService.UseDatabase = true
		}
	}

	advocateController := &controller.AdvocateController{
		AdvocateService: advocateService,
		Log:             log,
	}
	listingHandler := &handler.ListingHandler{
		Service: advocateService,
		Log:     log,
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes(advocateController, listingHandler, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("🚀 Server running", zap.String("addr", srv.Addr), zap.Bool("use_database", advocateService.UseDatabase))
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

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*sql.DB, error) {
	conn, err := db.Open(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}
