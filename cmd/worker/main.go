package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/unclebandit/advocates-backend/internal/config"
	"github.com/unclebandit/advocates-backend/internal/db"
	"github.com/unclebandit/advocates-backend/internal/logger"
	"github.com/unclebandit/advocates-backend/internal/queue"
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
	_ = godotenv.Load()
	cfg := config.Load()

	flags := pflag.NewFlagSet("worker", pflag.ContinueOnError)
	flags.StringVar(&cfg.AMQPURL, "amqp-url", cfg.AMQPURL, "RabbitMQ connection URL")
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to DB
	conn, err := db.Open(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := db.EnsureSchema(ctx, conn); err != nil {
		return err
	}

	worker := service.NewImportWorker(&repository.AdvocateRepository{DB: conn}, log)

	// Connect to RabbitMQ
	q, err := queue.DialAMQP(cfg.AMQPURL, log)
	if err != nil {
		return err
	}
	defer q.Close()

	log.Info("Worker running, waiting for messages...", zap.String("queue", queue.AdvocateUpserts))
	return q.Consume(ctx, queue.AdvocateUpserts, worker.Handle)
}
