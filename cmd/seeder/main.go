// cmd/seeder/main.go
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

	var via string
	var file string
	flags := pflag.NewFlagSet("seeder", pflag.ContinueOnError)
	flags.StringVar(&via, "via-queue", "", "publish records on advocate_upserts instead of writing directly: amqp or memory")
	flags.Lookup("via-queue").NoOptDefVal = "amqp"
	flags.StringVar(&file, "file", "", "YAML file of advocates to load (default: bundled seed data)")
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

	advocates, err := loadAdvocates(file)
	if err != nil {
		return err
	}

	switch via {
	case "", "amqp", "memory":
	default:
		return fmt.Errorf("unknown --via-queue %q: want amqp or memory", via)
	}

	if via == "amqp" {
		q, err := queue.DialAMQP(cfg.AMQPURL, log)
		if err != nil {
			return err
		}
		defer q.Close()

		n, err := service.PublishSeed(ctx, q, advocates)
		if err != nil {
			return err
		}
		log.Info("Seed advocates queued", zap.Int("count", n), zap.String("queue", queue.AdvocateUpserts))
		return nil
	}

	conn, err := db.Open(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.EnsureSchema(ctx, conn); err != nil {
		return err
	}

	repo := &repository.AdvocateRepository{DB: conn}
	if via == "memory" {
		n, err := importInProcess(ctx, repo, advocates, log)
		if err != nil {
			return err
		}
		log.Info("Seed advocates imported through in-memory queue", zap.Int("count", n))
		return nil
	}

	n, err := service.SeedStore(ctx, repo, advocates)
	if err != nil {
		return err
	}
	log.Info("Database seeding completed successfully!", zap.Int("count", n))
	return nil
}
